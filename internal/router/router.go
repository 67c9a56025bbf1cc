package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"hostelops/internal/auth"
	"hostelops/internal/cache"
	"hostelops/internal/config"
	"hostelops/internal/errors"
	"hostelops/internal/handler"
	"hostelops/internal/middleware"
	"hostelops/internal/repository"
)

// Deps bundles everything Register needs to wire the route tree.
type Deps struct {
	Config              *config.Config
	Logger              *zap.Logger
	Cache               *cache.Client
	UserRepo            repository.UserRepository
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ComplaintHandler    *handler.ComplaintHandler
	AnnouncementHandler *handler.AnnouncementHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, d Deps) {
	start := time.Now()

	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomw.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	if !d.Config.RateLimitDisabled {
		api.Use(middleware.RateLimit(d.Cache, "api", d.Config.RateLimitAPI, d.Config.RateLimitWindow))
	}

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "OK",
			"uptime":    time.Since(start).Seconds(),
			"timestamp": time.Now(),
		})
	})

	// Public auth routes with the stricter window.
	public := api.Group("/auth")
	if !d.Config.RateLimitDisabled {
		public.Use(middleware.RateLimit(d.Cache, "auth", d.Config.RateLimitAuth, d.Config.RateLimitWindow))
	}
	public.POST("/register", d.AuthHandler.Register)
	public.POST("/login", d.AuthHandler.Login)

	// Authenticated routes: token validation, then current-user resolution.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(d.Config.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &auth.Claims{}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := errors.MapErrorToHTTP(errors.ErrUnauthenticated)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	}))
	secured.Use(middleware.CurrentUser(d.UserRepo))

	authGroup := secured.Group("/auth")
	authGroup.GET("/me", d.UserHandler.Me)
	authGroup.PUT("/profile", d.UserHandler.UpdateProfile)
	authGroup.GET("/notifications", d.UserHandler.Notifications)
	authGroup.PUT("/notifications/read", d.UserHandler.MarkNotificationsRead)
	authGroup.GET("/users", d.UserHandler.ListStudents, middleware.RequireAdmin())

	complaints := secured.Group("/complaints")
	complaints.POST("", d.ComplaintHandler.Create)
	complaints.GET("/my", d.ComplaintHandler.ListMine)
	complaints.GET("/stats", d.ComplaintHandler.Stats, middleware.RequireAdmin())
	complaints.GET("", d.ComplaintHandler.ListAll, middleware.RequireAdmin())
	complaints.PUT("/:id", d.ComplaintHandler.Update, middleware.RequireAdmin())
	complaints.DELETE("/:id", d.ComplaintHandler.Remove, middleware.RequireAdmin())
	complaints.POST("/:id/upvote", d.ComplaintHandler.Upvote)
	complaints.POST("/:id/rate", d.ComplaintHandler.Rate)
	complaints.POST("/:id/comment", d.ComplaintHandler.AddComment)

	announcements := secured.Group("/announcements")
	announcements.GET("", d.AnnouncementHandler.ListActive)
	announcements.POST("", d.AnnouncementHandler.Create, middleware.RequireAdmin())
	announcements.DELETE("/:id", d.AnnouncementHandler.Deactivate, middleware.RequireAdmin())
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
