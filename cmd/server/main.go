package main

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelops/docs"
	"hostelops/internal/auth"
	"hostelops/internal/cache"
	"hostelops/internal/config"
	"hostelops/internal/db"
	"hostelops/internal/handler"
	"hostelops/internal/logger"
	"hostelops/internal/model"
	"hostelops/internal/repository"
	"hostelops/internal/router"
	"hostelops/internal/service"
)

// @title HostelOps API
// @version 1.0
// @description Hostel complaint management API: complaints, announcements, and notifications with JWT authentication.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Info("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Upvote{},
			&model.Comment{},
			&model.Complaint{},
			&model.Notification{},
			&model.Announcement{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn("drop table failed (may not exist)", zap.Error(err))
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Notification{},
		&model.Complaint{},
		&model.Comment{},
		&model.Upvote{},
		&model.Announcement{},
	); err != nil {
		log.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	complaintRepo := repository.NewComplaintRepository(gormDB)
	announcementRepo := repository.NewAnnouncementRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	notifier := service.NewNotifier(userRepo)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	complaintService := service.NewComplaintService(complaintRepo, notifier, cacheClient)
	announcementService := service.NewAnnouncementService(announcementRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)

	// Register routes
	router.Register(e, router.Deps{
		Config:              cfg,
		Logger:              log,
		Cache:               cacheClient,
		UserRepo:            userRepo,
		AuthHandler:         authHandler,
		UserHandler:         userHandler,
		ComplaintHandler:    complaintHandler,
		AnnouncementHandler: announcementHandler,
	})

	if err := bootstrapUsers(context.Background(), userRepo, log); err != nil {
		log.Fatal("bootstrap default users", zap.Error(err))
	}

	addr := ":" + cfg.ServerPort
	log.Info("starting server", zap.String("addr", addr))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal("server start", zap.Error(err))
	}
}

// bootstrapUsers ensures a default admin and a demo student exist on first run.
func bootstrapUsers(ctx context.Context, userRepo repository.UserRepository, log *zap.Logger) error {
	ensure := func(user *model.User, password string) error {
		_, err := userRepo.FindByEmail(ctx, user.Email)
		if err == nil {
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hashed)
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		log.Info("default user created", zap.String("email", user.Email), zap.String("role", user.Role))
		return nil
	}

	if err := ensure(&model.User{
		Name:     "Admin User",
		Email:    "admin@hostel.com",
		Role:     model.RoleAdmin,
		IsActive: true,
	}, "admin123"); err != nil {
		return err
	}

	return ensure(&model.User{
		Name:        "Rahul Kumar",
		Email:       "student@hostel.com",
		Role:        model.RoleStudent,
		RoomNumber:  "A-101",
		HostelBlock: "Block A",
		Phone:       "9876543210",
		IsActive:    true,
	}, "123456")
}
