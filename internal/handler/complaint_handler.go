package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hostelops/internal/errors"
	"hostelops/internal/middleware"
	"hostelops/internal/repository"
	"hostelops/internal/service"
)

// ComplaintHandler handles complaint endpoints.
type ComplaintHandler struct {
	complaintService service.ComplaintService
}

// NewComplaintHandler creates a new complaint handler.
func NewComplaintHandler(complaintService service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// CreateComplaintRequest represents a new complaint submission.
type CreateComplaintRequest struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Priority    string   `json:"priority"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	IsPublic    *bool    `json:"isPublic"`
}

// UpdateComplaintRequest represents an admin triage update. Empty strings
// leave the corresponding field unchanged; assignedTo uses presence so an
// explicit empty string clears the assignment.
type UpdateComplaintRequest struct {
	Status             string     `json:"status"`
	AdminNote          string     `json:"adminNote"`
	AssignedTo         *string    `json:"assignedTo"`
	ExpectedResolution *time.Time `json:"expectedResolution"`
	RejectionReason    string     `json:"rejectionReason"`
}

// RateComplaintRequest represents a rating submission.
type RateComplaintRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	RatingNote string `json:"ratingNote"`
}

// CommentRequest represents a new comment on a complaint.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

func complaintID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid complaint ID",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

func filterFromQuery(c echo.Context) repository.ComplaintFilter {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))
	return repository.ComplaintFilter{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
		Priority: c.QueryParam("priority"),
		Search:   c.QueryParam("search"),
		Page:     page,
		PageSize: pageSize,
	}
}

// Create godoc
// @Summary File a new complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateComplaintRequest true "Complaint data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints [post]
func (h *ComplaintHandler) Create(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req CreateComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	complaint, err := h.complaintService.Create(c.Request().Context(), user, service.CreateComplaintInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Priority:    req.Priority,
		Location:    req.Location,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, echo.Map{"complaint": complaint})
}

// ListMine godoc
// @Summary List the caller's own complaints, newest first
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param priority query string false "Priority filter"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints/my [get]
func (h *ComplaintHandler) ListMine(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	complaints, err := h.complaintService.ListMine(c.Request().Context(), user.ID, filterFromQuery(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"complaints": complaints})
}

// ListAll godoc
// @Summary List all complaints with filters, search, and pagination (admin)
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param priority query string false "Priority filter"
// @Param search query string false "Substring match on title, description, or student name"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} service.ComplaintPage
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints [get]
func (h *ComplaintHandler) ListAll(c echo.Context) error {
	page, err := h.complaintService.ListAll(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, page)
}

// Update godoc
// @Summary Update a complaint's status and admin fields (admin)
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body UpdateComplaintRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints/{id} [put]
func (h *ComplaintHandler) Update(c echo.Context) error {
	id, err := complaintID(c)
	if err != nil {
		return err
	}

	var req UpdateComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	complaint, err := h.complaintService.Update(c.Request().Context(), id, service.UpdateComplaintInput{
		Status:             req.Status,
		AdminNote:          req.AdminNote,
		AssignedTo:         req.AssignedTo,
		ExpectedResolution: req.ExpectedResolution,
		RejectionReason:    req.RejectionReason,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"complaint": complaint})
}

// Upvote godoc
// @Summary Toggle the caller's upvote on a complaint
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} service.UpvoteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints/{id}/upvote [post]
func (h *ComplaintHandler) Upvote(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	id, err := complaintID(c)
	if err != nil {
		return err
	}

	result, err := h.complaintService.Upvote(c.Request().Context(), user, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// Rate godoc
// @Summary Rate the caller's own resolved complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body RateComplaintRequest true "Rating"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints/{id}/rate [post]
func (h *ComplaintHandler) Rate(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	id, err := complaintID(c)
	if err != nil {
		return err
	}

	var req RateComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	complaint, err := h.complaintService.Rate(c.Request().Context(), user.ID, id, req.Rating, req.RatingNote)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"complaint": complaint})
}

// AddComment godoc
// @Summary Append a comment to a complaint's thread
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body CommentRequest true "Comment text"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints/{id}/comment [post]
func (h *ComplaintHandler) AddComment(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	id, err := complaintID(c)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comments, err := h.complaintService.AddComment(c.Request().Context(), user, id, req.Text)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": comments})
}

// Stats godoc
// @Summary Aggregate complaint statistics (admin)
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ComplaintStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints/stats [get]
func (h *ComplaintHandler) Stats(c echo.Context) error {
	stats, err := h.complaintService.Stats(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}

// Remove godoc
// @Summary Hard-delete a complaint (admin)
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /complaints/{id} [delete]
func (h *ComplaintHandler) Remove(c echo.Context) error {
	id, err := complaintID(c)
	if err != nil {
		return err
	}

	if err := h.complaintService.Remove(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
