package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation error", NewValidation("title", "title is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"complaint not found", ErrComplaintNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"announcement not found", ErrAnnouncementNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"email taken", ErrEmailTaken, http.StatusConflict, "EMAIL_TAKEN"},
		{"invalid credentials", ErrInvalidCredentials, http.StatusBadRequest, "INVALID_CREDENTIALS"},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"wrapped sentinel", fmt.Errorf("reload complaint: %w", ErrComplaintNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"unknown error", fmt.Errorf("driver: bad connection"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_InternalDetailHidden(t *testing.T) {
	httpErr := MapErrorToHTTP(fmt.Errorf("dial tcp 10.0.0.5:3306: connection refused"))
	assert.Equal(t, "internal server error", httpErr.Message)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "title: title is required", NewValidation("title", "title is required").Error())
	assert.Equal(t, "bad input", (&ValidationError{Message: "bad input"}).Error())
}

func TestHTTPError_ToErrorResponse(t *testing.T) {
	resp := NewHTTPError(http.StatusNotFound, "complaint not found", "NOT_FOUND").ToErrorResponse()
	assert.Equal(t, "complaint not found", resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Code)
}
