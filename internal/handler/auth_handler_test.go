package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hostelops/internal/errors"
	"hostelops/internal/model"
	"hostelops/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.User, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	user := &model.User{ID: uuid.New(), Name: "Priya Singh", Email: "priya@hostel.com", Role: model.RoleStudent}

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockAuthService)
		wantStatus int
	}{
		{
			name: "successful registration",
			body: `{"name":"Priya Singh","email":"priya@hostel.com","password":"secret123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
					Return(user, "signed-token", nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed email rejected before the service",
			body:       `{"name":"Priya Singh","email":"not-an-email","password":"secret123"}`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password rejected before the service",
			body:       `{"name":"Priya Singh","email":"priya@hostel.com","password":"12345"}`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: `{"name":"Priya Singh","email":"priya@hostel.com","password":"secret123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
					Return(nil, "", errors.ErrEmailTaken)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)

			c, rec := newJSONContext(http.MethodPost, "/api/auth/register", tt.body)
			err := NewAuthHandler(mockSvc).Register(c)

			if tt.wantStatus == http.StatusCreated {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusCreated, rec.Code)

				var resp AuthResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "signed-token", resp.Token)
				assert.Equal(t, "priya@hostel.com", resp.User.Email)
			} else {
				var httpErr *echo.HTTPError
				assert.ErrorAs(t, err, &httpErr)
				assert.Equal(t, tt.wantStatus, httpErr.Code)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "priya@hostel.com", Role: model.RoleStudent}

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockAuthService)
		wantStatus int
	}{
		{
			name: "successful login",
			body: `{"email":"priya@hostel.com","password":"secret123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "priya@hostel.com", "secret123").
					Return(user, "signed-token", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "bad credentials",
			body: `{"email":"priya@hostel.com","password":"wrong1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "priya@hostel.com", "wrong1").
					Return(nil, "", errors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing password rejected before the service",
			body:       `{"email":"priya@hostel.com"}`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)

			c, rec := newJSONContext(http.MethodPost, "/api/auth/login", tt.body)
			err := NewAuthHandler(mockSvc).Login(c)

			if tt.wantStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				var httpErr *echo.HTTPError
				assert.ErrorAs(t, err, &httpErr)
				assert.Equal(t, tt.wantStatus, httpErr.Code)
			}

			mockSvc.AssertExpectations(t)
		})
	}
}
