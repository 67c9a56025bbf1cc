package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hostelops/internal/errors"
	"hostelops/internal/model"
)

// MockAnnouncementRepository is a mock implementation of AnnouncementRepository.
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, announcement *model.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) ListActive(ctx context.Context) ([]model.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAnnouncementService_Create(t *testing.T) {
	admin := &model.User{ID: uuid.New(), Name: "Warden", Role: model.RoleAdmin}
	expiry := time.Now().Add(72 * time.Hour)

	tests := []struct {
		name      string
		input     CreateAnnouncementInput
		setupMock func(*MockAnnouncementRepository)
		wantErr   bool
		check     func(*testing.T, *model.Announcement)
	}{
		{
			name:  "default type is info",
			input: CreateAnnouncementInput{Title: "Water maintenance", Message: "Supply off 2-4pm"},
			setupMock: func(m *MockAnnouncementRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Announcement")).Return(nil)
			},
			check: func(t *testing.T, a *model.Announcement) {
				assert.Equal(t, model.AnnouncementInfo, a.Type)
				assert.True(t, a.IsActive)
				assert.Equal(t, admin.ID, a.AuthorID)
				assert.Equal(t, "Warden", a.AuthorName)
				assert.Nil(t, a.ExpiresAt)
			},
		},
		{
			name:  "explicit type and expiry",
			input: CreateAnnouncementInput{Title: "Fire drill", Message: "Friday 10am", Type: model.AnnouncementUrgent, ExpiresAt: &expiry},
			setupMock: func(m *MockAnnouncementRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Announcement")).Return(nil)
			},
			check: func(t *testing.T, a *model.Announcement) {
				assert.Equal(t, model.AnnouncementUrgent, a.Type)
				assert.Equal(t, expiry, *a.ExpiresAt)
			},
		},
		{
			name:      "missing title",
			input:     CreateAnnouncementInput{Message: "no title"},
			setupMock: func(m *MockAnnouncementRepository) {},
			wantErr:   true,
		},
		{
			name:      "missing message",
			input:     CreateAnnouncementInput{Title: "no body"},
			setupMock: func(m *MockAnnouncementRepository) {},
			wantErr:   true,
		},
		{
			name:      "unrecognized type",
			input:     CreateAnnouncementInput{Title: "odd", Message: "odd", Type: "shouting"},
			setupMock: func(m *MockAnnouncementRepository) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAnnouncementRepository)
			tt.setupMock(mockRepo)

			svc := NewAnnouncementService(mockRepo)
			announcement, err := svc.Create(context.Background(), admin, tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				var ve *errors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Nil(t, announcement)
			} else {
				assert.NoError(t, err)
				tt.check(t, announcement)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAnnouncementService_ListActive(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	mockRepo.On("ListActive", mock.Anything).Return([]model.Announcement{
		{Title: "newest"}, {Title: "older"},
	}, nil)

	svc := NewAnnouncementService(mockRepo)
	list, err := svc.ListActive(context.Background())

	assert.NoError(t, err)
	assert.Len(t, list, 2)
	mockRepo.AssertExpectations(t)
}

func TestAnnouncementService_Deactivate(t *testing.T) {
	id := uuid.New()

	mockRepo := new(MockAnnouncementRepository)
	mockRepo.On("Deactivate", mock.Anything, id).Return(nil)

	svc := NewAnnouncementService(mockRepo)
	assert.NoError(t, svc.Deactivate(context.Background(), id))
	mockRepo.AssertExpectations(t)
}
