package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hostelops/internal/errors"
	"hostelops/internal/model"
)

func TestUserService_UpdateProfile(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		input     ProfileInput
		setupMock func(*MockUserRepository)
		wantErr   error
		check     func(*testing.T, *model.User)
	}{
		{
			name:  "partial update keeps omitted fields",
			input: ProfileInput{Phone: "9876543210"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.User{
					ID:          userID,
					Name:        "Arjun Kumar",
					Phone:       "1111111111",
					RoomNumber:  "A-101",
					HostelBlock: "A",
				}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, "Arjun Kumar", u.Name)
				assert.Equal(t, "9876543210", u.Phone)
				assert.Equal(t, "A-101", u.RoomNumber)
			},
		},
		{
			name:  "full update",
			input: ProfileInput{Name: "Arjun K", Phone: "222", RoomNumber: "C-305", HostelBlock: "C"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Name: "Arjun Kumar"}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, "Arjun K", u.Name)
				assert.Equal(t, "C-305", u.RoomNumber)
				assert.Equal(t, "C", u.HostelBlock)
			},
		},
		{
			name:  "user not found",
			input: ProfileInput{Name: "ghost"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.UpdateProfile(context.Background(), userID, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				tt.check(t, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Notifications(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("ListNotifications", mock.Anything, userID).Return([]model.Notification{
		{UserID: userID, Message: "second", Type: model.NotificationSuccess},
		{UserID: userID, Message: "first", Type: model.NotificationInfo},
	}, nil)

	svc := NewUserService(mockRepo)
	notifications, err := svc.Notifications(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, notifications, 2)
	assert.Equal(t, "second", notifications[0].Message)
	mockRepo.AssertExpectations(t)
}

func TestUserService_MarkNotificationsRead(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("MarkNotificationsRead", mock.Anything, userID).Return(nil)

	svc := NewUserService(mockRepo)
	assert.NoError(t, svc.MarkNotificationsRead(context.Background(), userID))
	mockRepo.AssertExpectations(t)
}

func TestNotifier_FallsBackToInfo(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("AppendNotification", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
		return n.UserID == userID && n.Type == model.NotificationInfo && !n.Read
	})).Return(nil)

	n := NewNotifier(mockRepo)
	err := n.Notify(context.Background(), userID, "hello", "shouting")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestNotifier_KeepsValidType(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("AppendNotification", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
		return n.Type == model.NotificationSuccess
	})).Return(nil)

	n := NewNotifier(mockRepo)
	assert.NoError(t, n.Notify(context.Background(), userID, "resolved", model.NotificationSuccess))
	mockRepo.AssertExpectations(t)
}
