package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hostelops/internal/errors"
	"hostelops/internal/model"
	"hostelops/internal/repository"
)

// MockComplaintRepository is a mock implementation of ComplaintRepository.
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) Save(ctx context.Context, complaint *model.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, f repository.ComplaintFilter) ([]model.Complaint, error) {
	args := m.Called(ctx, studentID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) List(ctx context.Context, f repository.ComplaintFilter) ([]model.Complaint, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Complaint), args.Get(1).(int64), args.Error(2)
}

func (m *MockComplaintRepository) FindAll(ctx context.Context) ([]model.Complaint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Complaint), args.Error(1)
}

func (m *MockComplaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockComplaintRepository) CountBy(ctx context.Context, column string) ([]repository.GroupCount, error) {
	args := m.Called(ctx, column)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.GroupCount), args.Error(1)
}

func (m *MockComplaintRepository) HasUpvote(ctx context.Context, complaintID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, complaintID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockComplaintRepository) AddUpvote(ctx context.Context, upvote *model.Upvote) error {
	args := m.Called(ctx, upvote)
	return args.Error(0)
}

func (m *MockComplaintRepository) RemoveUpvote(ctx context.Context, complaintID, userID uuid.UUID) error {
	args := m.Called(ctx, complaintID, userID)
	return args.Error(0)
}

func (m *MockComplaintRepository) CountUpvotes(ctx context.Context, complaintID uuid.UUID) (int64, error) {
	args := m.Called(ctx, complaintID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockComplaintRepository) UpdateRating(ctx context.Context, complaintID, studentID uuid.UUID, rating int, note string) (int64, error) {
	args := m.Called(ctx, complaintID, studentID, rating, note)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockComplaintRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockComplaintRepository) ListComments(ctx context.Context, complaintID uuid.UUID) ([]model.Comment, error) {
	args := m.Called(ctx, complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID uuid.UUID, message, notificationType string) error {
	args := m.Called(ctx, userID, message, notificationType)
	return args.Error(0)
}

func testStudent() *model.User {
	return &model.User{
		ID:          uuid.New(),
		Name:        "Arjun Kumar",
		Email:       "arjun@hostel.com",
		Role:        model.RoleStudent,
		RoomNumber:  "A-101",
		HostelBlock: "A",
	}
}

func TestComplaintService_Create(t *testing.T) {
	student := testStudent()

	tests := []struct {
		name      string
		input     CreateComplaintInput
		setupMock func(*MockComplaintRepository)
		wantErr   bool
		check     func(*testing.T, *model.Complaint)
	}{
		{
			name: "successful create defaults to Pending and Medium",
			input: CreateComplaintInput{
				Title:       "Leaking tap",
				Category:    "Plumbing",
				Description: "Tap in room A-101 leaks constantly",
			},
			setupMock: func(m *MockComplaintRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Complaint")).Return(nil)
			},
			check: func(t *testing.T, c *model.Complaint) {
				assert.Equal(t, model.StatusPending, c.Status)
				assert.Equal(t, model.PriorityMedium, c.Priority)
				assert.Nil(t, c.ResolvedAt)
				assert.True(t, c.IsPublic)
				assert.Equal(t, student.ID, c.StudentID)
				assert.Equal(t, "Arjun Kumar", c.StudentName)
				assert.Equal(t, "A-101", c.StudentRoom)
				assert.Equal(t, "A", c.StudentBlock)
			},
		},
		{
			name: "explicit priority and private flag are honored",
			input: CreateComplaintInput{
				Title:       "Broken lock",
				Category:    "Security",
				Description: "Door lock jammed",
				Priority:    model.PriorityUrgent,
				IsPublic:    boolPtr(false),
			},
			setupMock: func(m *MockComplaintRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Complaint")).Return(nil)
			},
			check: func(t *testing.T, c *model.Complaint) {
				assert.Equal(t, model.PriorityUrgent, c.Priority)
				assert.False(t, c.IsPublic)
			},
		},
		{
			name: "missing title",
			input: CreateComplaintInput{
				Category:    "Plumbing",
				Description: "something",
			},
			setupMock: func(m *MockComplaintRepository) {},
			wantErr:   true,
		},
		{
			name: "unrecognized category",
			input: CreateComplaintInput{
				Title:       "Weird issue",
				Category:    "Astrology",
				Description: "unexplainable",
			},
			setupMock: func(m *MockComplaintRepository) {},
			wantErr:   true,
		},
		{
			name: "unrecognized priority",
			input: CreateComplaintInput{
				Title:       "Fan broken",
				Category:    "Electrical",
				Description: "ceiling fan dead",
				Priority:    "Extreme",
			},
			setupMock: func(m *MockComplaintRepository) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockComplaintRepository)
			tt.setupMock(mockRepo)

			svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
			complaint, err := svc.Create(context.Background(), student, tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				var ve *errors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Nil(t, complaint)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, complaint)
				tt.check(t, complaint)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestComplaintService_Update_StatusChangeNotifies(t *testing.T) {
	studentID := uuid.New()
	complaintID := uuid.New()

	mockRepo := new(MockComplaintRepository)
	mockNotifier := new(MockNotifier)

	mockRepo.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{
		ID:        complaintID,
		StudentID: studentID,
		Title:     "Leaking tap",
		Status:    model.StatusPending,
	}, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Complaint")).Return(nil)
	mockNotifier.On("Notify", mock.Anything, studentID,
		`Your complaint "Leaking tap" status changed to In Progress`,
		model.NotificationInfo).Return(nil)

	svc := NewComplaintService(mockRepo, mockNotifier, nil)
	updated, err := svc.Update(context.Background(), complaintID, UpdateComplaintInput{
		Status: model.StatusInProgress,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, updated.Status)
	assert.Nil(t, updated.ResolvedAt)
	mockNotifier.AssertNumberOfCalls(t, "Notify", 1)
	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestComplaintService_Update_ResolveStampsOnceAndNotifiesSuccess(t *testing.T) {
	studentID := uuid.New()
	complaintID := uuid.New()

	mockRepo := new(MockComplaintRepository)
	mockNotifier := new(MockNotifier)

	mockRepo.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{
		ID:        complaintID,
		StudentID: studentID,
		Title:     "No hot water",
		Status:    model.StatusInProgress,
	}, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Complaint")).Return(nil)
	mockNotifier.On("Notify", mock.Anything, studentID,
		`Your complaint "No hot water" status changed to Resolved`,
		model.NotificationSuccess).Return(nil)

	svc := NewComplaintService(mockRepo, mockNotifier, nil)
	updated, err := svc.Update(context.Background(), complaintID, UpdateComplaintInput{
		Status: model.StatusResolved,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusResolved, updated.Status)
	assert.NotNil(t, updated.ResolvedAt)
	mockNotifier.AssertExpectations(t)
}

func TestComplaintService_Update_ResolvedAtNotRestamped(t *testing.T) {
	complaintID := uuid.New()
	firstResolution := time.Now().Add(-48 * time.Hour)

	mockRepo := new(MockComplaintRepository)
	mockRepo.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{
		ID:         complaintID,
		StudentID:  uuid.New(),
		Title:      "Pest problem",
		Status:     model.StatusResolved,
		ResolvedAt: &firstResolution,
	}, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Complaint")).Return(nil)

	svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
	updated, err := svc.Update(context.Background(), complaintID, UpdateComplaintInput{
		Status:    model.StatusResolved,
		AdminNote: "sprayed again",
	})

	assert.NoError(t, err)
	assert.Equal(t, firstResolution, *updated.ResolvedAt)
	assert.Equal(t, "sprayed again", updated.AdminNote)
}

func TestComplaintService_Update_NoStatusChangeNoNotification(t *testing.T) {
	complaintID := uuid.New()

	mockRepo := new(MockComplaintRepository)
	mockNotifier := new(MockNotifier)
	mockRepo.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{
		ID:        complaintID,
		StudentID: uuid.New(),
		Title:     "Wifi down",
		Status:    model.StatusPending,
		AdminNote: "old note",
	}, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Complaint")).Return(nil)

	svc := NewComplaintService(mockRepo, mockNotifier, nil)
	updated, err := svc.Update(context.Background(), complaintID, UpdateComplaintInput{
		AdminNote: "technician scheduled",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, updated.Status)
	assert.Equal(t, "technician scheduled", updated.AdminNote)
	mockNotifier.AssertNumberOfCalls(t, "Notify", 0)
}

func TestComplaintService_Update_EmptyFieldsKeepValues(t *testing.T) {
	complaintID := uuid.New()

	mockRepo := new(MockComplaintRepository)
	mockRepo.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{
		ID:         complaintID,
		StudentID:  uuid.New(),
		Title:      "Broken chair",
		Status:     model.StatusInProgress,
		AdminNote:  "carpenter called",
		AssignedTo: "Ravi",
	}, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Complaint")).Return(nil)

	svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
	updated, err := svc.Update(context.Background(), complaintID, UpdateComplaintInput{})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, updated.Status)
	assert.Equal(t, "carpenter called", updated.AdminNote)
	assert.Equal(t, "Ravi", updated.AssignedTo)
}

func TestComplaintService_Update_ClearAssignment(t *testing.T) {
	complaintID := uuid.New()

	mockRepo := new(MockComplaintRepository)
	mockRepo.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{
		ID:         complaintID,
		StudentID:  uuid.New(),
		Title:      "Broken chair",
		Status:     model.StatusInProgress,
		AssignedTo: "Ravi",
	}, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Complaint")).Return(nil)

	empty := ""
	svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
	updated, err := svc.Update(context.Background(), complaintID, UpdateComplaintInput{
		AssignedTo: &empty,
	})

	assert.NoError(t, err)
	assert.Equal(t, "", updated.AssignedTo)
}

func TestComplaintService_Update_NotFound(t *testing.T) {
	complaintID := uuid.New()

	mockRepo := new(MockComplaintRepository)
	mockRepo.On("FindByID", mock.Anything, complaintID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
	updated, err := svc.Update(context.Background(), complaintID, UpdateComplaintInput{
		Status: model.StatusResolved,
	})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errors.ErrComplaintNotFound)
}

func TestComplaintService_Update_InvalidStatus(t *testing.T) {
	complaintID := uuid.New()

	mockRepo := new(MockComplaintRepository)
	mockRepo.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{
		ID:        complaintID,
		StudentID: uuid.New(),
		Status:    model.StatusPending,
	}, nil)

	svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
	_, err := svc.Update(context.Background(), complaintID, UpdateComplaintInput{
		Status: "Done",
	})

	var ve *errors.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestComplaintService_Upvote(t *testing.T) {
	owner := testStudent()
	voter := testStudent()
	complaintID := uuid.New()

	tests := []struct {
		name        string
		user        *model.User
		setupMock   func(*MockComplaintRepository)
		wantErr     error
		wantVotes   int64
		wantUpvoted bool
	}{
		{
			name: "first vote adds",
			user: voter,
			setupMock: func(m *MockComplaintRepository) {
				m.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{ID: complaintID, StudentID: owner.ID}, nil)
				m.On("HasUpvote", mock.Anything, complaintID, voter.ID).Return(false, nil)
				m.On("AddUpvote", mock.Anything, mock.AnythingOfType("*model.Upvote")).Return(nil)
				m.On("CountUpvotes", mock.Anything, complaintID).Return(int64(1), nil)
			},
			wantVotes:   1,
			wantUpvoted: true,
		},
		{
			name: "second vote withdraws",
			user: voter,
			setupMock: func(m *MockComplaintRepository) {
				m.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{ID: complaintID, StudentID: owner.ID}, nil)
				m.On("HasUpvote", mock.Anything, complaintID, voter.ID).Return(true, nil)
				m.On("RemoveUpvote", mock.Anything, complaintID, voter.ID).Return(nil)
				m.On("CountUpvotes", mock.Anything, complaintID).Return(int64(0), nil)
			},
			wantVotes:   0,
			wantUpvoted: false,
		},
		{
			name: "self vote rejected",
			user: owner,
			setupMock: func(m *MockComplaintRepository) {
				m.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{ID: complaintID, StudentID: owner.ID}, nil)
			},
			wantErr: errors.NewValidation("upvote", "cannot upvote your own complaint"),
		},
		{
			name: "complaint not found",
			user: voter,
			setupMock: func(m *MockComplaintRepository) {
				m.On("FindByID", mock.Anything, complaintID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: errors.ErrComplaintNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockComplaintRepository)
			tt.setupMock(mockRepo)

			svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
			result, err := svc.Upvote(context.Background(), tt.user, complaintID)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantVotes, result.Upvotes)
				assert.Equal(t, tt.wantUpvoted, result.Upvoted)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestComplaintService_Rate(t *testing.T) {
	studentID := uuid.New()
	complaintID := uuid.New()

	tests := []struct {
		name      string
		rating    int
		setupMock func(*MockComplaintRepository)
		wantErr   error
	}{
		{
			name:   "successful rating",
			rating: 5,
			setupMock: func(m *MockComplaintRepository) {
				m.On("UpdateRating", mock.Anything, complaintID, studentID, 5, "quick fix").Return(int64(1), nil)
				m.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{
					ID:         complaintID,
					StudentID:  studentID,
					Status:     model.StatusResolved,
					Rating:     5,
					RatingNote: "quick fix",
				}, nil)
			},
		},
		{
			name:   "not resolved or not owned surfaces as not found",
			rating: 4,
			setupMock: func(m *MockComplaintRepository) {
				m.On("UpdateRating", mock.Anything, complaintID, studentID, 4, "quick fix").Return(int64(0), nil)
			},
			wantErr: errors.ErrComplaintNotFound,
		},
		{
			name:      "rating below range",
			rating:    0,
			setupMock: func(m *MockComplaintRepository) {},
			wantErr:   errors.NewValidation("rating", "rating must be between 1 and 5"),
		},
		{
			name:      "rating above range",
			rating:    6,
			setupMock: func(m *MockComplaintRepository) {},
			wantErr:   errors.NewValidation("rating", "rating must be between 1 and 5"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockComplaintRepository)
			tt.setupMock(mockRepo)

			svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
			complaint, err := svc.Rate(context.Background(), studentID, complaintID, tt.rating, "quick fix")

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, complaint)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.rating, complaint.Rating)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestComplaintService_AddComment(t *testing.T) {
	admin := &model.User{ID: uuid.New(), Name: "Warden", Role: model.RoleAdmin}
	complaintID := uuid.New()

	mockRepo := new(MockComplaintRepository)
	mockRepo.On("FindByID", mock.Anything, complaintID).Return(&model.Complaint{ID: complaintID, StudentID: uuid.New()}, nil)
	mockRepo.On("AddComment", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
		return c.ComplaintID == complaintID &&
			c.AuthorID == admin.ID &&
			c.AuthorName == "Warden" &&
			c.AuthorRole == model.RoleAdmin &&
			c.Text == "Plumber visits tomorrow"
	})).Return(nil)
	mockRepo.On("ListComments", mock.Anything, complaintID).Return([]model.Comment{
		{ComplaintID: complaintID, AuthorID: admin.ID, Text: "Plumber visits tomorrow"},
	}, nil)

	svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
	thread, err := svc.AddComment(context.Background(), admin, complaintID, "Plumber visits tomorrow")

	assert.NoError(t, err)
	assert.Len(t, thread, 1)
	mockRepo.AssertExpectations(t)
}

func TestComplaintService_AddComment_EmptyText(t *testing.T) {
	svc := NewComplaintService(new(MockComplaintRepository), new(MockNotifier), nil)
	thread, err := svc.AddComment(context.Background(), testStudent(), uuid.New(), "")

	assert.Nil(t, thread)
	var ve *errors.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestComplaintService_ListAll_Pagination(t *testing.T) {
	mockRepo := new(MockComplaintRepository)
	mockRepo.On("List", mock.Anything, repository.ComplaintFilter{Page: 1, PageSize: 20}).
		Return(make([]model.Complaint, 20), int64(45), nil)

	svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
	page, err := svc.ListAll(context.Background(), repository.ComplaintFilter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(45), page.Total)
	assert.Equal(t, int64(3), page.Pages)
	mockRepo.AssertExpectations(t)
}

func TestComplaintService_Stats(t *testing.T) {
	now := time.Now()
	resolvedAt := now.Add(10 * time.Hour)

	all := []model.Complaint{
		{Status: model.StatusPending, Priority: model.PriorityUrgent},
		{Status: model.StatusPending},
		{Status: model.StatusInProgress},
		{Status: model.StatusResolved, Priority: model.PriorityUrgent, Rating: 4, CreatedAt: now, ResolvedAt: &resolvedAt},
		{Status: model.StatusResolved, Rating: 5, CreatedAt: now, ResolvedAt: &resolvedAt},
		{Status: model.StatusRejected},
		{Status: model.StatusOnHold},
	}

	mockRepo := new(MockComplaintRepository)
	mockRepo.On("FindAll", mock.Anything).Return(all, nil)
	mockRepo.On("CountBy", mock.Anything, "category").Return([]repository.GroupCount{{Name: "Plumbing", Count: 7}}, nil)
	mockRepo.On("CountBy", mock.Anything, "status").Return([]repository.GroupCount{{Name: "Pending", Count: 2}}, nil)
	mockRepo.On("CountBy", mock.Anything, "priority").Return([]repository.GroupCount{{Name: "Urgent", Count: 2}}, nil)

	svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), stats.Total)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, int64(1), stats.InProgress)
	assert.Equal(t, int64(2), stats.Resolved)
	assert.Equal(t, int64(1), stats.Rejected)
	assert.Equal(t, int64(1), stats.OnHold)
	// urgent counts only unresolved urgent complaints
	assert.Equal(t, int64(1), stats.Urgent)
	assert.Equal(t, 4.5, stats.AvgRating)
	assert.Equal(t, 10.0, stats.AvgResolutionHrs)
	assert.Len(t, stats.ByCategory, 1)
	assert.Len(t, stats.ByStatus, 1)
	assert.Len(t, stats.ByPriority, 1)
	mockRepo.AssertExpectations(t)
}

func TestComplaintService_Remove(t *testing.T) {
	complaintID := uuid.New()

	mockRepo := new(MockComplaintRepository)
	mockRepo.On("Delete", mock.Anything, complaintID).Return(nil)

	svc := NewComplaintService(mockRepo, new(MockNotifier), nil)
	err := svc.Remove(context.Background(), complaintID)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func boolPtr(b bool) *bool { return &b }
