package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelops/internal/cache"
	"hostelops/internal/errors"
	"hostelops/internal/model"
	"hostelops/internal/repository"
)

const (
	defaultPageSize = 20
	statsCacheKey   = "complaints:stats"
	statsCacheTTL   = 30 * time.Second
)

// CreateComplaintInput carries the fields a student submits with a new complaint.
type CreateComplaintInput struct {
	Title       string
	Category    string
	Description string
	Priority    string
	Location    string
	Tags        []string
	IsPublic    *bool
}

// UpdateComplaintInput carries the admin-editable fields. For Status,
// AdminNote, and RejectionReason an empty string means "no change"; an
// explicit empty AssignedTo clears the assignment (pointer presence).
type UpdateComplaintInput struct {
	Status             string
	AdminNote          string
	AssignedTo         *string
	ExpectedResolution *time.Time
	RejectionReason    string
}

// UpvoteResult reports the outcome of an upvote toggle.
type UpvoteResult struct {
	Upvotes int64 `json:"upvotes"`
	Upvoted bool  `json:"upvoted"`
}

// ComplaintPage is one page of an admin listing.
type ComplaintPage struct {
	Complaints []model.Complaint `json:"complaints"`
	Total      int64             `json:"total"`
	Pages      int64             `json:"pages"`
}

// ComplaintStats aggregates the whole complaint population.
type ComplaintStats struct {
	Total            int64                   `json:"total"`
	Pending          int64                   `json:"pending"`
	InProgress       int64                   `json:"inProgress"`
	Resolved         int64                   `json:"resolved"`
	Rejected         int64                   `json:"rejected"`
	OnHold           int64                   `json:"onHold"`
	Urgent           int64                   `json:"urgent"`
	AvgRating        float64                 `json:"avgRating"`
	AvgResolutionHrs float64                 `json:"avgResolutionHrs"`
	ByCategory       []repository.GroupCount `json:"byCategory"`
	ByStatus         []repository.GroupCount `json:"byStatus"`
	ByPriority       []repository.GroupCount `json:"byPriority"`
}

// ComplaintService is the complaint lifecycle engine: creation, listing,
// admin triage, engagement (upvote/rate/comment), stats, and removal, plus
// the notification side effects of status changes.
type ComplaintService interface {
	Create(ctx context.Context, student *model.User, in CreateComplaintInput) (*model.Complaint, error)
	ListMine(ctx context.Context, studentID uuid.UUID, f repository.ComplaintFilter) ([]model.Complaint, error)
	ListAll(ctx context.Context, f repository.ComplaintFilter) (*ComplaintPage, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateComplaintInput) (*model.Complaint, error)
	Upvote(ctx context.Context, user *model.User, id uuid.UUID) (*UpvoteResult, error)
	Rate(ctx context.Context, studentID uuid.UUID, id uuid.UUID, rating int, note string) (*model.Complaint, error)
	AddComment(ctx context.Context, author *model.User, id uuid.UUID, text string) ([]model.Comment, error)
	Stats(ctx context.Context) (*ComplaintStats, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	notifier      Notifier
	cache         *cache.Client
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(complaintRepo repository.ComplaintRepository, notifier Notifier, cache *cache.Client) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		notifier:      notifier,
		cache:         cache,
	}
}

// Create files a new complaint in Pending state, snapshotting the student's
// current name/room/block onto the record.
func (s *complaintService) Create(ctx context.Context, student *model.User, in CreateComplaintInput) (*model.Complaint, error) {
	if in.Title == "" {
		return nil, errors.NewValidation("title", "title is required")
	}
	if in.Category == "" {
		return nil, errors.NewValidation("category", "category is required")
	}
	if !model.ValidCategory(in.Category) {
		return nil, errors.NewValidation("category", "unrecognized category")
	}
	if in.Description == "" {
		return nil, errors.NewValidation("description", "description is required")
	}

	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return nil, errors.NewValidation("priority", "unrecognized priority")
	}

	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	complaint := &model.Complaint{
		StudentID:    student.ID,
		StudentName:  student.Name,
		StudentRoom:  student.RoomNumber,
		StudentBlock: student.HostelBlock,
		Title:        in.Title,
		Category:     in.Category,
		Description:  in.Description,
		Priority:     priority,
		Location:     in.Location,
		Status:       model.StatusPending,
		Tags:         tags,
		IsPublic:     isPublic,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, fmt.Errorf("create complaint: %w", err)
	}
	s.invalidateStats(ctx)
	return complaint, nil
}

// ListMine returns the student's own complaints, newest first, optionally
// narrowed by equality filters.
func (s *complaintService) ListMine(ctx context.Context, studentID uuid.UUID, f repository.ComplaintFilter) ([]model.Complaint, error) {
	return s.complaintRepo.ListByStudent(ctx, studentID, f)
}

// ListAll returns a filtered, searchable, paginated listing of all complaints.
func (s *complaintService) ListAll(ctx context.Context, f repository.ComplaintFilter) (*ComplaintPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}

	complaints, total, err := s.complaintRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}

	pages := (total + int64(f.PageSize) - 1) / int64(f.PageSize)
	return &ComplaintPage{
		Complaints: complaints,
		Total:      total,
		Pages:      pages,
	}, nil
}

// Update merges the provided admin fields into the complaint and applies the
// status transition rules: first entry into Resolved stamps resolvedAt, and
// any actual status change notifies the owning student. The notification is
// best-effort; the primary update commits regardless.
func (s *complaintService) Update(ctx context.Context, id uuid.UUID, in UpdateComplaintInput) (*model.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}

	oldStatus := complaint.Status

	if in.Status != "" {
		if !model.ValidStatus(in.Status) {
			return nil, errors.NewValidation("status", "unrecognized status")
		}
		complaint.Status = in.Status
	}
	if in.AdminNote != "" {
		complaint.AdminNote = in.AdminNote
	}
	if in.AssignedTo != nil {
		complaint.AssignedTo = *in.AssignedTo
	}
	if in.ExpectedResolution != nil {
		complaint.ExpectedResolution = in.ExpectedResolution
	}
	if in.RejectionReason != "" {
		complaint.RejectionReason = in.RejectionReason
	}

	// resolvedAt is stamped once, on the first transition into Resolved.
	if complaint.Status == model.StatusResolved && complaint.ResolvedAt == nil {
		now := time.Now()
		complaint.ResolvedAt = &now
	}

	if err := s.complaintRepo.Save(ctx, complaint); err != nil {
		return nil, fmt.Errorf("save complaint: %w", err)
	}
	s.invalidateStats(ctx)

	if oldStatus != complaint.Status {
		msg := fmt.Sprintf("Your complaint %q status changed to %s", complaint.Title, complaint.Status)
		notificationType := model.NotificationInfo
		if complaint.Status == model.StatusResolved {
			notificationType = model.NotificationSuccess
		}
		_ = s.notifier.Notify(ctx, complaint.StudentID, msg, notificationType)
	}

	return complaint, nil
}

// Upvote toggles the caller's upvote on the complaint. Self-upvotes are
// rejected as a validation error, distinct from not-found.
func (s *complaintService) Upvote(ctx context.Context, user *model.User, id uuid.UUID) (*UpvoteResult, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}

	if complaint.StudentID == user.ID {
		return nil, errors.NewValidation("upvote", "cannot upvote your own complaint")
	}

	voted, err := s.complaintRepo.HasUpvote(ctx, id, user.ID)
	if err != nil {
		return nil, fmt.Errorf("check upvote: %w", err)
	}

	if voted {
		err = s.complaintRepo.RemoveUpvote(ctx, id, user.ID)
	} else {
		err = s.complaintRepo.AddUpvote(ctx, &model.Upvote{ComplaintID: id, UserID: user.ID})
	}
	if err != nil {
		return nil, fmt.Errorf("toggle upvote: %w", err)
	}

	count, err := s.complaintRepo.CountUpvotes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count upvotes: %w", err)
	}

	return &UpvoteResult{Upvotes: count, Upvoted: !voted}, nil
}

// Rate records the owning student's rating of their resolved complaint.
// Not-yours and not-resolved both surface as not-found so the response never
// confirms the existence of other users' records. Re-rating overwrites.
func (s *complaintService) Rate(ctx context.Context, studentID uuid.UUID, id uuid.UUID, rating int, note string) (*model.Complaint, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.NewValidation("rating", "rating must be between 1 and 5")
	}

	affected, err := s.complaintRepo.UpdateRating(ctx, id, studentID, rating, note)
	if err != nil {
		return nil, fmt.Errorf("update rating: %w", err)
	}
	if affected == 0 {
		return nil, errors.ErrComplaintNotFound
	}

	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload complaint: %w", err)
	}
	s.invalidateStats(ctx)
	return complaint, nil
}

// AddComment appends a comment, snapshotting the author's name and role, and
// returns the full updated thread.
func (s *complaintService) AddComment(ctx context.Context, author *model.User, id uuid.UUID, text string) ([]model.Comment, error) {
	if text == "" {
		return nil, errors.NewValidation("text", "comment text is required")
	}

	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("find complaint: %w", err)
	}

	comment := &model.Comment{
		ComplaintID: complaint.ID,
		AuthorID:    author.ID,
		AuthorName:  author.Name,
		AuthorRole:  author.Role,
		Text:        text,
	}
	if err := s.complaintRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	return s.complaintRepo.ListComments(ctx, complaint.ID)
}

// Stats aggregates the whole complaint population. Results are cached briefly
// since the listing is admin-dashboard traffic.
func (s *complaintService) Stats(ctx context.Context) (*ComplaintStats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached ComplaintStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	all, err := s.complaintRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load complaints: %w", err)
	}

	stats := &ComplaintStats{Total: int64(len(all))}

	var ratingSum, ratedCount int64
	var resolutionSum time.Duration
	var resolutionCount int64

	for _, c := range all {
		switch c.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusResolved:
			stats.Resolved++
		case model.StatusRejected:
			stats.Rejected++
		case model.StatusOnHold:
			stats.OnHold++
		}
		if c.Priority == model.PriorityUrgent && c.Status != model.StatusResolved {
			stats.Urgent++
		}
		if c.Rating > 0 {
			ratingSum += int64(c.Rating)
			ratedCount++
		}
		if c.Status == model.StatusResolved && c.ResolvedAt != nil {
			resolutionSum += c.ResolvedAt.Sub(c.CreatedAt)
			resolutionCount++
		}
	}

	if ratedCount > 0 {
		stats.AvgRating = round1(float64(ratingSum) / float64(ratedCount))
	}
	if resolutionCount > 0 {
		avg := resolutionSum.Hours() / float64(resolutionCount)
		stats.AvgResolutionHrs = round1(avg)
	}

	if stats.ByCategory, err = s.complaintRepo.CountBy(ctx, "category"); err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	if stats.ByStatus, err = s.complaintRepo.CountBy(ctx, "status"); err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	if stats.ByPriority, err = s.complaintRepo.CountBy(ctx, "priority"); err != nil {
		return nil, fmt.Errorf("count by priority: %w", err)
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}

	return stats, nil
}

// Remove hard-deletes a complaint. Removing an absent ID is not an error.
func (s *complaintService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.complaintRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete complaint: %w", err)
	}
	s.invalidateStats(ctx)
	return nil
}

func (s *complaintService) invalidateStats(ctx context.Context) {
	_ = s.cache.Delete(ctx, statsCacheKey)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
