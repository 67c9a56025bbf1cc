package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelops/internal/model"
)

// ComplaintFilter narrows complaint listings. Zero values mean "no filter".
type ComplaintFilter struct {
	Status   string
	Category string
	Priority string
	Search   string
	Page     int
	PageSize int
}

// GroupCount is a single bucket of a grouped count query.
type GroupCount struct {
	Name  string `json:"name" gorm:"column:name"`
	Count int64  `json:"count" gorm:"column:count"`
}

// ComplaintRepository defines complaint persistence operations, including the
// embedded comment thread and the upvote set.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	Save(ctx context.Context, complaint *model.Complaint) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Complaint, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, f ComplaintFilter) ([]model.Complaint, error)
	List(ctx context.Context, f ComplaintFilter) ([]model.Complaint, int64, error)
	FindAll(ctx context.Context) ([]model.Complaint, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountBy(ctx context.Context, column string) ([]GroupCount, error)

	HasUpvote(ctx context.Context, complaintID, userID uuid.UUID) (bool, error)
	AddUpvote(ctx context.Context, upvote *model.Upvote) error
	RemoveUpvote(ctx context.Context, complaintID, userID uuid.UUID) error
	CountUpvotes(ctx context.Context, complaintID uuid.UUID) (int64, error)

	UpdateRating(ctx context.Context, complaintID, studentID uuid.UUID, rating int, note string) (int64, error)
	AddComment(ctx context.Context, comment *model.Comment) error
	ListComments(ctx context.Context, complaintID uuid.UUID) ([]model.Comment, error)
}

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository.
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create creates a new complaint.
func (r *complaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// Save persists changes to an existing complaint.
func (r *complaintRepository) Save(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Save(complaint).Error
}

// FindByID finds a complaint by ID.
func (r *complaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Complaint, error) {
	var complaint model.Complaint
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

func applyEqualityFilters(q *gorm.DB, f ComplaintFilter) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	return q
}

// ListByStudent returns one student's complaints, newest first.
func (r *complaintRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, f ComplaintFilter) ([]model.Complaint, error) {
	var complaints []model.Complaint
	q := r.db.WithContext(ctx).Where("student_id = ?", studentID)
	q = applyEqualityFilters(q, f)
	if err := q.Order("created_at DESC").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// List returns a page of complaints, newest first, with the total count of
// records matching the filter. Search matches title, description, or the
// snapshotted student name as a case-insensitive substring.
func (r *complaintRepository) List(ctx context.Context, f ComplaintFilter) ([]model.Complaint, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Complaint{})
	q = applyEqualityFilters(q, f)
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ? OR student_name LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var complaints []model.Complaint
	err := q.Order("created_at DESC").
		Limit(f.PageSize).
		Offset((f.Page - 1) * f.PageSize).
		Find(&complaints).Error
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

// FindAll returns every complaint.
func (r *complaintRepository) FindAll(ctx context.Context) ([]model.Complaint, error) {
	var complaints []model.Complaint
	if err := r.db.WithContext(ctx).Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// Delete hard-deletes a complaint and its owned comments and upvotes.
// Deleting an absent ID is a no-op.
func (r *complaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("complaint_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("complaint_id = ?", id).Delete(&model.Upvote{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Complaint{}).Error
	})
}

// CountBy groups complaints by the given column and counts each bucket.
// The column name must come from a fixed set; it is interpolated into SQL.
func (r *complaintRepository) CountBy(ctx context.Context, column string) ([]GroupCount, error) {
	var counts []GroupCount
	err := r.db.WithContext(ctx).Model(&model.Complaint{}).
		Select(column + " AS name, COUNT(*) AS count").
		Group(column).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// HasUpvote reports whether the user already upvoted the complaint.
func (r *complaintRepository) HasUpvote(ctx context.Context, complaintID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Upvote{}).
		Where("complaint_id = ? AND user_id = ?", complaintID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddUpvote records an upvote. The composite primary key rejects duplicates
// racing on the same (complaint, user) pair.
func (r *complaintRepository) AddUpvote(ctx context.Context, upvote *model.Upvote) error {
	return r.db.WithContext(ctx).Create(upvote).Error
}

// RemoveUpvote withdraws an upvote.
func (r *complaintRepository) RemoveUpvote(ctx context.Context, complaintID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("complaint_id = ? AND user_id = ?", complaintID, userID).
		Delete(&model.Upvote{}).Error
}

// CountUpvotes returns the current upvote total for the complaint.
func (r *complaintRepository) CountUpvotes(ctx context.Context, complaintID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Upvote{}).
		Where("complaint_id = ?", complaintID).
		Count(&count).Error
	return count, err
}

// UpdateRating sets the rating on a complaint only when it belongs to the
// student and is Resolved. Returns the number of rows affected so the caller
// can distinguish "no matching record" from success.
func (r *complaintRepository) UpdateRating(ctx context.Context, complaintID, studentID uuid.UUID, rating int, note string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Complaint{}).
		Where("id = ? AND student_id = ? AND status = ?", complaintID, studentID, model.StatusResolved).
		Updates(map[string]interface{}{"rating": rating, "rating_note": note})
	return res.RowsAffected, res.Error
}

// AddComment appends a comment to the complaint's thread.
func (r *complaintRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListComments returns the complaint's comments in posting order.
func (r *complaintRepository) ListComments(ctx context.Context, complaintID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
