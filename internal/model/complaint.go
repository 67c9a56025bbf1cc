package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint statuses.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusRejected   = "Rejected"
	StatusOnHold     = "On Hold"
)

// Complaint priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// Categories lists the recognized complaint categories.
var Categories = []string{
	"Electrical", "Plumbing", "Furniture", "Cleaning", "Network",
	"Security", "Pest Control", "Water Supply", "Other",
}

// Complaint is a student-filed maintenance issue tracked through a status
// lifecycle. The studentName/Room/Block fields are snapshots captured at
// creation time and are not updated when the profile changes later.
type Complaint struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	StudentID uuid.UUID `json:"student" gorm:"type:char(36);not null;index"`

	StudentName  string `json:"studentName" gorm:"size:255"`
	StudentRoom  string `json:"studentRoom" gorm:"size:50"`
	StudentBlock string `json:"studentBlock" gorm:"size:50"`

	Title       string `json:"title" gorm:"size:255;not null"`
	Category    string `json:"category" gorm:"size:50;not null;index"`
	Description string `json:"description" gorm:"type:text;not null"`
	Priority    string `json:"priority" gorm:"size:20;default:'Medium';index"`
	Location    string `json:"location" gorm:"size:255"`

	Status             string     `json:"status" gorm:"size:20;default:'Pending';index"`
	AssignedTo         string     `json:"assignedTo" gorm:"size:255"`
	AdminNote          string     `json:"adminNote" gorm:"type:text"`
	RejectionReason    string     `json:"rejectionReason" gorm:"size:512"`
	ExpectedResolution *time.Time `json:"expectedResolution,omitempty"`
	ResolvedAt         *time.Time `json:"resolvedAt,omitempty"`

	Rating     int      `json:"rating,omitempty"` // 0 means unrated
	RatingNote string   `json:"ratingNote,omitempty" gorm:"size:512"`
	Views      int      `json:"views" gorm:"default:0"`
	IsPublic   bool     `json:"isPublic" gorm:"default:true"`
	Tags       []string `json:"tags" gorm:"serializer:json"`

	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ComplaintID"`
	Upvotes  []Upvote  `json:"-" gorm:"foreignKey:ComplaintID"`
}

// Comment is an append-only entry in a complaint's discussion thread.
// authorName/authorRole are snapshots of the author at posting time.
type Comment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ComplaintID uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	AuthorID    uuid.UUID `json:"author" gorm:"type:char(36);not null"`
	AuthorName  string    `json:"authorName" gorm:"size:255"`
	AuthorRole  string    `json:"authorRole" gorm:"size:20"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Upvote records a single user's endorsement of a complaint. The composite
// primary key keeps a user from appearing twice on the same complaint.
type Upvote struct {
	ComplaintID uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID `gorm:"type:char(36);primaryKey"`
	CreatedAt   time.Time
}

// BeforeCreate sets UUID before creating the record.
func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ValidCategory reports whether cat is a recognized category.
func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// ValidPriority reports whether p is a recognized priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ValidStatus reports whether s is a recognized status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected, StatusOnHold:
		return true
	}
	return false
}
