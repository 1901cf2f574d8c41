package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Severity is the four-tier classification derived from net community votes
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Status is the lifecycle state of a report. The canonical order is
// Under Review -> Processing -> Pending Confirmation -> Resolved.
type Status string

const (
	StatusUnderReview         Status = "Under Review"
	StatusProcessing          Status = "Processing"
	StatusPendingConfirmation Status = "Pending Confirmation"
	StatusResolved            Status = "Resolved"
)

// StatusOrder lists the lifecycle states in canonical ascending order
var StatusOrder = []Status{
	StatusUnderReview,
	StatusProcessing,
	StatusPendingConfirmation,
	StatusResolved,
}

// IsValidStatus reports whether s is one of the known lifecycle states
func IsValidStatus(s Status) bool {
	for _, known := range StatusOrder {
		if s == known {
			return true
		}
	}
	return false
}

// Report represents a single civic-issue submission.
// Presence of a per-status timestamp is the sole signal that the report
// ever occupied that status.
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ReportID    int64              `bson:"reportId" json:"report_id"`
	UserID      primitive.ObjectID `bson:"userId" json:"user_id"`
	Date        string             `bson:"date" json:"date"` // YYYY-MM-DD
	Time        string             `bson:"time" json:"time"` // HH:MM:SS
	Location    string             `bson:"location" json:"location"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	URL         string             `bson:"url" json:"url"` // comma-joined image URLs
	Upvote      int                `bson:"upvote" json:"upvote"`
	Downvote    int                `bson:"downvote" json:"downvote"`
	Severity    Severity           `bson:"severity,omitempty" json:"severity,omitempty"`
	Status      Status             `bson:"status" json:"status"`

	UnderReviewAt                *time.Time `bson:"underReviewAt,omitempty" json:"under_review_at,omitempty"`
	ProcessingUpdatedAt          *time.Time `bson:"processingUpdatedAt,omitempty" json:"processing_updated_at,omitempty"`
	PendingConfirmationUpdatedAt *time.Time `bson:"pendingConfirmationUpdatedAt,omitempty" json:"pending_confirmation_updated_at,omitempty"`
	ResolvedUpdatedAt            *time.Time `bson:"resolvedUpdatedAt,omitempty" json:"resolved_updated_at,omitempty"`

	Remarks   string    `bson:"remarks,omitempty" json:"remarks,omitempty"`
	Confirmed *bool     `bson:"confirmed,omitempty" json:"confirmed,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReportedAt combines the report's date and time fields into a timestamp
func (r *Report) ReportedAt() (time.Time, error) {
	return time.ParseInLocation("2006-01-02T15:04:05", r.Date+"T"+r.Time, time.Local)
}

// CreateReportRequest is the payload for submitting a new report
type CreateReportRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Location    string `json:"location" binding:"required,min=2,max=120"`
	Category    string `json:"category" binding:"required,min=2,max=60"`
	Description string `json:"description" binding:"required,min=5,max=2000"`
	URL         string `json:"url" binding:"required"`
}

// UpdateStatusRequest is the payload for advancing a report's lifecycle
type UpdateStatusRequest struct {
	Status  Status `json:"status" binding:"required"`
	Remarks string `json:"remarks" binding:"omitempty,max=500"`
}

// ConfirmRequest is the payload for the reporter's resolution confirmation
type ConfirmRequest struct {
	Confirmed *bool `json:"confirmed" binding:"required"`
}

// ListQuery holds pagination parameters for report listings
type ListQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}
