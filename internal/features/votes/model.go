package votes

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VoteType is the direction of a cast vote
type VoteType string

const (
	VoteUpvote   VoteType = "upvote"
	VoteDownvote VoteType = "downvote"
)

// Vote is one user's current vote on one report. The (userId, reportId)
// pair is unique: a user holds at most one vote per report, and casting
// the opposite direction replaces it.
type Vote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    primitive.ObjectID `bson:"userId" json:"user_id"`
	ReportID  int64              `bson:"reportId" json:"report_id"`
	Type      VoteType           `bson:"type" json:"type"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CastVoteRequest is the payload for casting a vote
type CastVoteRequest struct {
	Type VoteType `json:"type" binding:"required,oneof=upvote downvote"`
}

// VoteStateResponse reports the caller's current vote on a report
type VoteStateResponse struct {
	ReportID int64    `json:"report_id"`
	Type     VoteType `json:"type,omitempty"`
}
