package votes

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opencivic/civicfix/internal/features/reports"
	apperrors "github.com/opencivic/civicfix/pkg/errors"
)

// reportStore is the slice of the reports repository the vote service
// needs.
type reportStore interface {
	GetByReportID(ctx context.Context, reportID int64) (*reports.Report, error)
	UpdateVoteCounts(ctx context.Context, reportID int64, upvote, downvote int, severity reports.Severity) (*reports.Report, error)
}

// ledgerStore is the slice of the vote ledger the service needs.
type ledgerStore interface {
	GetVote(ctx context.Context, userID primitive.ObjectID, reportID int64) (*Vote, error)
	RecordVote(ctx context.Context, userID primitive.ObjectID, reportID int64, voteType VoteType) error
}

// Service applies vote transitions against the ledger and the report
// counters.
type Service struct {
	reports reportStore
	ledger  ledgerStore
}

func NewService(reportRepo reportStore, ledger ledgerStore) *Service {
	return &Service{reports: reportRepo, ledger: ledger}
}

// Cast applies one vote by the user on the report.
//
// Re-casting the direction the user already holds is rejected with
// ErrDuplicateVote and mutates nothing. Casting the opposite direction
// moves the vote: the old counter is decremented (never below zero) and
// the new counter incremented. Counters and the severity derived from
// them are written in a single update; the ledger entry is recorded only
// after that write succeeds, so a failed write leaves the previous vote
// in force.
func (s *Service) Cast(ctx context.Context, userID primitive.ObjectID, reportID int64, voteType VoteType) (*reports.Report, error) {
	prev, err := s.ledger.GetVote(ctx, userID, reportID)
	if err != nil {
		return nil, err
	}
	if prev != nil && prev.Type == voteType {
		return nil, apperrors.ErrDuplicateVote
	}

	report, err := s.reports.GetByReportID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	upvote, downvote := report.Upvote, report.Downvote
	if prev != nil {
		switch prev.Type {
		case VoteUpvote:
			upvote = max(0, upvote-1)
		case VoteDownvote:
			downvote = max(0, downvote-1)
		}
	}
	switch voteType {
	case VoteUpvote:
		upvote++
	case VoteDownvote:
		downvote++
	}

	severity := reports.CalculateSeverity(upvote, downvote)

	updated, err := s.reports.UpdateVoteCounts(ctx, reportID, upvote, downvote, severity)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.RecordVote(ctx, userID, reportID, voteType); err != nil {
		return nil, err
	}

	return updated, nil
}
