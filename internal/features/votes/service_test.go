package votes

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opencivic/civicfix/internal/features/reports"
	apperrors "github.com/opencivic/civicfix/pkg/errors"
)

type fakeReportStore struct {
	report       *reports.Report
	updateCalls  int
	failOnUpdate bool
}

func (f *fakeReportStore) GetByReportID(_ context.Context, reportID int64) (*reports.Report, error) {
	if f.report == nil || f.report.ReportID != reportID {
		return nil, apperrors.ErrNotFound
	}
	copied := *f.report
	return &copied, nil
}

func (f *fakeReportStore) UpdateVoteCounts(_ context.Context, reportID int64, upvote, downvote int, severity reports.Severity) (*reports.Report, error) {
	f.updateCalls++
	if f.failOnUpdate {
		return nil, errors.New("write failed")
	}
	f.report.Upvote = upvote
	f.report.Downvote = downvote
	f.report.Severity = severity
	copied := *f.report
	return &copied, nil
}

type fakeLedger struct {
	votes       map[string]VoteType
	recordCalls int
}

func ledgerKey(userID primitive.ObjectID, reportID int64) string {
	return userID.Hex() + "/" + strconv.FormatInt(reportID, 10)
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{votes: make(map[string]VoteType)}
}

func (f *fakeLedger) GetVote(_ context.Context, userID primitive.ObjectID, reportID int64) (*Vote, error) {
	t, ok := f.votes[ledgerKey(userID, reportID)]
	if !ok {
		return nil, nil
	}
	return &Vote{UserID: userID, ReportID: reportID, Type: t}, nil
}

func (f *fakeLedger) RecordVote(_ context.Context, userID primitive.ObjectID, reportID int64, voteType VoteType) error {
	f.recordCalls++
	f.votes[ledgerKey(userID, reportID)] = voteType
	return nil
}

func newTestService(upvote, downvote int) (*Service, *fakeReportStore, *fakeLedger) {
	store := &fakeReportStore{report: &reports.Report{
		ReportID: 42,
		Upvote:   upvote,
		Downvote: downvote,
		Severity: reports.CalculateSeverity(upvote, downvote),
	}}
	ledger := newFakeLedger()
	return NewService(store, ledger), store, ledger
}

func TestCastFirstVote(t *testing.T) {
	svc, store, ledger := newTestService(0, 0)
	userID := primitive.NewObjectID()

	updated, err := svc.Cast(context.Background(), userID, 42, VoteUpvote)
	require.NoError(t, err)
	require.Equal(t, 1, updated.Upvote)
	require.Equal(t, 0, updated.Downvote)
	require.Equal(t, reports.SeverityLow, updated.Severity)
	require.Equal(t, 1, store.updateCalls)
	require.Equal(t, 1, ledger.recordCalls)
}

func TestCastDuplicateRejectedWithoutMutation(t *testing.T) {
	svc, store, ledger := newTestService(0, 0)
	userID := primitive.NewObjectID()

	_, err := svc.Cast(context.Background(), userID, 42, VoteUpvote)
	require.NoError(t, err)

	_, err = svc.Cast(context.Background(), userID, 42, VoteUpvote)
	require.ErrorIs(t, err, apperrors.ErrDuplicateVote)
	require.Equal(t, 1, store.report.Upvote)
	require.Equal(t, 1, store.updateCalls)
	require.Equal(t, 1, ledger.recordCalls)
}

func TestCastSwitchMovesVote(t *testing.T) {
	svc, store, _ := newTestService(3, 1)
	userID := primitive.NewObjectID()

	_, err := svc.Cast(context.Background(), userID, 42, VoteUpvote)
	require.NoError(t, err)
	require.Equal(t, 4, store.report.Upvote)
	require.Equal(t, 1, store.report.Downvote)

	updated, err := svc.Cast(context.Background(), userID, 42, VoteDownvote)
	require.NoError(t, err)
	require.Equal(t, 3, updated.Upvote)
	require.Equal(t, 2, updated.Downvote)
}

func TestCastSwitchTotalInvariant(t *testing.T) {
	svc, store, _ := newTestService(5, 5)
	userID := primitive.NewObjectID()

	_, err := svc.Cast(context.Background(), userID, 42, VoteDownvote)
	require.NoError(t, err)
	before := store.report.Upvote + store.report.Downvote

	_, err = svc.Cast(context.Background(), userID, 42, VoteUpvote)
	require.NoError(t, err)
	require.Equal(t, before, store.report.Upvote+store.report.Downvote)
}

func TestCastSwitchFloorsAtZero(t *testing.T) {
	// Ledger says the user holds an upvote, but the stored counter is
	// already zero. The decrement must not go negative.
	svc, store, ledger := newTestService(0, 0)
	userID := primitive.NewObjectID()
	ledger.votes[ledgerKey(userID, 42)] = VoteUpvote

	updated, err := svc.Cast(context.Background(), userID, 42, VoteDownvote)
	require.NoError(t, err)
	require.Equal(t, 0, updated.Upvote)
	require.Equal(t, 1, updated.Downvote)
	require.Equal(t, 0, store.report.Upvote)
}

func TestCastRecomputesSeverity(t *testing.T) {
	svc, _, _ := newTestService(9, 0)
	userID := primitive.NewObjectID()

	updated, err := svc.Cast(context.Background(), userID, 42, VoteUpvote)
	require.NoError(t, err)
	require.Equal(t, 10, updated.Upvote)
	require.Equal(t, reports.SeverityCritical, updated.Severity)
}

func TestCastLedgerUntouchedOnWriteFailure(t *testing.T) {
	svc, store, ledger := newTestService(0, 0)
	store.failOnUpdate = true
	userID := primitive.NewObjectID()

	_, err := svc.Cast(context.Background(), userID, 42, VoteUpvote)
	require.Error(t, err)
	require.Equal(t, 0, ledger.recordCalls)

	vote, err := ledger.GetVote(context.Background(), userID, 42)
	require.NoError(t, err)
	require.Nil(t, vote)
}

func TestCastUnknownReport(t *testing.T) {
	svc, _, _ := newTestService(0, 0)
	userID := primitive.NewObjectID()

	_, err := svc.Cast(context.Background(), userID, 999, VoteUpvote)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
