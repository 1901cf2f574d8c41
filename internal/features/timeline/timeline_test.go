package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencivic/civicfix/internal/features/reports"
)

func ts(s string) *time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestBuildNewReportHasSingleEntry(t *testing.T) {
	report := &reports.Report{
		ReportID:      1,
		Status:        reports.StatusUnderReview,
		UnderReviewAt: ts("2026-08-20 09:15:00"),
	}

	entries := Build(report)
	require.Len(t, entries, 1)
	require.Equal(t, reports.StatusUnderReview, entries[0].Status)
	require.True(t, entries[0].Current)
	require.Equal(t, "20 Aug 2026", entries[0].Date)
	require.Equal(t, "09:15 AM", entries[0].Time)
}

func TestBuildSkipsStagesWithoutTimestamps(t *testing.T) {
	// Jumped straight from Under Review to Resolved; Processing and
	// Pending Confirmation never happened and must not appear.
	report := &reports.Report{
		ReportID:          2,
		Status:            reports.StatusResolved,
		UnderReviewAt:     ts("2026-08-20 09:15:00"),
		ResolvedUpdatedAt: ts("2026-08-25 17:40:00"),
	}

	entries := Build(report)
	require.Len(t, entries, 2)
	require.Equal(t, reports.StatusResolved, entries[0].Status)
	require.Equal(t, reports.StatusUnderReview, entries[1].Status)
}

func TestBuildNewestFirst(t *testing.T) {
	report := &reports.Report{
		ReportID:                     3,
		Status:                       reports.StatusResolved,
		UnderReviewAt:                ts("2026-08-20 09:15:00"),
		ProcessingUpdatedAt:          ts("2026-08-21 10:00:00"),
		PendingConfirmationUpdatedAt: ts("2026-08-23 14:30:00"),
		ResolvedUpdatedAt:            ts("2026-08-25 17:40:00"),
	}

	entries := Build(report)
	require.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		require.True(t, entries[i].Timestamp.Before(entries[i-1].Timestamp))
	}
	require.True(t, entries[0].Current)
	for _, e := range entries[1:] {
		require.False(t, e.Current)
	}
}

func TestBuildRemarksOverridePendingConfirmation(t *testing.T) {
	report := &reports.Report{
		ReportID:                     4,
		Status:                       reports.StatusPendingConfirmation,
		Remarks:                      "Pothole filled, road reopened on 23 Aug.",
		UnderReviewAt:                ts("2026-08-20 09:15:00"),
		PendingConfirmationUpdatedAt: ts("2026-08-23 14:30:00"),
	}

	entries := Build(report)
	require.Equal(t, "Pothole filled, road reopened on 23 Aug.", entries[0].Description)
}

func TestBuildUnderReviewFallsBackToSubmission(t *testing.T) {
	report := &reports.Report{
		ReportID: 5,
		Status:   reports.StatusUnderReview,
		Date:     "2026-08-20",
		Time:     "09:15:00",
	}

	entries := Build(report)
	require.Len(t, entries, 1)
	want, _ := time.ParseInLocation("2006-01-02 15:04:05", "2026-08-20 09:15:00", time.Local)
	require.Equal(t, want, entries[0].Timestamp)
}

func TestBuildUnderReviewFallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2026, 8, 20, 9, 15, 0, 0, time.Local)
	report := &reports.Report{
		ReportID:  6,
		Status:    reports.StatusUnderReview,
		Date:      "garbage",
		Time:      "also-garbage",
		CreatedAt: created,
	}

	entries := Build(report)
	require.Len(t, entries, 1)
	require.Equal(t, created, entries[0].Timestamp)
}

func TestBuildEntryCountMatchesPresentTimestamps(t *testing.T) {
	report := &reports.Report{
		ReportID:            7,
		Status:              reports.StatusProcessing,
		UnderReviewAt:       ts("2026-08-20 09:15:00"),
		ProcessingUpdatedAt: ts("2026-08-21 10:00:00"),
	}

	entries := Build(report)
	require.Len(t, entries, 2)
	require.Equal(t, reports.StatusProcessing, entries[0].Status)
}
