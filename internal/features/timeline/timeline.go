package timeline

import (
	"time"

	"github.com/opencivic/civicfix/internal/features/reports"
)

// Entry is one stage of a report's lifecycle as shown to the reporter
type Entry struct {
	Status      reports.Status `json:"status"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
	Date        string         `json:"date"` // e.g. "29 Aug 2026"
	Time        string         `json:"time"` // e.g. "02:15 PM"
	Current     bool           `json:"current"`
}

var stageDescriptions = map[reports.Status]string{
	reports.StatusUnderReview:         "Your report has been received and is under review.",
	reports.StatusProcessing:          "The concerned department has started working on the issue.",
	reports.StatusPendingConfirmation: "Work on the issue has been completed. Please confirm the resolution.",
	reports.StatusResolved:            "The issue has been fixed and the report is closed.",
}

// Build renders the report's lifecycle as timeline entries, newest
// first. A stage appears only if the report carries a timestamp for it;
// Under Review always appears, timestamped from the submission date and
// time (or, when those fail to parse, the record's creation time). The
// Pending Confirmation description is replaced by the official remarks
// when any were recorded.
func Build(report *reports.Report) []Entry {
	entries := make([]Entry, 0, len(reports.StatusOrder))

	for _, status := range reports.StatusOrder {
		ts, ok := stageTimestamp(report, status)
		if !ok {
			continue
		}

		description := stageDescriptions[status]
		if status == reports.StatusPendingConfirmation && report.Remarks != "" {
			description = report.Remarks
		}

		entries = append(entries, Entry{
			Status:      status,
			Description: description,
			Timestamp:   ts,
			Date:        ts.Format("02 Jan 2006"),
			Time:        ts.Format("03:04 PM"),
			Current:     status == report.Status,
		})
	}

	// newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	return entries
}

func stageTimestamp(report *reports.Report, status reports.Status) (time.Time, bool) {
	switch status {
	case reports.StatusUnderReview:
		if report.UnderReviewAt != nil {
			return *report.UnderReviewAt, true
		}
		if ts, err := report.ReportedAt(); err == nil {
			return ts, true
		}
		return report.CreatedAt, true
	case reports.StatusProcessing:
		if report.ProcessingUpdatedAt != nil {
			return *report.ProcessingUpdatedAt, true
		}
	case reports.StatusPendingConfirmation:
		if report.PendingConfirmationUpdatedAt != nil {
			return *report.PendingConfirmationUpdatedAt, true
		}
	case reports.StatusResolved:
		if report.ResolvedUpdatedAt != nil {
			return *report.ResolvedUpdatedAt, true
		}
	}
	return time.Time{}, false
}
