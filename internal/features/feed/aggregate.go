package feed

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opencivic/civicfix/internal/features/reports"
	"github.com/opencivic/civicfix/internal/features/votes"
)

// Aggregate joins raw reports with reporter names and the viewer's
// ledger into display form. It is a pure function of its inputs: the
// same reports and maps always produce the same feed, and the inputs
// are never mutated.
//
// A missing name falls back to "Anonymous User" ("You" for the
// viewer's own reports); a report absent from userVotes renders with no
// vote highlight. A report with no stored severity gets one computed
// from its counters.
func Aggregate(items []reports.Report, names map[primitive.ObjectID]string, userVotes map[int64]votes.VoteType, viewerID *primitive.ObjectID, now time.Time) []DisplayReport {
	result := make([]DisplayReport, 0, len(items))

	for _, r := range items {
		isViewer := viewerID != nil && r.UserID == *viewerID

		severity := r.Severity
		if severity == "" {
			severity = reports.CalculateSeverity(r.Upvote, r.Downvote)
		}

		result = append(result, DisplayReport{
			ReportID:      r.ReportID,
			Description:   r.Description,
			Location:      r.Location,
			Category:      r.Category,
			Date:          r.Date,
			Time:          r.Time,
			TimeAgo:       timeAgo(&r, now),
			URL:           r.URL,
			Upvote:        r.Upvote,
			Downvote:      r.Downvote,
			NetVotes:      reports.NetVotes(r.Upvote, r.Downvote),
			Severity:      severity,
			Status:        r.Status,
			DisplayName:   displayName(names[r.UserID], isViewer),
			IsCurrentUser: isViewer,
			UserVote:      userVotes[r.ReportID],
		})
	}

	return result
}

// displayName renders the reporter label. The viewer's own reports are
// marked with "(You)".
func displayName(name string, isViewer bool) string {
	if name == "" {
		if isViewer {
			return "You"
		}
		return "Anonymous User"
	}
	if isViewer {
		return name + " (You)"
	}
	return name
}

// timeAgo renders the report's age in coarse buckets. When the stored
// date and time cannot be parsed it falls back to the raw HH:MM portion
// of the time field.
func timeAgo(r *reports.Report, now time.Time) string {
	reportedAt, err := r.ReportedAt()
	if err != nil {
		if len(r.Time) >= 5 {
			return r.Time[:5]
		}
		return r.Time
	}

	minutes := int(now.Sub(reportedAt).Minutes())
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%dh ago", minutes/60)
	default:
		return fmt.Sprintf("%dd ago", minutes/(24*60))
	}
}
