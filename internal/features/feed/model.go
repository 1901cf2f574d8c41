package feed

import (
	"github.com/opencivic/civicfix/internal/features/reports"
	"github.com/opencivic/civicfix/internal/features/votes"
)

// DisplayReport is one feed card: a report joined with its reporter's
// name and the viewer's own vote, ready for rendering.
type DisplayReport struct {
	ReportID      int64            `json:"report_id"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	Category      string           `json:"category"`
	Date          string           `json:"date"`
	Time          string           `json:"time"`
	TimeAgo       string           `json:"time_ago"`
	URL           string           `json:"url"`
	Upvote        int              `json:"upvote"`
	Downvote      int              `json:"downvote"`
	NetVotes      int              `json:"net_votes"`
	Severity      reports.Severity `json:"severity"`
	Status        reports.Status   `json:"status"`
	DisplayName   string           `json:"display_name"`
	IsCurrentUser bool             `json:"is_current_user"`
	UserVote      votes.VoteType   `json:"user_vote,omitempty"`
}
