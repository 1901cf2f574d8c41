package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opencivic/civicfix/internal/features/reports"
	"github.com/opencivic/civicfix/internal/features/votes"
)

func sampleReport(id int64, userID primitive.ObjectID, reportedAt time.Time) reports.Report {
	return reports.Report{
		ReportID:    id,
		UserID:      userID,
		Date:        reportedAt.Format("2006-01-02"),
		Time:        reportedAt.Format("15:04:05"),
		Description: "Broken streetlight",
		Location:    "Main St",
		Category:    "Lighting",
		Status:      reports.StatusUnderReview,
	}
}

func TestAggregateJoinsNamesAndVotes(t *testing.T) {
	now := time.Now()
	viewer := primitive.NewObjectID()
	other := primitive.NewObjectID()

	items := []reports.Report{
		sampleReport(1, viewer, now.Add(-5*time.Minute)),
		sampleReport(2, other, now.Add(-2*time.Hour)),
	}
	names := map[primitive.ObjectID]string{
		viewer: "Asha",
		other:  "Ravi",
	}
	userVotes := map[int64]votes.VoteType{2: votes.VoteUpvote}

	result := Aggregate(items, names, userVotes, &viewer, now)
	require.Len(t, result, 2)

	require.Equal(t, "Asha (You)", result[0].DisplayName)
	require.True(t, result[0].IsCurrentUser)
	require.Empty(t, result[0].UserVote)

	require.Equal(t, "Ravi", result[1].DisplayName)
	require.False(t, result[1].IsCurrentUser)
	require.Equal(t, votes.VoteUpvote, result[1].UserVote)
}

func TestAggregateAnonymousViewer(t *testing.T) {
	now := time.Now()
	items := []reports.Report{sampleReport(1, primitive.NewObjectID(), now)}

	result := Aggregate(items, nil, nil, nil, now)
	require.Len(t, result, 1)
	require.Equal(t, "Anonymous User", result[0].DisplayName)
	require.False(t, result[0].IsCurrentUser)
	require.Empty(t, result[0].UserVote)
}

func TestAggregateMissingNameForViewer(t *testing.T) {
	now := time.Now()
	viewer := primitive.NewObjectID()
	items := []reports.Report{sampleReport(1, viewer, now)}

	result := Aggregate(items, nil, nil, &viewer, now)
	require.Equal(t, "You", result[0].DisplayName)
}

func TestAggregateSeverityFallback(t *testing.T) {
	now := time.Now()
	r := sampleReport(1, primitive.NewObjectID(), now)
	r.Upvote = 7
	r.Downvote = 1

	result := Aggregate([]reports.Report{r}, nil, nil, nil, now)
	require.Equal(t, reports.SeverityHigh, result[0].Severity)
	require.Equal(t, 6, result[0].NetVotes)
}

func TestAggregateKeepsStoredSeverity(t *testing.T) {
	now := time.Now()
	r := sampleReport(1, primitive.NewObjectID(), now)
	r.Severity = reports.SeverityCritical

	result := Aggregate([]reports.Report{r}, nil, nil, nil, now)
	require.Equal(t, reports.SeverityCritical, result[0].Severity)
}

func TestAggregateIdempotent(t *testing.T) {
	now := time.Now()
	viewer := primitive.NewObjectID()
	items := []reports.Report{sampleReport(1, viewer, now.Add(-90 * time.Minute))}
	names := map[primitive.ObjectID]string{viewer: "Asha"}

	first := Aggregate(items, names, nil, &viewer, now)
	second := Aggregate(items, names, nil, &viewer, now)
	require.Equal(t, first, second)
}

func TestTimeAgoBuckets(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)

	cases := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Second, "Just now"},
		{1 * time.Minute, "1m ago"},
		{59 * time.Minute, "59m ago"},
		{60 * time.Minute, "1h ago"},
		{23 * time.Hour, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{72 * time.Hour, "3d ago"},
	}

	for _, tc := range cases {
		r := sampleReport(1, primitive.NewObjectID(), now.Add(-tc.age))
		require.Equal(t, tc.want, timeAgo(&r, now), "age %s", tc.age)
	}
}

func TestTimeAgoMalformedTimestamp(t *testing.T) {
	r := reports.Report{Date: "not-a-date", Time: "14:30:55"}
	require.Equal(t, "14:30", timeAgo(&r, time.Now()))

	r = reports.Report{Date: "not-a-date", Time: "14"}
	require.Equal(t, "14", timeAgo(&r, time.Now()))
}
