package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateSeverityBoundaries(t *testing.T) {
	cases := []struct {
		netVotes int
		want     Severity
	}{
		{-3, SeverityLow},
		{0, SeverityLow},
		{1, SeverityLow},
		{2, SeverityMedium},
		{4, SeverityMedium},
		{5, SeverityHigh},
		{9, SeverityHigh},
		{10, SeverityCritical},
		{25, SeverityCritical},
	}

	for _, tc := range cases {
		got := CalculateSeverity(tc.netVotes, 0)
		require.Equal(t, tc.want, got, "netVotes=%d", tc.netVotes)
	}
}

func TestCalculateSeverityUsesNet(t *testing.T) {
	// Same net, different raw counts
	require.Equal(t, CalculateSeverity(10, 0), CalculateSeverity(15, 5))
	require.Equal(t, SeverityHigh, CalculateSeverity(9, 2))
	require.Equal(t, SeverityHigh, CalculateSeverity(10, 1))
	require.Equal(t, SeverityCritical, CalculateSeverity(11, 1))
}

func TestCalculateSeverityMonotonic(t *testing.T) {
	rank := map[Severity]int{
		SeverityLow:      0,
		SeverityMedium:   1,
		SeverityHigh:     2,
		SeverityCritical: 3,
	}

	prev := CalculateSeverity(-20, 0)
	for net := -19; net <= 20; net++ {
		cur := CalculateSeverity(net, 0)
		require.GreaterOrEqual(t, rank[cur], rank[prev], "net=%d", net)
		prev = cur
	}
}
