package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReportedAt(t *testing.T) {
	r := Report{Date: "2026-08-20", Time: "09:15:30"}

	got, err := r.ReportedAt()
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 8, 20, 9, 15, 30, 0, time.Local), got)
}

func TestReportedAtMalformed(t *testing.T) {
	r := Report{Date: "20/08/2026", Time: "09:15:30"}
	_, err := r.ReportedAt()
	require.Error(t, err)
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range StatusOrder {
		require.True(t, IsValidStatus(s))
	}
	require.False(t, IsValidStatus("Closed"))
	require.False(t, IsValidStatus(""))
}
