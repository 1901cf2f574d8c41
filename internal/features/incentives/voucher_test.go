package incentives

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewVoucher(t *testing.T) {
	incentive := &Incentive{
		Title:   "Free bus pass",
		Partner: "City Transit",
		Cost:    100,
	}
	issuedAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	code, payload, validUntil := NewVoucher(incentive, issuedAt)
	require.NotEmpty(t, code)
	require.Equal(t, issuedAt.Add(VoucherValidity), validUntil)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	require.Equal(t, code, decoded["voucher_code"])
	require.Equal(t, "Free bus pass", decoded["incentive"])
	require.Equal(t, "City Transit", decoded["partner"])
	require.Equal(t, validUntil.Format(time.RFC3339), decoded["valid_until"])
}

func TestNewVoucherCodesAreUnique(t *testing.T) {
	incentive := &Incentive{Title: "Movie ticket", Partner: "PVR"}
	now := time.Now()

	a, _, _ := NewVoucher(incentive, now)
	b, _, _ := NewVoucher(incentive, now)
	require.NotEqual(t, a, b)
}
