package incentives

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// VoucherValidity is how long a redeemed voucher stays usable
const VoucherValidity = 30 * 24 * time.Hour

type qrPayload struct {
	VoucherCode string `json:"voucher_code"`
	Incentive   string `json:"incentive"`
	Partner     string `json:"partner"`
	ValidUntil  string `json:"valid_until"`
}

// NewVoucher mints a voucher code and the JSON payload the partner's
// scanner reads from the QR image.
func NewVoucher(incentive *Incentive, issuedAt time.Time) (code string, payload string, validUntil time.Time) {
	code = uuid.NewString()
	validUntil = issuedAt.Add(VoucherValidity)

	encoded, _ := json.Marshal(qrPayload{
		VoucherCode: code,
		Incentive:   incentive.Title,
		Partner:     incentive.Partner,
		ValidUntil:  validUntil.Format(time.RFC3339),
	})
	return code, string(encoded), validUntil
}
