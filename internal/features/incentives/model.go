package incentives

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Incentive is a reward users can redeem with earned points
type Incentive struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Partner     string             `bson:"partner" json:"partner"`
	Cost        int                `bson:"cost" json:"cost"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"image_url,omitempty"`
	Active      bool               `bson:"active" json:"active"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Redemption is one completed exchange of points for an incentive.
// The voucher code and QR payload are what the partner scans.
type Redemption struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"user_id"`
	IncentiveID primitive.ObjectID `bson:"incentiveId" json:"incentive_id"`
	Title       string             `bson:"title" json:"title"`
	VoucherCode string             `bson:"voucherCode" json:"voucher_code"`
	QRPayload   string             `bson:"qrPayload" json:"qr_payload"`
	PointsSpent int                `bson:"pointsSpent" json:"points_spent"`
	ValidUntil  time.Time          `bson:"validUntil" json:"valid_until"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
