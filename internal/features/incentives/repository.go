package incentives

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/opencivic/civicfix/pkg/errors"
)

// Repository handles incentive and redemption storage
type Repository struct {
	incentives  *mongo.Collection
	redemptions *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	redemptions := db.Collection("redemptions")

	_, _ = redemptions.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "voucherCode", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	})

	return &Repository{
		incentives:  db.Collection("incentives"),
		redemptions: redemptions,
	}
}

// ListActive returns redeemable incentives, cheapest first
func (r *Repository) ListActive(ctx context.Context) ([]Incentive, error) {
	opts := options.Find().SetSort(bson.D{{Key: "cost", Value: 1}})

	cursor, err := r.incentives.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Incentive
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID fetches one incentive
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Incentive, error) {
	var incentive Incentive
	err := r.incentives.FindOne(ctx, bson.M{"_id": id}).Decode(&incentive)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &incentive, nil
}

// CreateRedemption records a completed redemption
func (r *Repository) CreateRedemption(ctx context.Context, redemption *Redemption) error {
	redemption.CreatedAt = time.Now()

	result, err := r.redemptions.InsertOne(ctx, redemption)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		redemption.ID = oid
	}
	return nil
}

// ListRedemptionsByUser returns the user's redemptions, newest first
func (r *Repository) ListRedemptionsByUser(ctx context.Context, userID primitive.ObjectID) ([]Redemption, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.redemptions.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Redemption
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
