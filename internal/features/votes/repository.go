package votes

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the persistent vote ledger
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates the repository and ensures the uniqueness of the
// (userId, reportId) pair
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("votes")

	_, _ = collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "reportId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})

	return &Repository{collection: collection}
}

// GetVote returns the user's vote on a report, or nil when none exists
func (r *Repository) GetVote(ctx context.Context, userID primitive.ObjectID, reportID int64) (*Vote, error) {
	var vote Vote
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "reportId": reportID}).Decode(&vote)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

// RecordVote upserts the user's vote on a report, replacing any prior
// direction
func (r *Repository) RecordVote(ctx context.Context, userID primitive.ObjectID, reportID int64, voteType VoteType) error {
	now := time.Now()
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"userId": userID, "reportId": reportID},
		bson.M{
			"$set":         bson.M{"type": voteType, "updatedAt": now},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetUserVotes returns the user's votes for the given reports as a
// reportId -> direction map. Reports the user never voted on are absent.
func (r *Repository) GetUserVotes(ctx context.Context, userID primitive.ObjectID, reportIDs []int64) (map[int64]VoteType, error) {
	result := make(map[int64]VoteType, len(reportIDs))
	if len(reportIDs) == 0 {
		return result, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{
		"userId":   userID,
		"reportId": bson.M{"$in": reportIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []Vote
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	for _, v := range entries {
		result[v.ReportID] = v.Type
	}
	return result, nil
}
