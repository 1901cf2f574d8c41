package reports

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

// Repository handles database interactions for the reports feature
type Repository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

// NewRepository creates the repository and ensures indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("reports")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "reportId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// One report per uploaded image set
			Keys:    bson.D{{Key: "url", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// "my reports" listing, newest first
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "reportId", Value: -1},
			},
		},
		{
			// community feed ordering
			Keys: bson.D{
				{Key: "date", Value: -1},
				{Key: "time", Value: -1},
			},
		},
	})

	return &Repository{
		collection: collection,
		counters:   db.Collection("counters"),
	}
}

// NextReportID allocates the next value of the report_id sequence
func (r *Repository) NextReportID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "reports"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}

// Create inserts a new report, allocating its report_id
func (r *Repository) Create(ctx context.Context, report *Report) error {
	seq, err := r.NextReportID(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	report.ReportID = seq
	report.CreatedAt = now
	report.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid
	}

	return nil
}

// GetByReportID fetches a single report by its public integer ID
func (r *Repository) GetByReportID(ctx context.Context, reportID int64) (*Report, error) {
	var report Report
	err := r.collection.FindOne(ctx, bson.M{"reportId": reportID}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// URLExists checks whether an image URL set has already been submitted
func (r *Repository) URLExists(ctx context.Context, url string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"url": url})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser retrieves one user's reports, newest first, with pagination
func (r *Repository) ListByUser(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]Report, int64, error) {
	filter := bson.M{"userId": userID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "reportId", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var result []Report
	if err = cursor.All(ctx, &result); err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

// ListAll retrieves every report ordered for the community feed
// (date desc, time desc)
func (r *Repository) ListAll(ctx context.Context) ([]Report, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "time", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Report
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateVoteCounts persists new counters together with the severity
// derived from them. The single UpdateOne keeps the triple consistent:
// there is no path that writes counts without severity.
func (r *Repository) UpdateVoteCounts(ctx context.Context, reportID int64, upvote, downvote int, severity Severity) (*Report, error) {
	update := bson.M{"$set": bson.M{
		"upvote":    upvote,
		"downvote":  downvote,
		"severity":  severity,
		"updatedAt": time.Now(),
	}}

	var updated Report
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"reportId": reportID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// UpdateStatus advances the lifecycle state, stamping the timestamp
// field that belongs to the new status. Remarks only apply to the
// Pending Confirmation stage.
func (r *Repository) UpdateStatus(ctx context.Context, reportID int64, status Status, remarks string) (*Report, error) {
	now := time.Now()
	set := bson.M{
		"status":    status,
		"updatedAt": now,
	}

	switch status {
	case StatusUnderReview:
		set["underReviewAt"] = now
	case StatusProcessing:
		set["processingUpdatedAt"] = now
	case StatusPendingConfirmation:
		set["pendingConfirmationUpdatedAt"] = now
		if remarks != "" {
			set["remarks"] = remarks
		}
	case StatusResolved:
		set["resolvedUpdatedAt"] = now
	}

	var updated Report
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"reportId": reportID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// SetConfirmation records the reporter's resolution confirmation flag
func (r *Repository) SetConfirmation(ctx context.Context, reportID int64, confirmed bool) (*Report, error) {
	var updated Report
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"reportId": reportID},
		bson.M{"$set": bson.M{"confirmed": confirmed, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &updated, nil
}
