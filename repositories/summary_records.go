package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doclens/models"
)

type SummaryRecordRepository struct {
	col *mongo.Collection
}

func NewSummaryRecordRepository(db *mongo.Database) *SummaryRecordRepository {
	return &SummaryRecordRepository{col: db.Collection("summary_records")}
}

// Insert creates a new summary record. Records are append-only.
func (r *SummaryRecordRepository) Insert(ctx context.Context, s *models.SummaryRecord) (primitive.ObjectID, error) {
	if s.GeneratedAt.IsZero() {
		s.GeneratedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// ListByOwner returns the owner's saved summaries, newest first.
func (r *SummaryRecordRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.SummaryRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "generated_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := make([]models.SummaryRecord, 0)
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListByDocument returns saved summaries for one document, newest first.
// Owner scoping applies here as well.
func (r *SummaryRecordRepository) ListByDocument(ctx context.Context, documentID primitive.ObjectID, ownerID string) ([]models.SummaryRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "generated_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"document_id": documentID, "owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := make([]models.SummaryRecord, 0)
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
