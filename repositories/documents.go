package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doclens/models"
)

// ErrNotFound is returned when a record does not exist for the given
// owner. Cross-owner lookups deliberately surface the same error.
var ErrNotFound = errors.New("record not found")

type DocumentRepository struct {
	col *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{col: db.Collection("documents")}
}

// Insert creates a new document record. Documents are immutable after
// creation, so there is no update counterpart.
func (r *DocumentRepository) Insert(ctx context.Context, d *models.Document) (primitive.ObjectID, error) {
	if d.UploadedAt.IsZero() {
		d.UploadedAt = time.Now()
	}
	res, err := r.col.InsertOne(ctx, d)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByIDAndOwner returns a single document owned by ownerID.
func (r *DocumentRepository) FindByIDAndOwner(ctx context.Context, id primitive.ObjectID, ownerID string) (*models.Document, error) {
	var d models.Document
	err := r.col.FindOne(ctx, bson.M{"_id": id, "owner_id": ownerID}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByOwner returns the owner's documents ordered by upload time
// descending.
func (r *DocumentRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := make([]models.Document, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
