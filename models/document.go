package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document stores an uploaded file's metadata and its extracted text.
// Collection: documents
//
// A document is created once extraction succeeds and is immutable after
// that; there is no in-place edit operation.
type Document struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID       string             `bson:"owner_id" json:"owner_id"`
	FileName      string             `bson:"file_name" json:"file_name"`
	FileType      string             `bson:"file_type" json:"file_type"`
	FileSizeBytes int64              `bson:"file_size_bytes" json:"file_size_bytes"`
	UploadedAt    time.Time          `bson:"uploaded_at" json:"uploaded_at"`
	ExtractedText string             `bson:"extracted_text" json:"extracted_text"`
}
