package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Citation references a (page, paragraph) location in the source document.
// Approximate when the exact location is unavailable in the text.
type Citation struct {
	Page      int `bson:"page" json:"page"`
	Paragraph int `bson:"paragraph" json:"paragraph"`
}

// SummaryRecord stores one saved summary under its source document.
// Collection: summary_records
//
// Records are created on an explicit user save action and never mutated.
type SummaryRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID        string             `bson:"owner_id" json:"owner_id"`
	DocumentID     primitive.ObjectID `bson:"document_id" json:"document_id"`
	DocumentName   string             `bson:"document_name" json:"document_name"`
	Audience       string             `bson:"audience" json:"audience"`
	Language       string             `bson:"language" json:"language"`
	SummaryBullets []string           `bson:"summary_bullets" json:"summary_bullets"`
	Citations      []Citation         `bson:"citations,omitempty" json:"citations,omitempty"`
	GeneratedAt    time.Time          `bson:"generated_at" json:"generated_at"`
}
