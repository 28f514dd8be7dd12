package actions

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"doclens/flows"
	"doclens/models"
)

// CreateDocumentInput carries the metadata and extracted text of an
// upload that passed extraction.
type CreateDocumentInput struct {
	FileName      string `json:"file_name"`
	FileType      string `json:"file_type"`
	FileSizeBytes int64  `json:"file_size_bytes"`
	ExtractedText string `json:"extracted_text"`
}

// CreateDocument persists an extracted document under the owner.
func (a *Actions) CreateDocument(ctx context.Context, ownerID string, in CreateDocumentInput) Result {
	if in.FileName == "" || in.ExtractedText == "" {
		return fail("create_document", fmt.Errorf("%w: file_name and extracted_text are required", flows.ErrInvalidInput))
	}

	doc := &models.Document{
		OwnerID:       ownerID,
		FileName:      in.FileName,
		FileType:      in.FileType,
		FileSizeBytes: in.FileSizeBytes,
		UploadedAt:    time.Now(),
		ExtractedText: in.ExtractedText,
	}
	id, err := a.Documents.Insert(ctx, doc)
	if err != nil {
		return fail("create_document", fmt.Errorf("save document: %w", err))
	}
	doc.ID = id
	return ok(doc)
}

// ListDocuments returns the owner's documents, newest upload first.
func (a *Actions) ListDocuments(ctx context.Context, ownerID string) Result {
	docs, err := a.Documents.ListByOwner(ctx, ownerID)
	if err != nil {
		return fail("list_documents", fmt.Errorf("load documents: %w", err))
	}
	return ok(docs)
}

// GetDocument returns one of the owner's documents by id.
func (a *Actions) GetDocument(ctx context.Context, ownerID, id string) Result {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fail("get_document", fmt.Errorf("%w: malformed document id", flows.ErrInvalidInput))
	}
	doc, err := a.Documents.FindByIDAndOwner(ctx, objectID, ownerID)
	if err != nil {
		return fail("get_document", err)
	}
	return ok(doc)
}

// SaveSummaryInput carries a generated summary the user chose to keep.
type SaveSummaryInput struct {
	Audience       string            `json:"audience"`
	Language       string            `json:"language"`
	SummaryBullets []string          `json:"summary_bullets"`
	Citations      []models.Citation `json:"citations,omitempty"`
}

// SaveSummary stores a summary under its source document. Saving is an
// explicit user action, separate from generation.
func (a *Actions) SaveSummary(ctx context.Context, ownerID, documentID string, in SaveSummaryInput) Result {
	objectID, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return fail("save_summary", fmt.Errorf("%w: malformed document id", flows.ErrInvalidInput))
	}
	if len(in.SummaryBullets) == 0 {
		return fail("save_summary", fmt.Errorf("%w: summary_bullets are required", flows.ErrInvalidInput))
	}

	// The document must exist and belong to the caller.
	doc, err := a.Documents.FindByIDAndOwner(ctx, objectID, ownerID)
	if err != nil {
		return fail("save_summary", err)
	}

	record := &models.SummaryRecord{
		OwnerID:        ownerID,
		DocumentID:     doc.ID,
		DocumentName:   doc.FileName,
		Audience:       in.Audience,
		Language:       in.Language,
		SummaryBullets: in.SummaryBullets,
		Citations:      in.Citations,
		GeneratedAt:    time.Now(),
	}
	id, err := a.Summaries.Insert(ctx, record)
	if err != nil {
		return fail("save_summary", fmt.Errorf("save summary: %w", err))
	}
	record.ID = id
	return ok(record)
}

// ListSummaries returns the owner's saved summary history, newest first.
func (a *Actions) ListSummaries(ctx context.Context, ownerID string) Result {
	records, err := a.Summaries.ListByOwner(ctx, ownerID)
	if err != nil {
		return fail("list_summaries", fmt.Errorf("load summaries: %w", err))
	}
	return ok(records)
}

// ListDocumentSummaries returns saved summaries for one document.
func (a *Actions) ListDocumentSummaries(ctx context.Context, ownerID, documentID string) Result {
	objectID, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return fail("list_document_summaries", fmt.Errorf("%w: malformed document id", flows.ErrInvalidInput))
	}
	records, err := a.Summaries.ListByDocument(ctx, objectID, ownerID)
	if err != nil {
		return fail("list_document_summaries", fmt.Errorf("load summaries: %w", err))
	}
	return ok(records)
}

// demoDocumentText seeds the demo document created for first-time users.
const demoDocumentText = `The Benefits of Reading

Reading is one of the most rewarding habits a person can build. Regular reading improves vocabulary, sharpens concentration, and strengthens analytical thinking.

Studies have repeatedly shown that readers retain knowledge longer than passive consumers of media. Reading before bed has also been associated with better sleep quality.

Beyond the measurable benefits, reading offers something harder to quantify: the chance to inhabit another perspective. Fiction in particular builds empathy by letting the reader live inside someone else's circumstances for a few hundred pages.

In short, the case for reading is strong regardless of age or profession. The habit costs little, demands only time, and pays out across every area of life.`

// CreateDemoDocument stores a canned sample document for the caller so
// the product can be explored without uploading a real file.
func (a *Actions) CreateDemoDocument(ctx context.Context, ownerID string) Result {
	return a.CreateDocument(ctx, ownerID, CreateDocumentInput{
		FileName:      "sample-document.pdf",
		FileType:      "application/pdf",
		FileSizeBytes: int64(len(demoDocumentText)),
		ExtractedText: demoDocumentText,
	})
}
