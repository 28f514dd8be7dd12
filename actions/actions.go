package actions

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"doclens/extractor"
	"doclens/flows"
	"doclens/models"
)

// FlowRunner is the surface of the AI flow client the action layer needs.
// *flows.Client satisfies it; tests substitute a fake.
type FlowRunner interface {
	Summarize(ctx context.Context, in flows.SummarizeInput) (*flows.SummarizeOutput, error)
	Chat(ctx context.Context, in flows.ChatInput) (*flows.ChatOutput, error)
	MindMap(ctx context.Context, in flows.MindMapInput) (*flows.MindMapNode, error)
	AnalyzeTone(ctx context.Context, in flows.ToneInput) (*flows.ToneOutput, error)
	AudioSummary(ctx context.Context, in flows.AudioSummaryInput) (*flows.AudioSummaryOutput, error)
	SuggestedQuestions(ctx context.Context, in flows.SuggestedQuestionsInput) (*flows.SuggestedQuestionsOutput, error)
	Compare(ctx context.Context, in flows.CompareInput) (*flows.CompareOutput, error)
}

// DocumentStore is the owner-scoped persistence surface for documents.
type DocumentStore interface {
	Insert(ctx context.Context, d *models.Document) (primitive.ObjectID, error)
	FindByIDAndOwner(ctx context.Context, id primitive.ObjectID, ownerID string) (*models.Document, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Document, error)
}

// SummaryStore is the owner-scoped persistence surface for saved
// summaries.
type SummaryStore interface {
	Insert(ctx context.Context, s *models.SummaryRecord) (primitive.ObjectID, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.SummaryRecord, error)
	ListByDocument(ctx context.Context, documentID primitive.ObjectID, ownerID string) ([]models.SummaryRecord, error)
}

// Actions wraps every extractor/flow/persistence invocation in the
// uniform success/error envelope. Callers never see raw errors.
type Actions struct {
	Flows     FlowRunner
	Documents DocumentStore
	Summaries SummaryStore
}

func New(flowRunner FlowRunner, documents DocumentStore, summaries SummaryStore) *Actions {
	return &Actions{Flows: flowRunner, Documents: documents, Summaries: summaries}
}

// ExtractText converts uploaded file bytes into plain text.
func (a *Actions) ExtractText(data []byte, declaredMimeType string) Result {
	text, err := extractor.Extract(data, declaredMimeType)
	if err != nil {
		return fail("extract_text", err)
	}
	return ok(text)
}

// GenerateSummary runs the audience-specific summary flow.
func (a *Actions) GenerateSummary(ctx context.Context, in flows.SummarizeInput) Result {
	out, err := a.Flows.Summarize(ctx, in)
	if err != nil {
		return fail("generate_summary", err)
	}
	return ok(out)
}

// Chat answers a question about a document.
func (a *Actions) Chat(ctx context.Context, in flows.ChatInput) Result {
	out, err := a.Flows.Chat(ctx, in)
	if err != nil {
		return fail("chat", err)
	}
	return ok(out)
}

// GenerateMindMap builds a topic tree for a document.
func (a *Actions) GenerateMindMap(ctx context.Context, in flows.MindMapInput) Result {
	out, err := a.Flows.MindMap(ctx, in)
	if err != nil {
		return fail("generate_mind_map", err)
	}
	return ok(out)
}

// AnalyzeTone runs the linguistic analysis flow.
func (a *Actions) AnalyzeTone(ctx context.Context, in flows.ToneInput) Result {
	out, err := a.Flows.AnalyzeTone(ctx, in)
	if err != nil {
		return fail("analyze_tone", err)
	}
	return ok(out)
}

// GenerateAudioSummary speaks the given text as a WAV data URI.
func (a *Actions) GenerateAudioSummary(ctx context.Context, in flows.AudioSummaryInput) Result {
	out, err := a.Flows.AudioSummary(ctx, in)
	if err != nil {
		return fail("generate_audio_summary", err)
	}
	return ok(out)
}

// GenerateSuggestedQuestions proposes questions about a document.
func (a *Actions) GenerateSuggestedQuestions(ctx context.Context, in flows.SuggestedQuestionsInput) Result {
	out, err := a.Flows.SuggestedQuestions(ctx, in)
	if err != nil {
		return fail("generate_suggested_questions", err)
	}
	return ok(out)
}

// CompareDocuments analyzes two documents side by side.
func (a *Actions) CompareDocuments(ctx context.Context, in flows.CompareInput) Result {
	out, err := a.Flows.Compare(ctx, in)
	if err != nil {
		return fail("compare_documents", err)
	}
	return ok(out)
}
