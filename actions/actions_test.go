package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"doclens/extractor"
	"doclens/flows"
	"doclens/models"
	"doclens/repositories"
)

// fakeFlowRunner returns canned outputs or a configured error for every
// flow.
type fakeFlowRunner struct {
	err error

	summary   *flows.SummarizeOutput
	chat      *flows.ChatOutput
	mindMap   *flows.MindMapNode
	tone      *flows.ToneOutput
	audio     *flows.AudioSummaryOutput
	questions *flows.SuggestedQuestionsOutput
	compare   *flows.CompareOutput
}

func (f *fakeFlowRunner) Summarize(ctx context.Context, in flows.SummarizeInput) (*flows.SummarizeOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func (f *fakeFlowRunner) Chat(ctx context.Context, in flows.ChatInput) (*flows.ChatOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.chat, nil
}

func (f *fakeFlowRunner) MindMap(ctx context.Context, in flows.MindMapInput) (*flows.MindMapNode, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.mindMap, nil
}

func (f *fakeFlowRunner) AnalyzeTone(ctx context.Context, in flows.ToneInput) (*flows.ToneOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tone, nil
}

func (f *fakeFlowRunner) AudioSummary(ctx context.Context, in flows.AudioSummaryInput) (*flows.AudioSummaryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

func (f *fakeFlowRunner) SuggestedQuestions(ctx context.Context, in flows.SuggestedQuestionsInput) (*flows.SuggestedQuestionsOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

func (f *fakeFlowRunner) Compare(ctx context.Context, in flows.CompareInput) (*flows.CompareOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.compare, nil
}

// fakeDocumentStore keeps documents in memory with owner scoping.
type fakeDocumentStore struct {
	docs      map[primitive.ObjectID]*models.Document
	insertErr error
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{docs: map[primitive.ObjectID]*models.Document{}}
}

func (s *fakeDocumentStore) Insert(ctx context.Context, d *models.Document) (primitive.ObjectID, error) {
	if s.insertErr != nil {
		return primitive.NilObjectID, s.insertErr
	}
	id := primitive.NewObjectID()
	copied := *d
	copied.ID = id
	s.docs[id] = &copied
	return id, nil
}

func (s *fakeDocumentStore) FindByIDAndOwner(ctx context.Context, id primitive.ObjectID, ownerID string) (*models.Document, error) {
	d, found := s.docs[id]
	if !found || d.OwnerID != ownerID {
		return nil, repositories.ErrNotFound
	}
	return d, nil
}

func (s *fakeDocumentStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Document, error) {
	out := make([]models.Document, 0)
	for _, d := range s.docs {
		if d.OwnerID == ownerID {
			out = append(out, *d)
		}
	}
	return out, nil
}

type fakeSummaryStore struct {
	records []*models.SummaryRecord
}

func (s *fakeSummaryStore) Insert(ctx context.Context, r *models.SummaryRecord) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	copied := *r
	copied.ID = id
	s.records = append(s.records, &copied)
	return id, nil
}

func (s *fakeSummaryStore) ListByOwner(ctx context.Context, ownerID string) ([]models.SummaryRecord, error) {
	out := make([]models.SummaryRecord, 0)
	for _, r := range s.records {
		if r.OwnerID == ownerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeSummaryStore) ListByDocument(ctx context.Context, documentID primitive.ObjectID, ownerID string) ([]models.SummaryRecord, error) {
	out := make([]models.SummaryRecord, 0)
	for _, r := range s.records {
		if r.OwnerID == ownerID && r.DocumentID == documentID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func newTestActions(runner *fakeFlowRunner) (*Actions, *fakeDocumentStore, *fakeSummaryStore) {
	docs := newFakeDocumentStore()
	sums := &fakeSummaryStore{}
	return New(runner, docs, sums), docs, sums
}

func TestExtractTextUnsupportedType(t *testing.T) {
	a, _, _ := newTestActions(&fakeFlowRunner{})

	res := a.ExtractText([]byte("data"), "image/png")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "Unsupported file type")
}

func TestExtractTextEmptyDocumentMessage(t *testing.T) {
	a, _, _ := newTestActions(&fakeFlowRunner{})

	// Empty PDF payload surfaces the scanned-image hint.
	res := a.ExtractText(nil, extractor.MimePDF)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "no extractable text")
}

func TestGenerateSummarySuccessEnvelope(t *testing.T) {
	runner := &fakeFlowRunner{summary: &flows.SummarizeOutput{Summary: []string{"bullet"}}}
	a, _, _ := newTestActions(runner)

	res := a.GenerateSummary(context.Background(), flows.SummarizeInput{
		Text: "doc", Audience: "Student", Language: "English",
	})
	assert.True(t, res.Success)
	assert.Empty(t, res.Error)

	out, isSummary := res.Data.(*flows.SummarizeOutput)
	if !isSummary {
		t.Fatalf("expected *flows.SummarizeOutput data, got %T", res.Data)
	}
	assert.Equal(t, []string{"bullet"}, out.Summary)
}

func TestFlowFailuresNeverEscapeTheEnvelope(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			name:        "model schema mismatch",
			err:         flows.ErrModelResponseInvalid,
			wantMessage: "unexpected response",
		},
		{
			name:        "no audio",
			err:         flows.ErrNoAudioGenerated,
			wantMessage: "No audio",
		},
		{
			name:        "quota exhausted",
			err:         flows.ErrQuotaExhausted,
			wantMessage: "request limit",
		},
		{
			name:        "unknown error passes message through",
			err:         errors.New("backend unavailable"),
			wantMessage: "backend unavailable",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			a, _, _ := newTestActions(&fakeFlowRunner{err: testCase.err})

			res := a.Chat(context.Background(), flows.ChatInput{DocumentText: "d", UserQuestion: "q"})
			assert.False(t, res.Success)
			assert.Contains(t, res.Error, testCase.wantMessage)
			assert.Nil(t, res.Data)
		})
	}
}

func TestCreateAndGetDocumentIsOwnerScoped(t *testing.T) {
	a, _, _ := newTestActions(&fakeFlowRunner{})

	created := a.CreateDocument(context.Background(), "owner-1", CreateDocumentInput{
		FileName:      "report.pdf",
		FileType:      "application/pdf",
		FileSizeBytes: 1024,
		ExtractedText: "contents",
	})
	assert.True(t, created.Success)
	doc := created.Data.(*models.Document)

	// Owner can read it back.
	got := a.GetDocument(context.Background(), "owner-1", doc.ID.Hex())
	assert.True(t, got.Success)

	// A different owner cannot.
	denied := a.GetDocument(context.Background(), "owner-2", doc.ID.Hex())
	assert.False(t, denied.Success)
	assert.Contains(t, denied.Error, "not found")
}

func TestGetDocumentMalformedID(t *testing.T) {
	a, _, _ := newTestActions(&fakeFlowRunner{})

	res := a.GetDocument(context.Background(), "owner-1", "not-an-object-id")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "malformed document id")
}

func TestSaveSummaryRequiresOwnedDocument(t *testing.T) {
	a, _, _ := newTestActions(&fakeFlowRunner{})

	created := a.CreateDocument(context.Background(), "owner-1", CreateDocumentInput{
		FileName:      "report.pdf",
		ExtractedText: "contents",
	})
	doc := created.Data.(*models.Document)

	in := SaveSummaryInput{
		Audience:       "Student",
		Language:       "English",
		SummaryBullets: []string{"b1", "b2"},
		Citations:      []models.Citation{{Page: 1, Paragraph: 2}},
	}

	// Wrong owner is rejected before any write happens.
	denied := a.SaveSummary(context.Background(), "owner-2", doc.ID.Hex(), in)
	assert.False(t, denied.Success)

	saved := a.SaveSummary(context.Background(), "owner-1", doc.ID.Hex(), in)
	assert.True(t, saved.Success)
	record := saved.Data.(*models.SummaryRecord)
	assert.Equal(t, doc.ID, record.DocumentID)
	assert.Equal(t, "report.pdf", record.DocumentName)

	history := a.ListSummaries(context.Background(), "owner-1")
	assert.True(t, history.Success)
	assert.Len(t, history.Data.([]models.SummaryRecord), 1)
}

func TestSaveSummaryRejectsEmptyBullets(t *testing.T) {
	a, _, _ := newTestActions(&fakeFlowRunner{})

	created := a.CreateDocument(context.Background(), "owner-1", CreateDocumentInput{
		FileName:      "report.pdf",
		ExtractedText: "contents",
	})
	doc := created.Data.(*models.Document)

	res := a.SaveSummary(context.Background(), "owner-1", doc.ID.Hex(), SaveSummaryInput{
		Audience: "Student",
		Language: "English",
	})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "summary_bullets")
}

func TestCreateDocumentPersistenceFailure(t *testing.T) {
	a, docs, _ := newTestActions(&fakeFlowRunner{})
	docs.insertErr = errors.New("connection reset")

	res := a.CreateDocument(context.Background(), "owner-1", CreateDocumentInput{
		FileName:      "report.pdf",
		ExtractedText: "contents",
	})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "save document")
}

func TestCreateDemoDocument(t *testing.T) {
	a, _, _ := newTestActions(&fakeFlowRunner{})

	res := a.CreateDemoDocument(context.Background(), "owner-1")
	assert.True(t, res.Success)
	doc := res.Data.(*models.Document)
	assert.Equal(t, "sample-document.pdf", doc.FileName)
	assert.NotEmpty(t, doc.ExtractedText)

	listed := a.ListDocuments(context.Background(), "owner-1")
	assert.True(t, listed.Success)
	assert.Len(t, listed.Data.([]models.Document), 1)
}
