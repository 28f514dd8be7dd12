package flows

import (
	"context"
	"fmt"
	"strings"

	"doclens/models"
)

// Audiences is the closed set of summary audiences.
var Audiences = []string{"Student", "Lawyer", "Researcher", "General Public"}

// Languages is the closed set of summary languages.
var Languages = []string{"English", "Spanish", "French", "German", "Hindi"}

// maxSummarySections caps how many ranked sections are passed into the
// summarization prompt. Token budget policy, not a correctness rule.
const maxSummarySections = 40

type SummarizeInput struct {
	Text     string `json:"text"`
	Audience string `json:"audience"`
	Language string `json:"language"`
}

func (in SummarizeInput) Validate() error {
	if strings.TrimSpace(in.Text) == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if !containsString(Audiences, in.Audience) {
		return fmt.Errorf("%w: audience must be one of %v", ErrInvalidInput, Audiences)
	}
	if !containsString(Languages, in.Language) {
		return fmt.Errorf("%w: language must be one of %v", ErrInvalidInput, Languages)
	}
	return nil
}

type SummarizeOutput struct {
	// Summary holds one bullet point per entry.
	Summary   []string          `json:"summary"`
	Citations []models.Citation `json:"citations,omitempty"`
}

func (out SummarizeOutput) validate() error {
	if len(out.Summary) == 0 {
		return fmt.Errorf("%w: summary bullets are empty", ErrModelResponseInvalid)
	}
	for _, bullet := range out.Summary {
		if strings.TrimSpace(bullet) == "" {
			return fmt.Errorf("%w: summary contains an empty bullet", ErrModelResponseInvalid)
		}
	}
	return nil
}

const summarizeSystemInstruction = `You are an expert summarizer, tailoring summaries to specific audiences.
Summarize the provided document for the given audience. The response MUST be a valid JSON object with the following keys:
1. summary: An array of strings. Each string is a single bullet point of the summary.
2. citations: An optional array of objects with integer "page" and "paragraph" fields referencing where the summarized content was found. Make your best guess if page/paragraph numbers are not explicitly available in the text. If you cannot find any citations, omit the field entirely.
The summary must be written in the requested language.
You MUST NOT wrap the JSON output in a markdown code block. The response should contain ONLY the raw JSON string.`

// Summarize generates an audience-specific bullet summary. Before
// prompting, the document is split into paragraph sections, scored for
// relevance to the audience and cut to the top-N sections.
func (c *Client) Summarize(ctx context.Context, in SummarizeInput) (*SummarizeOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	text := TopSections(in.Text, in.Audience, maxSummarySections, c.Scorer)

	prompt := fmt.Sprintf("Audience: %s\nLanguage: %s\n\nDocument Text:\n%s", in.Audience, in.Language, text)

	var out SummarizeOutput
	if err := c.generateJSON(ctx, summarizeSystemInstruction, prompt, &out); err != nil {
		return nil, err
	}
	if err := out.validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
