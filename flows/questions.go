package flows

import (
	"context"
	"fmt"
	"strings"
)

type SuggestedQuestionsInput struct {
	DocumentText string `json:"documentText"`
}

func (in SuggestedQuestionsInput) Validate() error {
	if strings.TrimSpace(in.DocumentText) == "" {
		return fmt.Errorf("%w: documentText is required", ErrInvalidInput)
	}
	return nil
}

type SuggestedQuestionsOutput struct {
	Questions []string `json:"questions"`
}

func (out SuggestedQuestionsOutput) validate() error {
	if len(out.Questions) < 3 || len(out.Questions) > 5 {
		return fmt.Errorf("%w: expected 3-5 questions, got %d", ErrModelResponseInvalid, len(out.Questions))
	}
	for _, q := range out.Questions {
		if strings.TrimSpace(q) == "" {
			return fmt.Errorf("%w: questions contain an empty entry", ErrModelResponseInvalid)
		}
	}
	return nil
}

const suggestedQuestionsSystemInstruction = `You are an expert at analyzing documents and identifying key topics for discussion.
Read the provided document text and generate a list of 3-5 insightful and relevant questions that a user might want to ask about it. Focus on questions that encourage deeper understanding of the document's main points, arguments, or data.
The response MUST be a valid JSON object with a single key "questions" holding an array of 3 to 5 question strings.
You MUST NOT wrap the JSON output in a markdown code block. The response should contain ONLY the raw JSON string.`

// SuggestedQuestions proposes questions worth asking about the document.
func (c *Client) SuggestedQuestions(ctx context.Context, in SuggestedQuestionsInput) (*SuggestedQuestionsOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Document Text:\n%s", in.DocumentText)

	var out SuggestedQuestionsOutput
	if err := c.generateJSON(ctx, suggestedQuestionsSystemInstruction, prompt, &out); err != nil {
		return nil, err
	}
	if err := out.validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
