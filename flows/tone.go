package flows

import (
	"context"
	"fmt"
	"strings"
)

type ToneInput struct {
	DocumentText string `json:"documentText"`
}

func (in ToneInput) Validate() error {
	if strings.TrimSpace(in.DocumentText) == "" {
		return fmt.Errorf("%w: documentText is required", ErrInvalidInput)
	}
	return nil
}

type ToneOutput struct {
	Sentiment    string   `json:"sentiment"`
	Tones        []string `json:"tones"`
	WritingStyle string   `json:"writingStyle"`
	Emoji        string   `json:"emoji"`
	Summary      string   `json:"summary"`
}

func (out ToneOutput) validate() error {
	if strings.TrimSpace(out.Sentiment) == "" {
		return fmt.Errorf("%w: sentiment is empty", ErrModelResponseInvalid)
	}
	if len(out.Tones) < 2 || len(out.Tones) > 4 {
		return fmt.Errorf("%w: expected 2-4 tones, got %d", ErrModelResponseInvalid, len(out.Tones))
	}
	if strings.TrimSpace(out.WritingStyle) == "" {
		return fmt.Errorf("%w: writingStyle is empty", ErrModelResponseInvalid)
	}
	if strings.TrimSpace(out.Emoji) == "" {
		return fmt.Errorf("%w: emoji is empty", ErrModelResponseInvalid)
	}
	if strings.TrimSpace(out.Summary) == "" {
		return fmt.Errorf("%w: summary is empty", ErrModelResponseInvalid)
	}
	return nil
}

const toneSystemInstruction = `You are an expert linguistic analyst. Analyze the provided document to determine its sentiment, tone, and writing style.
The response MUST be a valid JSON object with the following keys:
1. sentiment: A single word describing the overall sentiment (e.g., Positive, Negative, Neutral, Mixed).
2. tones: A list of 2-4 dominant tones (e.g., Formal, Informal, Optimistic, Pessimistic, Humorous, Serious, Critical).
3. writingStyle: The primary writing style (e.g., Academic, Narrative, Persuasive, Technical, Expository).
4. emoji: A single emoji that best represents the overall feeling of the text.
5. summary: A concise one-paragraph summary explaining your analysis of the document's tone and style.
You MUST NOT wrap the JSON output in a markdown code block. The response should contain ONLY the raw JSON string.`

// AnalyzeTone classifies sentiment, dominant tones and writing style.
func (c *Client) AnalyzeTone(ctx context.Context, in ToneInput) (*ToneOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Document Text:\n%s", in.DocumentText)

	var out ToneOutput
	if err := c.generateJSON(ctx, toneSystemInstruction, prompt, &out); err != nil {
		return nil, err
	}
	if err := out.validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
