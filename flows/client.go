package flows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"doclens/config"
	"doclens/quota"
)

var (
	// ErrInvalidInput is returned when a flow input fails schema
	// validation, before any model call is made.
	ErrInvalidInput = errors.New("invalid flow input")

	// ErrModelResponseInvalid is returned when the model response is not
	// valid JSON for the flow's output schema. Non-conformant responses
	// are rejected whole, never partially accepted.
	ErrModelResponseInvalid = errors.New("model response does not match output schema")

	// ErrNoAudioGenerated is returned when the speech model produced no
	// audio media.
	ErrNoAudioGenerated = errors.New("no audio media was generated")

	// ErrQuotaExhausted is returned when the daily LLM call budget is
	// spent.
	ErrQuotaExhausted = errors.New("llm call quota exhausted")
)

// Client runs the AI transform flows against Gemini. Each flow is
// stateless between invocations; the client only carries the connection,
// model names and the shared call quota.
type Client struct {
	genaiClient *genai.Client
	model       string
	ttsModel    string
	voice       string
	limiter     *quota.LLMQuotaLimiter

	// Scorer ranks document sections for the summarize flow's token
	// budget cut. Swappable; defaults to keyword overlap scoring.
	Scorer SectionScorer
}

// NewClient builds a flow client from config. The API key comes from the
// GEMINI_API_KEY environment variable. A nil limiter disables quota
// enforcement.
func NewClient(ctx context.Context, cfg config.GeminiConfig, limiter *quota.LLMQuotaLimiter) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		genaiClient: genaiClient,
		model:       cfg.Model,
		ttsModel:    cfg.TTSModel,
		voice:       cfg.Voice,
		limiter:     limiter,
		Scorer:      keywordScorer{},
	}, nil
}

func (c *Client) reserveQuota(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	ok, err := c.limiter.WaitAndReserve(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrQuotaExhausted
	}
	return nil
}

// generateJSON submits the prompt, demands a JSON response and unmarshals
// it into out. Any response that fails to parse against out's schema is
// rejected as ErrModelResponseInvalid.
func (c *Client) generateJSON(ctx context.Context, systemInstruction, prompt string, out any) error {
	if err := c.reserveQuota(ctx); err != nil {
		return err
	}

	result, err := c.genaiClient.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return err
	}

	raw := stripJSONFences(result.Text())
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %v", ErrModelResponseInvalid, err)
	}
	return nil
}

// generateSpeech submits text to the TTS model and returns the raw PCM
// bytes of the first audio part.
func (c *Client) generateSpeech(ctx context.Context, text string) ([]byte, error) {
	if err := c.reserveQuota(ctx); err != nil {
		return nil, err
	}

	result, err := c.genaiClient.Models.GenerateContent(
		ctx,
		c.ttsModel,
		genai.Text(text),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: c.voice},
				},
			},
		},
	)
	if err != nil {
		return nil, err
	}

	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, ErrNoAudioGenerated
}

// stripJSONFences removes a surrounding markdown code block if the model
// ignored the instruction to return raw JSON.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
