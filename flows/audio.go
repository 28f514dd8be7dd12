package flows

import (
	"context"
	"fmt"
	"strings"
)

type AudioSummaryInput struct {
	Text string `json:"text"`
}

func (in AudioSummaryInput) Validate() error {
	if strings.TrimSpace(in.Text) == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	return nil
}

type AudioSummaryOutput struct {
	// AudioDataURI is a base64 WAV data URI playable directly in the
	// browser.
	AudioDataURI string `json:"audioDataUri"`
}

// AudioSummary speaks the given text. The speech model returns raw PCM,
// which is re-encoded into a standard WAV container (mono, 24kHz, 16-bit)
// before being returned as a data URI.
func (c *Client) AudioSummary(ctx context.Context, in AudioSummaryInput) (*AudioSummaryOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	pcm, err := c.generateSpeech(ctx, in.Text)
	if err != nil {
		return nil, err
	}
	if len(pcm) == 0 {
		return nil, ErrNoAudioGenerated
	}

	return &AudioSummaryOutput{AudioDataURI: pcmToWavDataURI(pcm)}, nil
}
