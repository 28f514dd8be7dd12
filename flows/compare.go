package flows

import (
	"context"
	"fmt"
	"strings"
)

type CompareInput struct {
	DocumentOneText string `json:"documentOneText"`
	DocumentOneName string `json:"documentOneName"`
	DocumentTwoText string `json:"documentTwoText"`
	DocumentTwoName string `json:"documentTwoName"`
}

func (in CompareInput) Validate() error {
	if strings.TrimSpace(in.DocumentOneText) == "" {
		return fmt.Errorf("%w: documentOneText is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.DocumentTwoText) == "" {
		return fmt.Errorf("%w: documentTwoText is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.DocumentOneName) == "" {
		return fmt.Errorf("%w: documentOneName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.DocumentTwoName) == "" {
		return fmt.Errorf("%w: documentTwoName is required", ErrInvalidInput)
	}
	return nil
}

type CompareOutput struct {
	Similarities []string `json:"similarities"`
	Differences  []string `json:"differences"`
	Conclusion   string   `json:"conclusion"`
}

func (out CompareOutput) validate() error {
	if len(out.Similarities) == 0 {
		return fmt.Errorf("%w: similarities are empty", ErrModelResponseInvalid)
	}
	if len(out.Differences) == 0 {
		return fmt.Errorf("%w: differences are empty", ErrModelResponseInvalid)
	}
	if strings.TrimSpace(out.Conclusion) == "" {
		return fmt.Errorf("%w: conclusion is empty", ErrModelResponseInvalid)
	}
	return nil
}

const compareSystemInstruction = `You are an expert research analyst. Your task is to compare two documents and provide a concise analysis of their similarities and differences.
The response MUST be a valid JSON object with the following keys:
1. similarities: A list of the most important shared themes, arguments, or data points.
2. differences: A list of the most significant contrasting points, arguments, or conclusions.
3. conclusion: A brief summary paragraph that encapsulates the overall relationship between the two documents (e.g., do they support each other, contradict, or discuss different facets of the same topic?).
You MUST NOT wrap the JSON output in a markdown code block. The response should contain ONLY the raw JSON string.`

// Compare analyzes two documents side by side.
func (c *Client) Compare(ctx context.Context, in CompareInput) (*CompareOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(
		"Document 1 (%s):\n%s\n\nDocument 2 (%s):\n%s",
		in.DocumentOneName, in.DocumentOneText,
		in.DocumentTwoName, in.DocumentTwoText,
	)

	var out CompareOutput
	if err := c.generateJSON(ctx, compareSystemInstruction, prompt, &out); err != nil {
		return nil, err
	}
	if err := out.validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
