package flows

import (
	"context"
	"fmt"
	"strings"
)

type ChatInput struct {
	DocumentText string `json:"documentText"`
	UserQuestion string `json:"userQuestion"`
}

func (in ChatInput) Validate() error {
	if strings.TrimSpace(in.DocumentText) == "" {
		return fmt.Errorf("%w: documentText is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.UserQuestion) == "" {
		return fmt.Errorf("%w: userQuestion is required", ErrInvalidInput)
	}
	return nil
}

type ChatOutput struct {
	Answer string `json:"answer"`
}

func (out ChatOutput) validate() error {
	if strings.TrimSpace(out.Answer) == "" {
		return fmt.Errorf("%w: answer is empty", ErrModelResponseInvalid)
	}
	return nil
}

const chatSystemInstruction = `You are a helpful assistant that answers questions about a document. You will be given the document text and a user question. You must answer the question using only the information in the document. If you cannot answer the question from the document alone, say that you cannot answer the question; never fabricate an answer. Provide citations to the page or paragraph numbers in the document where you found the information.
The response MUST be a valid JSON object with a single key "answer" containing the answer string.
You MUST NOT wrap the JSON output in a markdown code block. The response should contain ONLY the raw JSON string.`

// Chat answers a question strictly from the document text.
func (c *Client) Chat(ctx context.Context, in ChatInput) (*ChatOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Document Text:\n%s\n\nUser Question:\n%s", in.DocumentText, in.UserQuestion)

	var out ChatOutput
	if err := c.generateJSON(ctx, chatSystemInstruction, prompt, &out); err != nil {
		return nil, err
	}
	if err := out.validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
