package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// Bounds on the untrusted model-produced tree.
	maxMindMapDepth = 6
	maxMindMapNodes = 200
)

type MindMapInput struct {
	DocumentText string `json:"documentText"`
}

func (in MindMapInput) Validate() error {
	if strings.TrimSpace(in.DocumentText) == "" {
		return fmt.Errorf("%w: documentText is required", ErrInvalidInput)
	}
	return nil
}

// MindMapNode is one node of the generated mind map. The root node is the
// document's central theme. Children own their subtrees; there are no
// back-pointers.
type MindMapNode struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Children []*MindMapNode `json:"children,omitempty"`
}

const mindMapSystemInstruction = `You are an expert at creating mind maps from text. Analyze the provided document and identify the central concept, main topics, and sub-topics. Structure this as a hierarchical mind map.
The root node should be the central theme of the document. Each child node should represent a major topic. Sub-topics should be nested as children of the main topics. Generate unique IDs for each node.
The response MUST be a single valid JSON object representing the root node, with keys "id" (string), "label" (string), and optional "children" (array of nodes with the same shape).
You MUST NOT wrap the JSON output in a markdown code block. The response should contain ONLY the raw JSON string.`

// MindMap builds a bounded topic tree for the document.
func (c *Client) MindMap(ctx context.Context, in MindMapInput) (*MindMapNode, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Document Text:\n%s", in.DocumentText)

	var root MindMapNode
	if err := c.generateJSON(ctx, mindMapSystemInstruction, prompt, &root); err != nil {
		return nil, err
	}
	if err := sanitizeMindMap(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

// sanitizeMindMap validates the untrusted tree against the depth and node
// bounds, rejects empty labels and backfills missing node IDs.
func sanitizeMindMap(root *MindMapNode) error {
	count := 0
	var walk func(n *MindMapNode, depth int) error
	walk = func(n *MindMapNode, depth int) error {
		if depth > maxMindMapDepth {
			return fmt.Errorf("%w: mind map exceeds maximum depth %d", ErrModelResponseInvalid, maxMindMapDepth)
		}
		count++
		if count > maxMindMapNodes {
			return fmt.Errorf("%w: mind map exceeds maximum of %d nodes", ErrModelResponseInvalid, maxMindMapNodes)
		}
		if strings.TrimSpace(n.Label) == "" {
			return fmt.Errorf("%w: mind map node has an empty label", ErrModelResponseInvalid)
		}
		if strings.TrimSpace(n.ID) == "" {
			n.ID = uuid.NewString()
		}
		for _, child := range n.Children {
			if child == nil {
				return fmt.Errorf("%w: mind map contains a null child node", ErrModelResponseInvalid)
			}
			if err := walk(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root, 1)
}
