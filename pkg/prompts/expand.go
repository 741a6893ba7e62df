// Package prompts builds the chat prompts sent to the content-generation
// model.
package prompts

import (
	"fmt"
	"strings"

	"github.com/soundprediction/ramify/pkg/types"
)

const expandSystemPrompt = `You are a research assistant that proposes new concepts related to a given concept in a knowledge graph. For each proposal, estimate how promising it is as a line of exploration on a scale from 0.0 to 1.0.`

// ExpandConcept builds the prompt asking the model to propose count new
// concepts related to parent. The model is instructed to answer with a bare
// JSON array so the response can be unmarshalled directly.
func ExpandConcept(parent types.Entity, count int) []types.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "<CONCEPT>\n%s\n</CONCEPT>\n", parent.Label)
	if parent.Content != "" {
		fmt.Fprintf(&b, "<DESCRIPTION>\n%s\n</DESCRIPTION>\n", parent.Content)
	}
	fmt.Fprintf(&b, `
Propose exactly %d distinct concepts closely related to the concept above.
Respond with a JSON array and nothing else. Each element must have the shape:
{"label": "<short name>", "content": "<one or two sentence description>", "score": <0.0-1.0>}
`, count)

	return []types.Message{
		{Role: "system", Content: expandSystemPrompt},
		{Role: "user", Content: b.String()},
	}
}
