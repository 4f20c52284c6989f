// Package llm wraps the hosted language model behind a small interface so the
// coaching flows can be exercised against a fake.
package llm

import (
	"context"
	"strings"

	"alfredoptarigan/interview-coach/internal/schemas"
)

// Client sends one prompt to the model and returns its raw JSON reply.
type Client interface {
	// GenerateJSON asks the model for a JSON object with exactly the fields of
	// output. The reply is returned as text; callers validate it.
	GenerateJSON(ctx context.Context, prompt string, output schemas.Contract) (string, error)
}

// CleanJSONBlock removes markdown code fences the model sometimes adds around
// JSON replies.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	} else {
		return text
	}

	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
