package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

// maxGenerateTokens bounds the response size of a single generation call.
const maxGenerateTokens = 4096

// systemPrompt frames every generation call. The role-specific framing lives
// in the rendered prompt itself.
const systemPrompt = "You are a careful medical analysis assistant. Follow the task instructions exactly."

// Generate performs a single text generation round-trip for the given prompt.
// There is no tool use, no multi-turn state, and no retry: one prompt in, one
// response out. Token usage is recorded on the client's tracker.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.inner.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxGenerateTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message: %w", err)
	}

	c.tracker.Add(resp.Usage.InputTokens, resp.Usage.OutputTokens)

	var text strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(variant.Text)
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("empty response from model %s", c.model)
	}
	return text.String(), nil
}
