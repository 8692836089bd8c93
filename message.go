package santacerts

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// messageConverter abstracts Markdown to HTML conversion for recipient messages.
type messageConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkMessageConverter converts Markdown messages to HTML fragments
// using goldmark (pure Go).
type goldmarkMessageConverter struct {
	md goldmark.Markdown
}

// newGoldmarkMessageConverter creates a converter with GFM extensions.
func newGoldmarkMessageConverter() *goldmarkMessageConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &goldmarkMessageConverter{md: md}
}

// ToHTML converts a Markdown message to an HTML fragment suitable for the
// certificate message block. Supports context cancellation via
// goroutine + select pattern since goldmark doesn't natively support context.
func (c *goldmarkMessageConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMessageConvert, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// ConvertMessage converts a Markdown message to the HTML fragment expected
// by Recipient.Message. Used when recipients come from a config file, where
// messages are written in Markdown rather than raw HTML.
func ConvertMessage(ctx context.Context, markdown string) (string, error) {
	return newGoldmarkMessageConverter().ToHTML(ctx, markdown)
}
