package mdh

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Convert converts markdown to an HTML fragment. Malformed constructs
// degrade to literal text, so Convert cannot fail.
func Convert(markdown string) string {
	var b strings.Builder
	b.Grow(len(markdown) + len(markdown)/2)
	renderHTML(Tokenize(markdown), &b)
	return b.String()
}

// Tokenize scans src to completion and returns the token sequence,
// excluding the terminal EOF marker.
func Tokenize(src string) []Token {
	s := NewScanner(src)
	var tokens []Token
	for tok := s.Next(); !tok.EOF(); tok = s.Next() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []RenderOption
}

// Render reads markdown from a stream and writes the HTML fragment.
// Input is validated and leading front matter stripped unless disabled
// via options.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := defaultRenderConfig()
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if cfg.validate {
		if err := ValidateInput(src); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if cfg.stripFrontMatter {
		src = stripFrontMatter(src)
	}
	html := Convert(string(src))
	if cfg.wrapWidth > 0 {
		html = wordwrap.String(html, cfg.wrapWidth)
		if html != "" && !strings.HasSuffix(html, "\n") {
			html += "\n"
		}
	}
	if _, err := io.WriteString(req.Writer, html); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}
