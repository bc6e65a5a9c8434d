package mdh

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	validate         bool
	stripFrontMatter bool
	wrapWidth        int
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		validate:         true,
		stripFrontMatter: true,
	}
}

// WithValidation enables or disables UTF-8 and binary input validation.
func WithValidation(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.validate = enabled
	}
}

// WithFrontMatter enables or disables stripping of front matter at the
// start of the document.
func WithFrontMatter(strip bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.stripFrontMatter = strip
	}
}

// WithWrap soft-wraps the emitted HTML source at width columns. The
// wrapped positions are insignificant whitespace, so the rendered page
// is unaffected. Zero disables wrapping.
func WithWrap(width int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.wrapWidth = width
	}
}
