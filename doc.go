// Package mdh converts a constrained subset of Markdown into HTML.
//
// The subset covers ATX headings (levels 1-6), bold, italic, inline
// links and images, flat unordered lists, and plain text paragraphs.
// Malformed constructs never error: the scanner falls back to a literal
// text token reproducing the consumed characters, so every input
// produces output.
//
// Example:
//
//	html := mdh.Convert("# Hello\n\nMarkdown in, **HTML** out.\n")
//	fmt.Print(html)
//
// Render reads from an io.Reader, validates the input, strips leading
// front matter, and can soft-wrap the emitted HTML source:
//
//	err := mdh.Render(mdh.RenderRequest{
//		Reader:  reader,
//		Writer:  os.Stdout,
//		Options: []mdh.RenderOption{mdh.WithWrap(100)},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The token stream is also available directly via Tokenize or Scanner
// for callers that want to post-process before rendering.
package mdh
