package mdh

import "strings"

var headingOpen = [...]string{
	"", "<h1>", "<h2>", "<h3>", "<h4>", "<h5>", "<h6>",
}

var headingClose = [...]string{
	"", "</h1>\n", "</h2>\n", "</h3>\n", "</h4>\n", "</h5>\n", "</h6>\n",
}

func isInline(k Kind) bool {
	return k == KindBold || k == KindItalic || k == KindLink || k == KindImage
}

func isBlock(k Kind) bool {
	return k == KindHeading || k == KindListItem
}

// RenderTokens renders a token sequence as an HTML fragment.
func RenderTokens(tokens []Token) string {
	var b strings.Builder
	renderHTML(tokens, &b)
	return b.String()
}

// renderHTML is a single left-to-right pass over the token sequence.
// Paragraph and list wrappers open and close on kind transitions: a
// list item closes any open paragraph and opens the list, a non-list
// token closes the list, text-like tokens open a paragraph, and a
// paragraph closes before a block token or at the end of the sequence.
func renderHTML(tokens []Token, b *strings.Builder) {
	inList := false
	inParagraph := false
	for i, tok := range tokens {
		if tok.Kind == KindListItem {
			if inParagraph {
				b.WriteString("</p>\n")
				inParagraph = false
			}
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
		} else if inList {
			b.WriteString("</ul>\n")
			inList = false
		}
		if (tok.Kind == KindText || isInline(tok.Kind)) && !inParagraph {
			b.WriteString("<p>")
			inParagraph = true
		} else if inParagraph && isBlock(tok.Kind) {
			b.WriteString("</p>\n")
			inParagraph = false
		}
		appendToken(b, tok)
		if inParagraph && (i == len(tokens)-1 || isBlock(tokens[i+1].Kind)) {
			b.WriteString("</p>\n")
			inParagraph = false
		}
	}
	if inList {
		b.WriteString("</ul>\n")
	}
	if inParagraph {
		b.WriteString("</p>\n")
	}
}

func appendToken(b *strings.Builder, tok Token) {
	switch tok.Kind {
	case KindText:
		escapeHTML(b, tok.Text)
	case KindHeading:
		level := tok.Level
		if level < 1 {
			level = 1
		} else if level > 6 {
			level = 6
		}
		b.WriteString(headingOpen[level])
		escapeHTML(b, tok.Text)
		b.WriteString(headingClose[level])
	case KindBold:
		b.WriteString("<strong>")
		escapeHTML(b, tok.Text)
		b.WriteString("</strong>")
	case KindItalic:
		b.WriteString("<em>")
		escapeHTML(b, tok.Text)
		b.WriteString("</em>")
	case KindListItem:
		b.WriteString("<li>")
		escapeHTML(b, tok.Text)
		b.WriteString("</li>\n")
	case KindLink:
		b.WriteString(`<a href="`)
		escapeHTML(b, tok.URL)
		b.WriteString(`">`)
		escapeHTML(b, tok.Text)
		b.WriteString("</a>")
	case KindImage:
		b.WriteString(`<img src="`)
		escapeHTML(b, tok.URL)
		b.WriteString(`" alt="`)
		escapeHTML(b, tok.Text)
		b.WriteString(`">`)
	}
}

// escapeHTML writes text with &, <, > and " replaced by entity
// references. URLs get the same treatment and nothing more.
func escapeHTML(b *strings.Builder, text string) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteByte(text[i])
		}
	}
}
