package mdh

// Kind classifies a scanned markdown token.
type Kind uint8

const (
	// KindText is a plain text run, or the literal fallback emitted when
	// a structured match fails.
	KindText Kind = iota
	// KindHeading is an ATX heading, level 1-6.
	KindHeading
	// KindBold is strong emphasis (**text**).
	KindBold
	// KindItalic is emphasis (*text*).
	KindItalic
	// KindLink is an inline link ([label](url)).
	KindLink
	// KindImage is an inline image (![alt](url)).
	KindImage
	// KindListItem is an unordered list item (- text).
	KindListItem
	// KindEOF marks scanning completion. It is a terminal marker, not a
	// kind of content; Scanner.Next returns it indefinitely once the
	// source is exhausted.
	KindEOF
)

var kindNames = [...]string{
	KindText:     "Text",
	KindHeading:  "Heading",
	KindBold:     "Bold",
	KindItalic:   "Italic",
	KindLink:     "Link",
	KindImage:    "Image",
	KindListItem: "ListItem",
	KindEOF:      "EOF",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Token is one classified unit of scanned markdown. Text holds the
// literal content; for links it is the label and for images the alt
// text, with the target in URL. Level is set for headings only.
// Tokens are never mutated after creation.
type Token struct {
	Kind  Kind
	Text  string
	URL   string
	Level int
}

// EOF reports whether the token marks the end of the stream.
func (t Token) EOF() bool { return t.Kind == KindEOF }

var eofToken = Token{Kind: KindEOF}
