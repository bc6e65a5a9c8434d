package mdh

import "strings"

// markdownTrigger marks the bytes that start a structured construct.
// Kept as a lookup table so new constructs (blockquotes, code spans)
// only need a table entry.
var markdownTrigger = [256]bool{
	'#': true,
	'*': true,
	'[': true,
	'!': true,
	'-': true,
}

// asciiSpace matches C isspace for the ASCII range. The NUL sentinel at
// end of input is deliberately not a space.
var asciiSpace = [256]bool{
	' ':  true,
	'\t': true,
	'\n': true,
	'\v': true,
	'\f': true,
	'\r': true,
}

// Scanner converts markdown text into Tokens, one per Next call. It is
// byte-oriented and single-threaded; a fresh Scanner (or Reset) is
// needed per document. The scanner never fails: a construct that does
// not complete degrades to a Text token reproducing the consumed
// characters.
type Scanner struct {
	src string
	pos int
	ch  byte
}

// NewScanner returns a Scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	s := &Scanner{}
	s.Reset(src)
	return s
}

// Reset rewinds the scanner onto a new source.
func (s *Scanner) Reset(src string) {
	s.src = src
	s.pos = 0
	if len(src) > 0 {
		s.ch = src[0]
	} else {
		s.ch = 0
	}
}

func (s *Scanner) advance() {
	s.pos++
	if s.pos >= len(s.src) {
		s.ch = 0
		return
	}
	s.ch = s.src[s.pos]
}

func (s *Scanner) peek() byte {
	if s.pos+1 >= len(s.src) {
		return 0
	}
	return s.src[s.pos+1]
}

// collectUntil consumes bytes up to (not including) delim, a newline,
// or end of input, and returns them.
func (s *Scanner) collectUntil(delim byte) string {
	start := s.pos
	for s.ch != 0 && s.ch != delim && s.ch != '\n' {
		s.advance()
	}
	return s.src[start:s.pos]
}

// Next returns the next token. Runs of blank lines produce no token;
// once the source is exhausted Next keeps returning the EOF marker.
func (s *Scanner) Next() Token {
	if s.ch == 0 {
		return eofToken
	}
	for s.ch == '\n' {
		s.advance()
		if s.ch == 0 {
			return eofToken
		}
	}
	switch s.ch {
	case '#':
		return s.scanHeading()
	case '*':
		return s.scanEmphasis()
	case '[':
		return s.scanLink()
	case '!':
		return s.scanImage()
	case '-':
		return s.scanListItem()
	}
	return s.scanText()
}

// scanHeading handles an ATX heading attempt. The level saturates at 6;
// a seventh # fails the whitespace check and the whole line comes back
// as literal text. A # run must be followed by whitespace (the newline
// counts, giving an empty heading) to form a heading.
func (s *Scanner) scanHeading() Token {
	level := 1
	s.advance()
	for s.ch == '#' && level < 6 {
		level++
		s.advance()
	}
	if !asciiSpace[s.ch] {
		rest := s.collectUntil('\n')
		if s.ch == '\n' {
			s.advance()
		}
		return Token{Kind: KindText, Text: strings.Repeat("#", level) + rest}
	}
	for asciiSpace[s.ch] && s.ch != '\n' {
		s.advance()
	}
	content := s.collectUntil('\n')
	if s.ch == '\n' {
		s.advance()
	}
	return Token{Kind: KindHeading, Level: level, Text: content}
}

// scanEmphasis handles both bold and italic. Bold capture is greedy and
// non-recursive: it stops at the first * regardless of nesting, and a
// lone closing * is reproduced in the fallback text but left unconsumed
// for the next scan.
func (s *Scanner) scanEmphasis() Token {
	s.advance()
	if s.ch == '*' {
		s.advance()
		content := s.collectUntil('*')
		if s.ch == '*' && s.peek() == '*' {
			s.advance()
			s.advance()
			return Token{Kind: KindBold, Text: content}
		}
		if s.ch == '*' {
			return Token{Kind: KindText, Text: "**" + content + "*"}
		}
		return Token{Kind: KindText, Text: "**" + content}
	}
	start := s.pos
	for s.ch != 0 && s.ch != '\n' {
		if s.ch == '*' {
			content := s.src[start:s.pos]
			s.advance()
			return Token{Kind: KindItalic, Text: content}
		}
		s.advance()
	}
	return Token{Kind: KindText, Text: "*" + s.src[start:s.pos]}
}

// scanLink treats [ and ] as a balanced pair with \[ as a literal
// escape. The label may span newlines. Three fallbacks reproduce the
// consumed input: unterminated bracket, missing ( after the label, and
// missing ) after the URL.
func (s *Scanner) scanLink() Token {
	s.advance()
	var label strings.Builder
	depth := 1
	for s.ch != 0 {
		if s.ch == '\\' && s.peek() == '[' {
			label.WriteByte('[')
			s.advance()
			s.advance()
			continue
		}
		if s.ch == '[' {
			depth++
		} else if s.ch == ']' {
			depth--
			if depth == 0 {
				s.advance()
				break
			}
		}
		label.WriteByte(s.ch)
		s.advance()
	}
	if depth > 0 {
		return Token{Kind: KindText, Text: "[" + label.String()}
	}
	if s.ch != '(' {
		return Token{Kind: KindText, Text: "[" + label.String() + "]"}
	}
	s.advance()
	url := s.collectUntil(')')
	if s.ch != ')' {
		return Token{Kind: KindText, Text: "[" + label.String() + "](" + url}
	}
	s.advance()
	return Token{Kind: KindLink, Text: label.String(), URL: url}
}

// scanImage delegates to the link attempt. A failed link comes back as
// text with the ! prepended.
func (s *Scanner) scanImage() Token {
	s.advance()
	if s.ch != '[' {
		return Token{Kind: KindText, Text: "!"}
	}
	tok := s.scanLink()
	if tok.Kind == KindLink {
		return Token{Kind: KindImage, Text: tok.Text, URL: tok.URL}
	}
	tok.Text = "!" + tok.Text
	return tok
}

// scanListItem requires exactly one whitespace byte after the dash.
// That byte may itself be the newline, in which case the item content
// is the following line.
func (s *Scanner) scanListItem() Token {
	s.advance()
	if !asciiSpace[s.ch] {
		rest := s.collectUntil('\n')
		if s.ch == '\n' {
			s.advance()
		}
		return Token{Kind: KindText, Text: "-" + rest}
	}
	s.advance()
	content := s.collectUntil('\n')
	if s.ch == '\n' {
		s.advance()
	}
	return Token{Kind: KindListItem, Text: content}
}

// scanText accumulates bytes until a trigger byte or a blank line. The
// blank line marks a paragraph break and is not part of the content;
// trailing newlines are trimmed.
func (s *Scanner) scanText() Token {
	start := s.pos
	for s.ch != 0 && !markdownTrigger[s.ch] {
		if s.ch == '\n' && s.peek() == '\n' {
			break
		}
		s.advance()
	}
	content := strings.TrimRight(s.src[start:s.pos], "\n")
	return Token{Kind: KindText, Text: content}
}
