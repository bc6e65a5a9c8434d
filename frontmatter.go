package mdh

import "bytes"

// stripFrontMatter removes a front-matter block at the start of src.
// Recognized delimiters are --- (YAML), +++ (TOML) and ;;; (JSON). The
// block is dropped only when the line after the opening delimiter looks
// like metadata and a matching closing delimiter exists; in every other
// case src is returned unchanged. Front matter is only recognized at
// the very start of the document.
func stripFrontMatter(src []byte) []byte {
	openLine, next := splitLine(src, 0)
	delim, ok := frontMatterDelimiter(openLine)
	if !ok {
		return src
	}
	metaLine, metaNext := splitLine(src, next)
	if !frontMatterMetadataLikely(metaLine) {
		return src
	}
	for idx := metaNext; idx < len(src); {
		line, lineNext := splitLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return src[lineNext:]
		}
		idx = lineNext
	}
	return src
}

// splitLine returns the line starting at start, without its terminator,
// and the offset of the next line.
func splitLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	if i := bytes.IndexByte(src[start:], '\n'); i >= 0 {
		return trimCR(src[start : start+i]), start + i + 1
	}
	return trimCR(src[start:]), len(src)
}

func frontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	if bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("=")) {
		return true
	}
	return false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
