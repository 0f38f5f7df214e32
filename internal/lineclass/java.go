package lineclass

import "strings"

// ClassifyJava classifies src using C-family comment syntax, where
// /** ... */ blocks are documentation.
func ClassifyJava(src []byte) Result {
	lines := splitLines(src)
	kinds := make([]Kind, len(lines))
	var warnings []Warning

	inBlock := false
	blockKind := Comment

	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			kinds[i] = Whitespace

		case inBlock:
			kinds[i] = blockKind
			if end := strings.Index(line, "*/"); end >= 0 {
				inBlock, blockKind = reopens(line[end+2:])
			}

		case strings.HasPrefix(line, "//"):
			kinds[i] = Comment

		case strings.HasPrefix(line, "/**") && !strings.HasPrefix(line, "/**/"):
			kinds[i] = Doc
			inBlock, blockKind = unclosed(line[3:], Doc)

		case strings.HasPrefix(line, "/*"):
			kinds[i] = Comment
			inBlock, blockKind = unclosed(line[2:], Comment)

		default:
			kinds[i] = Code
			open := strings.Index(line, "/*")
			slash := strings.Index(line, "//")
			code := line
			if slash >= 0 {
				code = line[:slash]
			}
			switch {
			case open >= 0 && (slash < 0 || open < slash):
				inBlock, blockKind = unclosed(opener(line[open:]))
			case strings.Contains(code, "*/"):
				warnings = append(warnings, Warning{Line: i + 1, Message: "extra */"})
			}
		}
	}

	if inBlock {
		warnings = append(warnings, Warning{Line: len(lines), Message: "unterminated block comment"})
	}

	r := newResult(kinds)
	r.Warnings = warnings
	return r
}

// unclosed reports whether a block comment of kind k, whose opener precedes
// s, is still open at the end of s. Comments opened after the close are
// followed, and the kind of the block left open is returned.
func unclosed(s string, k Kind) (bool, Kind) {
	for {
		end := strings.Index(s, "*/")
		if end < 0 {
			return true, k
		}
		s = s[end+2:]
		start := strings.Index(s, "/*")
		if start < 0 {
			return false, Comment
		}
		s, k = opener(s[start:])
	}
}

// opener returns the text after the block opener at the start of s and the
// kind of block it opens.
func opener(s string) (string, Kind) {
	if strings.HasPrefix(s, "/**") && !strings.HasPrefix(s, "/**/") {
		return s[3:], Doc
	}
	return s[2:], Comment
}

// reopens reports whether s, the remainder of a line after a closing */,
// leaves a new block comment open, and of which kind.
func reopens(s string) (bool, Kind) {
	start := strings.Index(s, "/*")
	if start < 0 {
		return false, Comment
	}
	return unclosed(opener(s[start:]))
}
