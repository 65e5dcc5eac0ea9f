package value

import (
	"iter"
	"strings"
)

// WhitespaceMode selects how character data is normalized before it is stored.
type WhitespaceMode uint8

const (
	// WhitespacePreserve keeps the value unchanged.
	WhitespacePreserve WhitespaceMode = iota
	// WhitespaceReplace maps tab, CR and LF to a space.
	WhitespaceReplace
	// WhitespaceCollapse replaces, then trims and folds runs of spaces into one.
	WhitespaceCollapse
)

// NormalizeWhitespace applies the whitespace mode to in.
// It returns in unchanged when no rewrite is needed.
func NormalizeWhitespace(mode WhitespaceMode, in string) string {
	switch mode {
	case WhitespaceReplace:
		return replaceWhitespace(in)
	case WhitespaceCollapse:
		return CollapseWhitespace(in)
	default:
		return in
	}
}

// CollapseWhitespace applies the xs:token whitespace rule.
func CollapseWhitespace(in string) string {
	if !needsCollapse(in) {
		return in
	}
	var b strings.Builder
	b.Grow(len(in))
	for field := range FieldsXMLWhitespaceSeq(in) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(field)
	}
	return b.String()
}

// IsXMLWhitespaceOnly reports whether in is empty or made only of XML whitespace.
func IsXMLWhitespaceOnly(in string) bool {
	for i := 0; i < len(in); i++ {
		if !IsXMLWhitespaceByte(in[i]) {
			return false
		}
	}
	return true
}

// FieldsXMLWhitespaceSeq yields XML whitespace-separated fields without allocation.
func FieldsXMLWhitespaceSeq(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		i := 0
		for i < len(in) {
			for i < len(in) && IsXMLWhitespaceByte(in[i]) {
				i++
			}
			if i >= len(in) {
				return
			}
			start := i
			for i < len(in) && !IsXMLWhitespaceByte(in[i]) {
				i++
			}
			if !yield(in[start:i]) {
				return
			}
		}
	}
}

func replaceWhitespace(in string) string {
	if !strings.ContainsAny(in, "\t\n\r") {
		return in
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return ' '
		default:
			return r
		}
	}, in)
}

func needsCollapse(in string) bool {
	if in == "" {
		return false
	}
	if IsXMLWhitespaceByte(in[0]) || IsXMLWhitespaceByte(in[len(in)-1]) {
		return true
	}
	if strings.ContainsAny(in, "\t\n\r") {
		return true
	}
	return strings.Contains(in, "  ")
}

// IsXMLWhitespaceByte reports whether the byte is XML whitespace.
func IsXMLWhitespaceByte(b byte) bool {
	if b > ' ' {
		return false
	}
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
