package value

import (
	"fmt"
	"unicode/utf8"
)

// ValidateNCName validates xs:NCName lexical constraints.
// xs:ID shares this lexical space.
func ValidateNCName(value string) error {
	if value == "" {
		return fmt.Errorf("NCName cannot be empty")
	}
	for i := 0; i < len(value); {
		r, size := utf8.DecodeRuneInString(value[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("invalid NCName character")
		}
		if r == ':' {
			return fmt.Errorf("NCName cannot contain colons")
		}
		if i == 0 {
			if !isNameStartChar(r) {
				return fmt.Errorf("invalid NCName start character: %c", r)
			}
		} else if !isNameChar(r) {
			return fmt.Errorf("invalid NCName character: %c", r)
		}
		i += size
	}
	return nil
}

func isNameStartChar(r rune) bool {
	return r == ':' || r == '_' ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 0xC0 && r <= 0xD6) ||
		(r >= 0xD8 && r <= 0xF6) ||
		(r >= 0xF8 && r <= 0x2FF) ||
		(r >= 0x370 && r <= 0x37D) ||
		(r >= 0x37F && r <= 0x1FFF) ||
		(r >= 0x200C && r <= 0x200D) ||
		(r >= 0x2070 && r <= 0x218F) ||
		(r >= 0x2C00 && r <= 0x2FEF) ||
		(r >= 0x3001 && r <= 0xD7FF) ||
		(r >= 0xF900 && r <= 0xFDCF) ||
		(r >= 0xFDF0 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0xEFFFF)
}

func isNameChar(r rune) bool {
	return isNameStartChar(r) ||
		r == '-' || r == '.' ||
		(r >= '0' && r <= '9') ||
		r == 0xB7 ||
		(r >= 0x0300 && r <= 0x036F) ||
		(r >= 0x203F && r <= 0x2040)
}
