// Package preprocess turns raw text into the token stream the corrector learns from.
package preprocess

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Всё, что не армянская буква и не пробел, выбрасывается: пунктуация, цифры, латиница.
// \s в RE2 это только [\t\n\f\r ], поэтому \v, NEL и разделители \x1c-\x1f перечислены явно.
var nonArmenianRe = regexp.MustCompile(`[^\x{0531}-\x{0556}\x{0561}-\x{0587}\s\v\x{85}\x{1c}-\x{1f}\p{Z}]+`)

// isSpace is unicode.IsSpace plus the ASCII information separators.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Clean strips everything except Armenian letters and whitespace and
// collapses whitespace runs, newlines included, to single spaces.
func Clean(text string) string {
	text = norm.NFC.String(text)
	text = nonArmenianRe.ReplaceAllString(text, "")
	return strings.Join(strings.FieldsFunc(text, isSpace), " ")
}

// Tokens returns the whitespace-separated tokens of Clean(text).
func Tokens(text string) []string {
	return strings.Fields(Clean(text))
}
