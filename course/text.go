package course

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Text sanitation shared by every component above the document model. The
// upstream service occasionally emits control characters, HTML fragments and
// runaway lines - visible canvas gets cleaned and truncated text, speaker
// notes keep originals.

// Ellipsis terminates truncated canvas text.
const Ellipsis = "…"

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases the string and strips diacritics, used for accent and case
// insensitive matching of keys and enum values.
func Fold(s string) string {
	if out, _, err := transform.String(foldTransformer, s); err == nil {
		s = out
	}
	return strings.ToLower(s)
}

// CleanText removes control characters and HTML markup, decodes entities and
// collapses runs of whitespace into single spaces.
func CleanText(s string) string {
	if strings.ContainsAny(s, "<>&") {
		s = stripMarkup(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsControl(r) || r == unicode.ReplacementChar:
			// drop
		default:
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripMarkup drops tags keeping text content only.
func stripMarkup(s string) string {
	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(tok.Text())
		}
	}
}

// Truncate shortens s to at most max runes appending ellipsis when cut.
// Zero or negative max means no limit.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	cut := max - 1
	// do not leave dangling space before the ellipsis
	for cut > 0 && unicode.IsSpace(r[cut-1]) {
		cut--
	}
	return string(r[:cut]) + Ellipsis
}

// CleanLines sanitizes every line, drops the empty ones and clamps the result
// to at most max lines. Zero or negative max means no limit.
func CleanLines(lines []string, max int) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = CleanText(l)
		if l == "" {
			continue
		}
		if max > 0 && len(out) == max {
			break
		}
		out = append(out, l)
	}
	return out
}

// SplitLines breaks free text into sanitized non-empty lines.
func SplitLines(s string, max int) []string {
	return CleanLines(strings.Split(s, "\n"), max)
}
