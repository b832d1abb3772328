package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
)

// Slugger turns a title or name into a URL slug.
type Slugger func(s string) string

// SimpleSlug lower-cases s and joins its words with "-". Words are split on
// whitespace and "/". "Hello World" becomes "hello-world". Other punctuation
// is kept.
func SimpleSlug(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return unicode.IsSpace(r) || r == '/'
	})
	return strings.Join(words, "-")
}

// ASCIISlug transliterates s to ASCII and drops punctuation.
// "Héllo, Wörld!" becomes "hello-world".
func ASCIISlug(s string) string {
	return slug.Make(s)
}

// SluggerFor returns the slugger for a SLUG_MODE value.
func SluggerFor(mode string) (Slugger, error) {
	switch mode {
	case "", "simple":
		return SimpleSlug, nil
	case "ascii":
		return ASCIISlug, nil
	default:
		return nil, fmt.Errorf("unknown slug mode %q", mode)
	}
}

// validSlug rejects slugs that cannot come from a single path segment.
func validSlug(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t\r\n/")
}
