package ledger

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ryanuber/go-glob"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold returns s case folded and without diacritics, so that
// "Müller" and "MULLER" compare equal.
func fold(s string) string {
	// transform.Chain is stateful, it must not be shared between goroutines
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	return strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
}

// tokens returns the folded words of s with at least three runes.
func tokens(s string) []string {
	var result []string
	for _, f := range strings.FieldsFunc(fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		if utf8.RuneCountInString(f) >= 3 {
			result = append(result, f)
		}
	}
	return result
}

// nameScore rates how well the texts mention the name.
//
// The full name as a substring scores 2. If every word of the name with at
// least three letters occurs somewhere, it scores 1.
func nameScore(name string, texts ...string) int {
	folded := fold(name)
	if folded == "" {
		return 0
	}

	haystack := make([]string, 0, len(texts))
	for _, t := range texts {
		haystack = append(haystack, fold(t))
	}
	joined := strings.Join(haystack, " ")

	if strings.Contains(joined, folded) {
		return 2
	}

	words := tokens(name)
	if len(words) == 0 {
		return 0
	}

	for _, w := range words {
		if !strings.Contains(joined, w) {
			return 0
		}
	}
	return 1
}

// searchPattern turns a search term into a folded glob pattern.
// Terms without a wildcard match anywhere.
func searchPattern(search string) string {
	pattern := fold(search)
	if !strings.Contains(pattern, "*") {
		pattern = "*" + pattern + "*"
	}
	return pattern
}

// matches reports whether any of the values matches the glob pattern
// created by searchPattern.
func matches(pattern string, values ...string) bool {
	for _, v := range values {
		if glob.Glob(pattern, fold(v)) {
			return true
		}
	}
	return false
}
