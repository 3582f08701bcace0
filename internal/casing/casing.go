// Package casing converts spec names into Rust identifier styles.
package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits s into words at separators, lower-to-upper transitions and the
// end of acronyms. Digits stay attached to the word they follow.
//
//	"callTwo"         -> [call Two]
//	"HTTPSConnection" -> [HTTPS Connection]
//	"user_name-2"     -> [user name 2]
//	"callOne2"        -> [call One2]
func Words(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if i > 0 && unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// Snake converts s to snake_case.
func Snake(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

// Pascal converts s to PascalCase. Acronyms are title-cased ("HTTPServer" -> "HttpServer").
func Pascal(s string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(caser.String(strings.ToLower(w)))
	}
	return b.String()
}
