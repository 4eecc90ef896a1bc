package service

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}_\s°-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)

	preservedAcronyms = []string{"RPM", "PSI", "GPS", "ABS", "ESP", "ECU", "OBD", "DTC"}
)

// NormalizeText prepares text for embedding: punctuation and symbols other
// than the degree sign and hyphen become spaces, whitespace is collapsed,
// and known acronyms written in lowercase are restored to uppercase.
func NormalizeText(text string) string {
	text = disallowedChars.ReplaceAllString(text, " ")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	for _, term := range preservedAcronyms {
		text = replaceWholeWord(text, strings.ToLower(term), term)
	}
	return text
}

// replaceWholeWord replaces occurrences of word that are not glued to a
// letter or digit on either side. Matching is case-sensitive and
// non-overlapping.
func replaceWholeWord(text, word, replacement string) string {
	if word == "" || !strings.Contains(text, word) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	start := 0
	for {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			break
		}
		idx += start
		end := idx + len(word)

		b.WriteString(text[start:idx])
		before, _ := utf8.DecodeLastRuneInString(text[:idx])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(before) || isWordRune(after) {
			b.WriteString(word)
		} else {
			b.WriteString(replacement)
		}
		start = end
	}
	b.WriteString(text[start:])
	return b.String()
}

func isWordRune(r rune) bool {
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}
