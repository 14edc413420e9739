package source

import (
	"regexp"
	"strings"
)

// Joiner words dropped from search phrases, matching the host convention
// for title tokenization.
var joiners = map[string]struct{}{
	"a": {}, "and": {}, "the": {}, "&": {},
}

var wordPattern = regexp.MustCompile(`[\pL\pN']+`)

// TitleTokens splits a title into search tokens: the subtitle (anything
// after the first colon) is stripped, punctuation is dropped, and joiner
// words are removed.
func TitleTokens(title string) []string {
	if main, _, found := strings.Cut(title, ":"); found {
		title = main
	}

	var tokens []string
	for _, word := range wordPattern.FindAllString(title, -1) {
		if _, skip := joiners[strings.ToLower(word)]; skip {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// SearchPhrase rejoins the title tokens into the phrase sent to the catalog
// search endpoint.
func SearchPhrase(title string) string {
	return strings.Join(TitleTokens(title), " ")
}
