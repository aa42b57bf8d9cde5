package token

import "github.com/leapstack-labs/pname/pkg/dictionary"

// Greedy is the longest-prefix-match tokenizer.
//
// At each position it emits the longest known dictionary word starting there.
// Where nothing matches it collects characters into a single unknown token
// until a position where some known word starts, or the end of the text.
type Greedy struct{}

// Tokenize implements Tokenizer.
func (Greedy) Tokenize(dict *dictionary.Dictionary, text string) []Token {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var tokens []Token
	pos := 0
	for pos < len(runes) {
		if n, elements := dict.LongestPrefix(runes, pos); n > 0 {
			tokens = append(tokens, knownToken(runes, pos, pos+n, elements))
			pos += n
			continue
		}

		start := pos
		pos++
		for pos < len(runes) && !dict.HasPrefixAt(runes, pos) {
			pos++
		}
		tokens = append(tokens, unknownToken(runes, start, pos))
	}
	return tokens
}
