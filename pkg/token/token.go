// Package token splits a logical name into dictionary-known and unknown spans.
//
// Two strategies are provided. Greedy takes the longest dictionary match at
// each position in a single left-to-right pass. Optimal searches all
// segmentations with dynamic programming and keeps the one with the least
// unknown content.
//
// Both strategies guarantee that concatenating the Word of every returned
// token reproduces the input exactly. Offsets are counted in runes, so a
// token never splits a UTF-8 sequence.
package token

import (
	"strings"

	"github.com/leapstack-labs/pname/pkg/dictionary"
)

// Token is a contiguous span of a logical name.
type Token struct {
	Word     string   // the exact substring of the input
	Elements []string // dictionary elements; empty for unknown tokens
	Unknown  bool     // true when Word is not a known dictionary word
	Span     Span
}

// Known returns true if the token was matched against the dictionary.
func (t Token) Known() bool {
	return !t.Unknown && len(t.Elements) > 0
}

// Tokenizer segments text against a dictionary.
// Implementations never fail: text without matches yields unknown tokens.
type Tokenizer interface {
	Tokenize(dict *dictionary.Dictionary, text string) []Token
}

// Join concatenates the words of tokens, reconstructing the input text.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Word)
	}
	return b.String()
}

// UnknownLen returns the total rune length of unknown tokens.
func UnknownLen(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		if !t.Known() {
			n += t.Span.Len()
		}
	}
	return n
}

func knownToken(runes []rune, start, end int, elements []string) Token {
	return Token{
		Word:     string(runes[start:end]),
		Elements: elements,
		Span:     Span{Start: start, End: end},
	}
}

func unknownToken(runes []rune, start, end int) Token {
	return Token{
		Word:     string(runes[start:end]),
		Elements: []string{},
		Unknown:  true,
		Span:     Span{Start: start, End: end},
	}
}
