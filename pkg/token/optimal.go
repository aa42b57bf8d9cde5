package token

import "github.com/leapstack-labs/pname/pkg/dictionary"

// Optimal is the dynamic-programming tokenizer.
//
// Among all segmentations of the text it returns the one that ranks first
// under, in order:
//
//  1. smallest total unknown length (in runes)
//  2. fewest tokens
//  3. most dictionary-matched tokens
//  4. fewest unknown tokens
//
// The table is filled bottom-up from the end of the text, so long inputs do
// not recurse. Work is O(n²) candidate evaluations.
type Optimal struct{}

// score holds the additive cost of a segmentation suffix.
type score struct {
	unknownLen    int
	tokenCount    int
	unknownTokens int
}

func (s score) knownTokens() int {
	return s.tokenCount - s.unknownTokens
}

// better reports whether s ranks strictly before o.
func (s score) better(o score) bool {
	if s.unknownLen != o.unknownLen {
		return s.unknownLen < o.unknownLen
	}
	if s.tokenCount != o.tokenCount {
		return s.tokenCount < o.tokenCount
	}
	if s.knownTokens() != o.knownTokens() {
		return s.knownTokens() > o.knownTokens()
	}
	return s.unknownTokens < o.unknownTokens
}

// Tokenize implements Tokenizer.
func (Optimal) Tokenize(dict *dictionary.Dictionary, text string) []Token {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	n := len(runes)

	best := make([]score, n+1) // best[n] is the empty suffix
	next := make([]int, n+1)
	chosen := make([][]string, n+1) // elements of the first token, nil if unknown

	// matched[end] holds elements of the known word runes[start:end] for the
	// current start; touched tracks which entries to clear.
	matched := make([][]string, n+1)
	touched := make([]int, 0, dict.MaxWordLen())

	for start := n - 1; start >= 0; start-- {
		for _, end := range touched {
			matched[end] = nil
		}
		touched = touched[:0]
		dict.WalkPrefixes(runes, start, func(length int, elements []string) bool {
			matched[start+length] = elements
			touched = append(touched, start+length)
			return true
		})

		first := true
		for end := start + 1; end <= n; end++ {
			cand := best[end]
			cand.tokenCount++
			if matched[end] == nil {
				cand.unknownLen += end - start
				cand.unknownTokens++
			}
			if first || cand.better(best[start]) {
				best[start] = cand
				next[start] = end
				chosen[start] = matched[end]
				first = false
			}
		}
	}

	tokens := make([]Token, 0, best[0].tokenCount)
	for pos := 0; pos < n; pos = next[pos] {
		if elements := chosen[pos]; elements != nil {
			tokens = append(tokens, knownToken(runes, pos, next[pos], elements))
		} else {
			tokens = append(tokens, unknownToken(runes, pos, next[pos]))
		}
	}
	return tokens
}
