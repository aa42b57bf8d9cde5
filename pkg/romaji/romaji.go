// Package romaji converts Japanese text into Hepburn romanization.
//
// The Romanizer segments a word morphologically with kagome and the IPA
// dictionary, then romanizes each segment's katakana reading. Segments
// without a reading keep their surface text, with any kana in it
// romanized. Full-width Latin letters and digits are folded to ASCII.
package romaji

import (
	"sync"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// analyzer is shared by every Romanizer. The IPA dictionary is large, so
// it is loaded on first use.
var analyzer = sync.OnceValues(func() (*tokenizer.Tokenizer, error) {
	return tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
})

// Romanizer implements the fallback conversion used for words that are not
// in the dictionary. The zero value is ready to use and safe for
// concurrent use.
type Romanizer struct{}

// New returns a Romanizer.
func New() Romanizer {
	return Romanizer{}
}

// Convert returns one element per morpheme in word. Whitespace and
// punctuation are dropped. An empty word yields an empty list.
func (Romanizer) Convert(word string) []string {
	if word == "" {
		return []string{}
	}

	// Fold half-width katakana and full-width ASCII, then compose the
	// voiced marks that folding leaves detached.
	text := norm.NFC.String(width.Fold.String(word))

	t, err := analyzer()
	if err != nil {
		return Segments(text)
	}

	out := []string{}
	for _, tok := range t.Tokenize(text) {
		if s := romanize(tok); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func romanize(tok tokenizer.Token) string {
	surface := tok.Surface
	if !hasWordRune(surface) {
		return ""
	}
	if !hasJapanese(surface) {
		return surface
	}
	if reading, ok := tok.Reading(); ok && reading != "" && reading != "*" {
		return Kana(reading)
	}
	return Kana(surface)
}

// Segments splits text into runs of kana, Han characters and everything
// else without a morphological dictionary. Kana runs are romanized and
// the other runs are returned as-is. Whitespace and punctuation separate
// runs and are dropped.
func Segments(text string) []string {
	out := []string{}
	var run []rune
	kind := runNone

	flush := func() {
		if len(run) == 0 {
			return
		}
		s := string(run)
		if kind == runKana {
			s = Kana(s)
		}
		if s != "" {
			out = append(out, s)
		}
		run = run[:0]
	}

	for _, r := range text {
		k := classify(r)
		if k == runNone {
			flush()
			kind = runNone
			continue
		}
		if k != kind {
			flush()
			kind = k
		}
		run = append(run, r)
	}
	flush()
	return out
}

type runKind int

const (
	runNone runKind = iota
	runKana
	runHan
	runOther
)

func classify(r rune) runKind {
	switch {
	case isKana(r):
		return runKana
	case unicode.Is(unicode.Han, r):
		return runHan
	case unicode.IsLetter(r), unicode.IsDigit(r):
		return runOther
	}
	return runNone
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if classify(r) != runNone {
			return true
		}
	}
	return false
}

func hasJapanese(s string) bool {
	for _, r := range s {
		if k := classify(r); k == runKana || k == runHan {
			return true
		}
	}
	return false
}
