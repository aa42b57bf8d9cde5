package romaji

import "strings"

const (
	sokuon     = 'っ'
	longVowel  = 'ー'
	katakanaLo = 'ァ'
	katakanaHi = 'ヶ'
	// distance between a katakana and its hiragana counterpart
	kanaShift = 'ァ' - 'ぁ'
)

// syllables maps a single hiragana to its Hepburn spelling.
var syllables = map[rune]string{
	'あ': "a", 'い': "i", 'う': "u", 'え': "e", 'お': "o",
	'か': "ka", 'き': "ki", 'く': "ku", 'け': "ke", 'こ': "ko",
	'が': "ga", 'ぎ': "gi", 'ぐ': "gu", 'げ': "ge", 'ご': "go",
	'さ': "sa", 'し': "shi", 'す': "su", 'せ': "se", 'そ': "so",
	'ざ': "za", 'じ': "ji", 'ず': "zu", 'ぜ': "ze", 'ぞ': "zo",
	'た': "ta", 'ち': "chi", 'つ': "tsu", 'て': "te", 'と': "to",
	'だ': "da", 'ぢ': "ji", 'づ': "zu", 'で': "de", 'ど': "do",
	'な': "na", 'に': "ni", 'ぬ': "nu", 'ね': "ne", 'の': "no",
	'は': "ha", 'ひ': "hi", 'ふ': "fu", 'へ': "he", 'ほ': "ho",
	'ば': "ba", 'び': "bi", 'ぶ': "bu", 'べ': "be", 'ぼ': "bo",
	'ぱ': "pa", 'ぴ': "pi", 'ぷ': "pu", 'ぺ': "pe", 'ぽ': "po",
	'ま': "ma", 'み': "mi", 'む': "mu", 'め': "me", 'も': "mo",
	'や': "ya", 'ゆ': "yu", 'よ': "yo",
	'ら': "ra", 'り': "ri", 'る': "ru", 'れ': "re", 'ろ': "ro",
	'わ': "wa", 'ゐ': "i", 'ゑ': "e", 'を': "o", 'ん': "n",
	'ゔ': "vu",
	'ぁ': "a", 'ぃ': "i", 'ぅ': "u", 'ぇ': "e", 'ぉ': "o",
	'ゃ': "ya", 'ゅ': "yu", 'ょ': "yo", 'ゎ': "wa",
	'ゕ': "ka", 'ゖ': "ke",
}

// smallY holds the vowel of each small ya/yu/yo.
var smallY = map[rune]byte{'ゃ': 'a', 'ゅ': 'u', 'ょ': 'o'}

// smallVowel holds the vowel of each small a/i/u/e/o.
var smallVowel = map[rune]byte{'ぁ': 'a', 'ぃ': 'i', 'ぅ': 'u', 'ぇ': 'e', 'ぉ': 'o'}

// toHiragana maps katakana onto hiragana; other runes are returned unchanged.
func toHiragana(r rune) rune {
	if r >= katakanaLo && r <= katakanaHi {
		return r - kanaShift
	}
	return r
}

func isKana(r rune) bool {
	switch {
	case r >= 'ぁ' && r <= 'ゖ':
		return true
	case r >= katakanaLo && r <= katakanaHi:
		return true
	case r == longVowel:
		return true
	}
	return false
}

func isVowel(b byte) bool {
	return b == 'a' || b == 'i' || b == 'u' || b == 'e' || b == 'o'
}

// Kana converts a string of hiragana and katakana to lower-case Hepburn.
// Runes that are not kana are copied through unchanged.
func Kana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = toHiragana(r)
	}

	var b strings.Builder
	b.Grow(len(runes) * 2)

	double := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch r {
		case sokuon:
			double = true
			continue
		case longVowel:
			if out := b.String(); out != "" && isVowel(out[len(out)-1]) {
				b.WriteByte(out[len(out)-1])
			}
			double = false
			continue
		}

		syl, ok := syllables[r]
		if !ok {
			b.WriteRune(r)
			double = false
			continue
		}

		if i+1 < len(runes) {
			if combined, ok := combine(r, syl, runes[i+1]); ok {
				syl = combined
				i++
			}
		}

		if double {
			b.WriteString(geminate(syl))
			double = false
		}
		b.WriteString(syl)
	}
	return b.String()
}

// combine joins a syllable with a following small kana, e.g. きょ -> kyo
// or ふぁ -> fa. It reports false when the pair is not a digraph.
func combine(r rune, syl string, next rune) (string, bool) {
	if v, ok := smallY[next]; ok {
		if len(syl) < 2 || syl[len(syl)-1] != 'i' || r == 'い' {
			return "", false
		}
		stem := syl[:len(syl)-1]
		switch stem {
		case "sh", "ch", "j":
			return stem + string(v), true
		}
		return stem + "y" + string(v), true
	}

	v, ok := smallVowel[next]
	if !ok {
		return "", false
	}
	switch r {
	case 'ふ':
		return "f" + string(v), true
	case 'ゔ':
		return "v" + string(v), true
	case 'う':
		if v != 'u' {
			return "w" + string(v), true
		}
	case 'て', 'で':
		if v == 'i' || v == 'u' {
			return syl[:1] + string(v), true
		}
	case 'し', 'ち', 'じ':
		if v == 'e' {
			return syl[:len(syl)-1] + "e", true
		}
	case 'つ':
		if v != 'u' {
			return "ts" + string(v), true
		}
	}
	return "", false
}

// geminate returns the consonant doubled by a preceding sokuon.
func geminate(syl string) string {
	switch {
	case syl == "" || isVowel(syl[0]):
		return ""
	case strings.HasPrefix(syl, "ch"):
		return "t"
	}
	return syl[:1]
}
