package resolve

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/pname/internal/testutil"
	"github.com/leapstack-labs/pname/pkg/dictionary"
	"github.com/leapstack-labs/pname/pkg/token"
	"github.com/stretchr/testify/assert"
)

// fakeRomanizer splits a word into one lower-case element per rune and
// records the words it was asked to convert.
type fakeRomanizer struct {
	calls []string
}

func (f *fakeRomanizer) Convert(word string) []string {
	f.calls = append(f.calls, word)
	var out []string
	for _, r := range word {
		out = append(out, strings.ToLower(string(r)))
	}
	return out
}

func TestResolve_KnownTokens(t *testing.T) {
	tokens := token.Greedy{}.Tokenize(testutil.ScenarioDictionary(), "顧客管理システム")

	res := New(nil).Resolve(tokens, true)

	assert.Equal(t, []string{"customer", "client", "management", "system"}, res.Elements)
	assert.Equal(t, []string{
		"顧客=>customer, client",
		"管理=>management",
		"システム=>system",
	}, res.Mappings)
}

func TestResolve_UnknownWithoutFallback(t *testing.T) {
	dict := dictionary.New(map[string][]string{"顧客": {"customer"}})
	tokens := token.Greedy{}.Tokenize(dict, "顧客XY管理")
	romanizer := &fakeRomanizer{}

	res := New(romanizer).Resolve(tokens, false)

	assert.Equal(t, []string{"customer", "XY管理"}, res.Elements)
	assert.Equal(t, []string{"顧客=>customer", "XY管理=>(unknown: XY管理)"}, res.Mappings)
	assert.Empty(t, romanizer.calls, "romanizer must not be called when fallback is off")
}

func TestResolve_UnknownWithFallback(t *testing.T) {
	dict := dictionary.New(map[string][]string{"顧客": {"customer"}})
	tokens := token.Greedy{}.Tokenize(dict, "顧客XY")
	romanizer := &fakeRomanizer{}

	res := New(romanizer).Resolve(tokens, true)

	assert.Equal(t, []string{"customer", "x", "y"}, res.Elements)
	assert.Equal(t, []string{"顧客=>customer", "XY=>(romaji: x y)"}, res.Mappings)
	assert.Equal(t, []string{"XY"}, romanizer.calls)
}

func TestResolve_EmptyRomanizerResult(t *testing.T) {
	tokens := token.Greedy{}.Tokenize(nil, "漢字")
	empty := RomanizerFunc(func(string) []string { return nil })

	res := New(empty).Resolve(tokens, true)

	assert.Empty(t, res.Elements)
	assert.Equal(t, []string{"漢字=>(romaji: )"}, res.Mappings)
}

func TestResolve_NilRomanizerWithFallback(t *testing.T) {
	tokens := token.Greedy{}.Tokenize(nil, "XY")

	res := New(nil).Resolve(tokens, true)

	assert.Empty(t, res.Elements)
	assert.Equal(t, []string{"XY=>(romaji: )"}, res.Mappings)
}

func TestResolve_PresentKeyWithoutElements(t *testing.T) {
	dict := dictionary.New(map[string][]string{"商品": {}})
	tokens := token.Optimal{}.Tokenize(dict, "商品")

	res := New(nil).Resolve(tokens, false)

	assert.Equal(t, []string{"商品"}, res.Elements)
	assert.Equal(t, []string{"商品=>(unknown: 商品)"}, res.Mappings)
}

func TestResolve_KnownFlagWithoutElementsIsUnknown(t *testing.T) {
	tokens := []token.Token{{Word: "謎", Unknown: false}}

	res := New(nil).Resolve(tokens, false)

	assert.Equal(t, []string{"謎"}, res.Elements)
	assert.Equal(t, []string{"謎=>(unknown: 謎)"}, res.Mappings)
}

func TestResolve_NoTokens(t *testing.T) {
	res := New(nil).Resolve(nil, true)

	assert.NotNil(t, res.Elements)
	assert.NotNil(t, res.Mappings)
	assert.Empty(t, res.Elements)
	assert.Empty(t, res.Mappings)
}

func TestResolve_DoesNotAliasDictionary(t *testing.T) {
	dict := dictionary.New(map[string][]string{"顧客": {"customer", "client"}})
	tokens := token.Greedy{}.Tokenize(dict, "顧客")

	res := New(nil).Resolve(tokens, false)
	res.Elements[0] = "changed"

	assert.Equal(t, []string{"customer", "client"}, dict.Elements("顧客"))
}
