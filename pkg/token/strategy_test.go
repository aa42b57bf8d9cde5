package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{input: "greedy", want: StrategyGreedy},
		{input: "GREEDY", want: StrategyGreedy},
		{input: " Optimal ", want: StrategyOptimal},
		{input: "longest", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedStrategy))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	tok, err := New(StrategyGreedy)
	require.NoError(t, err)
	assert.IsType(t, Greedy{}, tok)

	tok, err = New(StrategyOptimal)
	require.NoError(t, err)
	assert.IsType(t, Optimal{}, tok)

	_, err = New(Strategy(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedStrategy))
}

func TestStrategy_Text(t *testing.T) {
	for _, s := range Strategies() {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var parsed Strategy
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, s, parsed)
	}

	_, err := Strategy(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Strategy(42)", Strategy(42).String())
}
