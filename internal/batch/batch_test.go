package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/leapstack-labs/pname/internal/testutil"
	"github.com/leapstack-labs/pname/pkg/format"
	"github.com/leapstack-labs/pname/pkg/pname"
	"github.com/leapstack-labs/pname/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator() *pname.Generator {
	return pname.New(pname.WithDictionary(testutil.SampleDictionary()))
}

func TestReadNames(t *testing.T) {
	input := "\ufeff顧客管理\n\n  注文明細  \r\n\t\n商品コード"

	names, err := ReadNames(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"顧客管理", "注文明細", "商品コード"}, names)

	names, err = ReadNames(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRunner_PreservesOrder(t *testing.T) {
	cases := []struct{ in, want string }{
		{"顧客番号", "customerClientNumberNo"},
		{"注文番号", "orderNumberNo"},
		{"商品番号", "productItemNumberNo"},
		{"売上番号", "salesRevenueNumberNo"},
	}
	var names []string
	for i := range 200 {
		names = append(names, cases[i%len(cases)].in)
	}

	r := New(Config{
		Generator: newGenerator(),
		Options:   pname.DefaultOptions(),
		Workers:   8,
		Logger:    testutil.NewTestLogger(t),
	})

	report, err := r.Run(context.Background(), names)
	require.NoError(t, err)
	require.Len(t, report.Results, len(names))
	assert.NotEmpty(t, report.RunID)

	for i, res := range report.Results {
		assert.Equal(t, names[i], res.LogicalName)
		assert.Equal(t, cases[i%len(cases)].want, res.PhysicalName, "result %d", i)
	}
}

func TestRunner_Options(t *testing.T) {
	tests := []struct {
		name string
		opts pname.Options
		in   string
		want string
	}{
		{
			name: "greedy upper snake",
			opts: pname.Options{Strategy: token.StrategyGreedy, Convention: format.UpperSnake},
			in:   "注文明細",
			want: "ORDER_DETAIL_LINE",
		},
		{
			name: "optimal kebab",
			opts: pname.Options{Strategy: token.StrategyOptimal, Convention: format.LowerKebab},
			in:   "商品管理システム",
			want: "product_management-system",
		},
		{
			name: "fallback romanizes unknown kana",
			opts: pname.Options{Strategy: token.StrategyOptimal, Convention: format.UpperCamel, Fallback: true},
			in:   "顧客ポイント",
			want: "CustomerClientPointo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Config{Generator: newGenerator(), Options: tt.opts, Workers: 2})
			report, err := r.Run(context.Background(), []string{tt.in})
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Results[0].PhysicalName)
		})
	}
}

func TestRunner_InvalidOptions(t *testing.T) {
	r := New(Config{Generator: newGenerator(), Options: pname.Options{}})

	_, err := r.Run(context.Background(), []string{"顧客", "注文"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pname.ErrUnsupportedOption))
	assert.Contains(t, err.Error(), "line ")
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(Config{Generator: newGenerator(), Options: pname.DefaultOptions(), Workers: 1})
	_, err := r.Run(ctx, []string{"顧客"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_Defaults(t *testing.T) {
	r := New(Config{Options: pname.DefaultOptions()})
	assert.Positive(t, r.workers)

	report, err := r.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Results)
}

func TestReport_Unknown(t *testing.T) {
	r := New(Config{Generator: newGenerator(), Options: pname.DefaultOptions()})

	report, err := r.Run(context.Background(), []string{"顧客管理", "顧客XY", "謎"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Unknown())
}

func TestRunner_LogsRunID(t *testing.T) {
	logger, buf := testutil.NewCaptureLogger()
	r := New(Config{Generator: newGenerator(), Options: pname.DefaultOptions(), Logger: logger})

	report, err := r.Run(context.Background(), []string{"顧客"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), fmt.Sprintf("run_id=%s", report.RunID))
	assert.Contains(t, buf.String(), "batch complete")
}
