package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Conventions(t *testing.T) {
	elements := []string{"customer", "client", "management", "system"}

	tests := []struct {
		convention Convention
		expected   string
	}{
		{LowerCamel, "customerClientManagementSystem"},
		{UpperCamel, "CustomerClientManagementSystem"},
		{LowerSnake, "customer_client_management_system"},
		{UpperSnake, "CUSTOMER_CLIENT_MANAGEMENT_SYSTEM"},
		{LowerKebab, "customer-client-management-system"},
		{UpperKebab, "CUSTOMER-CLIENT-MANAGEMENT-SYSTEM"},
	}

	for _, tt := range tests {
		t.Run(tt.convention.String(), func(t *testing.T) {
			result, err := Format(elements, tt.convention)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormat_CaseNormalization(t *testing.T) {
	tests := []struct {
		name       string
		elements   []string
		convention Convention
		expected   string
	}{
		{
			name:       "acronym after first element loses inner capitals",
			elements:   []string{"customer", "ABC"},
			convention: LowerCamel,
			expected:   "customerAbc",
		},
		{
			name:       "leading acronym fully lowered",
			elements:   []string{"ABC", "Code"},
			convention: LowerCamel,
			expected:   "abcCode",
		},
		{
			name:       "pascal lowers then capitalizes",
			elements:   []string{"iPhone", "APP"},
			convention: UpperCamel,
			expected:   "IphoneApp",
		},
		{
			name:       "snake lowers the whole string",
			elements:   []string{"Customer", "ID"},
			convention: LowerSnake,
			expected:   "customer_id",
		},
		{
			name:       "upper kebab uppers the whole string",
			elements:   []string{"Customer", "id"},
			convention: UpperKebab,
			expected:   "CUSTOMER-ID",
		},
		{
			name:       "embedded separators are kept",
			elements:   []string{"customer_management", "crm"},
			convention: UpperCamel,
			expected:   "Customer_managementCrm",
		},
		{
			name:       "non latin element in camel",
			elements:   []string{"customer", "XY管理"},
			convention: LowerCamel,
			expected:   "customerXy管理",
		},
		{
			name:       "empty element in camel contributes nothing",
			elements:   []string{"customer", "", "name"},
			convention: LowerCamel,
			expected:   "customerName",
		},
		{
			name:       "empty element in snake leaves empty slot",
			elements:   []string{"customer", "", "name"},
			convention: LowerSnake,
			expected:   "customer__name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.elements, tt.convention)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormat_EmptyElements(t *testing.T) {
	for _, c := range Conventions() {
		result, err := Format(nil, c)
		require.NoError(t, err)
		assert.Empty(t, result, c.String())
	}
}

func TestFormat_Pure(t *testing.T) {
	elements := []string{"Order", "DETAIL", "number"}
	for _, c := range Conventions() {
		first := MustFormat(elements, c)
		second := MustFormat(elements, c)
		assert.Equal(t, first, second, c.String())
	}
	assert.Equal(t, []string{"Order", "DETAIL", "number"}, elements)
}

func TestFormat_UnsupportedConvention(t *testing.T) {
	_, err := Format([]string{"a"}, Convention(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedConvention))

	assert.Panics(t, func() { MustFormat([]string{"a"}, Convention(99)) })
}

func TestParseConvention(t *testing.T) {
	tests := []struct {
		input    string
		expected Convention
	}{
		{"LOWER_CAMEL", LowerCamel},
		{"lower-camel", LowerCamel},
		{"camel", LowerCamel},
		{"CAMEL", LowerCamel},
		{"lowerCamel", LowerCamel},
		{"UPPER_CAMEL", UpperCamel},
		{"pascal", UpperCamel},
		{"PASCAL", UpperCamel},
		{"snake", LowerSnake},
		{"lower_snake", LowerSnake},
		{"Upper Snake", UpperSnake},
		{"upperSnake", UpperSnake},
		{"kebab", LowerKebab},
		{"LOWER_KEBAB", LowerKebab},
		{"upper-kebab", UpperKebab},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseConvention(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParseConvention_Invalid(t *testing.T) {
	for _, input := range []string{"", "title", "dot.case", "camelsnake"} {
		_, err := ParseConvention(input)
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, ErrUnsupportedConvention))
	}
}

func TestConvention_Text(t *testing.T) {
	for _, c := range Conventions() {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var parsed Convention
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, c, parsed)
	}

	_, err := Convention(0).MarshalText()
	assert.Error(t, err)
}
