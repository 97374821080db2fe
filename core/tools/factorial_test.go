package tools

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/core/entity"
	fmath "github.com/vadiminshakov/factorial/math"
)

func entityCall(name string, n interface{}) entity.ToolCall {
	return entity.ToolCall{Name: name, Args: map[string]interface{}{"n": n}}
}

func withSettings(t *testing.T, cfg config.Config) {
	prev := Settings()
	require.NoError(t, Configure(cfg))
	t.Cleanup(func() {
		require.NoError(t, Configure(prev))
	})
}

func TestFactorialTool_Positive(t *testing.T) {
	withSettings(t, config.Config{Format: config.FormatDecimal})

	tests := []struct {
		name string
		n    interface{}
		want string
	}{
		{"Zero", 0, "1"},
		{"One", int64(1), "1"},
		{"Five", 5, "120"},
		{"Ten as JSON number", float64(10), "3628800"},
		{"String", " 6 ", "720"},
		{"json.Number", json.Number("4"), "24"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := factorialTool(map[string]interface{}{"n": tc.n})
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFactorialTool_Negative(t *testing.T) {
	withSettings(t, config.Config{MaxInput: 50})

	invalid := []struct {
		name string
		args map[string]interface{}
	}{
		{"Missing n", map[string]interface{}{}},
		{"Fractional", map[string]interface{}{"n": 2.5}},
		{"Empty string", map[string]interface{}{"n": ""}},
		{"Alphabetic", map[string]interface{}{"n": "abc"}},
		{"Unsupported type", map[string]interface{}{"n": []int{1}}},
		{"Over limit", map[string]interface{}{"n": 51}},
		{"Unknown format", map[string]interface{}{"n": 3, "format": "roman"}},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := factorialTool(tc.args)
			require.Error(t, err)
		})
	}
}

func TestFactorialTool_InvalidArgumentSurvivesWrapping(t *testing.T) {
	_, err := factorialTool(map[string]interface{}{"n": -3})
	require.Error(t, err)
	require.True(t, errors.Is(err, fmath.ErrInvalidArgument))

	var argErr *fmath.InvalidArgumentError
	require.True(t, errors.As(err, &argErr))
	require.Equal(t, int64(-3), argErr.N)
}

func TestFactorialTool_Limit(t *testing.T) {
	withSettings(t, config.Config{MaxInput: 10})

	_, err := factorialTool(map[string]interface{}{"n": 11})
	require.True(t, errors.Is(err, ErrInputTooLarge))

	got, err := factorialTool(map[string]interface{}{"n": 10})
	require.NoError(t, err)
	require.Equal(t, "3628800", got)

	withSettings(t, config.Config{MaxInput: config.Unlimited})
	got, err = factorialDigitsTool(map[string]interface{}{"n": 1000})
	require.NoError(t, err)
	require.Equal(t, "2568", got)
}

func TestFactorialTool_FormatOverride(t *testing.T) {
	withSettings(t, config.Config{Format: config.FormatScientific, Precision: 3})

	got, err := factorialTool(map[string]interface{}{"n": 20})
	require.NoError(t, err)
	require.Equal(t, "2.43e+18", got)

	got, err = factorialTool(map[string]interface{}{"n": 20, "format": config.FormatDecimal})
	require.NoError(t, err)
	require.Equal(t, "2432902008176640000", got)
}

func TestFactorialDigitsTool(t *testing.T) {
	got, err := factorialDigitsTool(map[string]interface{}{"n": 100})
	require.NoError(t, err)
	require.Equal(t, "158", got)

	_, err = factorialDigitsTool(map[string]interface{}{"n": -1})
	require.True(t, errors.Is(err, fmath.ErrInvalidArgument))
}

func TestFormat(t *testing.T) {
	v, ok := new(big.Int).SetString("15511210043330985984000000", 10)
	require.True(t, ok)

	tests := []struct {
		name      string
		format    string
		precision int
		want      string
		wantError bool
	}{
		{"Decimal", config.FormatDecimal, 0, "15511210043330985984000000", false},
		{"Empty means decimal", "", 0, "15511210043330985984000000", false},
		{"Digits", config.FormatDigits, 0, "26", false},
		{"Scientific", config.FormatScientific, 5, "1.5511e+25", false},
		{"Scientific wide enough", config.FormatScientific, 30, "15511210043330985984000000", false},
		{"Unknown", "roman", 0, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Format(v, tc.format, tc.precision)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := Format(nil, config.FormatDecimal, 0)
	require.Error(t, err)
}

func TestParseN(t *testing.T) {
	n, err := ParseN(int32(7))
	require.NoError(t, err)
	require.Equal(t, int64(7), n)

	_, err = ParseN(1e19)
	require.Error(t, err)

	n, err = ParseN("-4")
	require.NoError(t, err)
	require.Equal(t, int64(-4), n)
}
