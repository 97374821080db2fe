package tools

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
	fmath "github.com/vadiminshakov/factorial/math"
)

var (
	settingsMu sync.RWMutex
	settings   = config.Default()
)

// Configure sets the output format and input limit used by the tools.
func Configure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	settingsMu.Lock()
	settings = cfg
	settingsMu.Unlock()

	return nil
}

// Settings returns the active tool configuration.
func Settings() config.Config {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// ErrInputTooLarge is returned when n exceeds the configured max_input.
var ErrInputTooLarge = errors.New("input exceeds configured limit")

// factorialTool computes n! and renders it in the configured format.
func factorialTool(args map[string]interface{}) (string, error) {
	cfg := Settings()

	n, err := argN(args, cfg)
	if err != nil {
		return "", err
	}

	v, err := fmath.Factorial(n)
	if err != nil {
		return "", errors.Wrapf(err, "factorial(%d)", n)
	}

	format := cfg.Format
	if f, ok := args["format"].(string); ok && f != "" {
		format = f
	}

	return Format(v, format, cfg.Precision)
}

// factorialDigitsTool reports how many decimal digits n! has.
func factorialDigitsTool(args map[string]interface{}) (string, error) {
	cfg := Settings()

	n, err := argN(args, cfg)
	if err != nil {
		return "", err
	}

	v, err := fmath.Factorial(n)
	if err != nil {
		return "", errors.Wrapf(err, "factorial(%d)", n)
	}

	return Format(v, config.FormatDigits, 0)
}

func argN(args map[string]interface{}, cfg config.Config) (int64, error) {
	raw, ok := args["n"]
	if !ok {
		return 0, errors.New("parameter 'n' is required")
	}

	n, err := ParseN(raw)
	if err != nil {
		return 0, err
	}

	if cfg.MaxInput != config.Unlimited && n > cfg.MaxInput {
		return 0, errors.Wrapf(ErrInputTooLarge, "n=%d, max_input=%d", n, cfg.MaxInput)
	}

	return n, nil
}

// ParseN converts a JSON-decoded or user-typed value into an integer argument.
func ParseN(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, errors.Errorf("parameter 'n' must be an integer, got %v", v)
		}
		if v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, errors.Errorf("parameter 'n' is out of range: %v", v)
		}
		return int64(v), nil
	case json.Number:
		return ParseN(v.String())
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, errors.New("parameter 'n' must be a non-empty string")
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "parameter 'n' must be an integer, got %q", s)
		}
		return n, nil
	default:
		return 0, errors.Errorf("parameter 'n' has unsupported type %T", raw)
	}
}
