package tools

import (
	"math/big"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
)

// Format renders v in the given output format.
// Scientific notation keeps precision significant digits and falls back to
// the plain decimal form when the value is short enough.
func Format(v *big.Int, format string, precision int) (string, error) {
	if v == nil {
		return "", errors.New("nothing to format")
	}

	switch format {
	case config.FormatDecimal, "":
		return v.String(), nil

	case config.FormatDigits:
		return strconv.Itoa(decimalDigits(v)), nil

	case config.FormatScientific:
		if precision <= 0 {
			precision = config.DefaultPrecision
		}
		if decimalDigits(v) <= precision {
			return v.String(), nil
		}
		return new(big.Float).SetInt(v).Text('e', precision-1), nil

	default:
		return "", errors.Errorf("unknown format %q", format)
	}
}

func decimalDigits(v *big.Int) int {
	s := v.String()
	if len(s) > 0 && s[0] == '-' {
		return len(s) - 1
	}
	return len(s)
}
