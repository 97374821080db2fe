package math

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidArgument is matched by every error Factorial returns.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports an input outside the factorial domain.
type InvalidArgumentError struct {
	N int64
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("factorial is not defined for negative numbers (n=%d)", e.N)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Factorial calculates n! for a non-negative integer.
// Negative input returns an *InvalidArgumentError and a nil result.
// The returned value is never shared between calls.
func Factorial(n int64) (*big.Int, error) {
	if n < 0 {
		return nil, &InvalidArgumentError{N: n}
	}
	if n == 0 || n == 1 {
		return big.NewInt(1), nil
	}

	result := big.NewInt(1)
	factor := new(big.Int)
	for i := int64(2); i <= n; i++ {
		result.Mul(result, factor.SetInt64(i))
	}

	return result, nil
}

// MustFactorial is like Factorial but panics on negative input.
func MustFactorial(n int64) *big.Int {
	v, err := Factorial(n)
	if err != nil {
		panic(err)
	}
	return v
}
