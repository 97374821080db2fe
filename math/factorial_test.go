package math

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	// Test cases for factorial function
	testCases := []struct {
		input    int64
		expected string
	}{
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{3, "6"},
		{4, "24"},
		{5, "120"},
		{10, "3628800"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"},
	}

	for _, tc := range testCases {
		result, err := Factorial(tc.input)
		require.NoError(t, err)
		require.Equal(t, tc.expected, result.String(), "Factorial(%d)", tc.input)
	}
}

func TestFactorialNegative(t *testing.T) {
	for _, n := range []int64{-1, -2, -100, -9223372036854775808} {
		result, err := Factorial(n)
		require.Nil(t, result)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidArgument))

		var argErr *InvalidArgumentError
		require.True(t, errors.As(err, &argErr))
		require.Equal(t, n, argErr.N)
		require.Contains(t, err.Error(), "not defined for negative numbers")
	}
}

func TestFactorialRecurrence(t *testing.T) {
	prev, err := Factorial(1)
	require.NoError(t, err)

	for n := int64(2); n <= 200; n++ {
		cur, err := Factorial(n)
		require.NoError(t, err)

		want := new(big.Int).Mul(big.NewInt(n), prev)
		require.Zero(t, want.Cmp(cur), "Factorial(%d) != %d * Factorial(%d)", n, n, n-1)
		prev = cur
	}
}

func TestFactorialIsRepeatable(t *testing.T) {
	first, err := Factorial(30)
	require.NoError(t, err)

	// mutating a result must not leak into later calls
	first.SetInt64(0)

	second, err := Factorial(30)
	require.NoError(t, err)
	third, err := Factorial(30)
	require.NoError(t, err)
	require.Equal(t, "265252859812191058636308480000000", second.String())
	require.Zero(t, second.Cmp(third))
}

func TestFactorialConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := Factorial(10)
			if err != nil || v.Int64() != 3628800 {
				t.Errorf("Factorial(10) = %v, %v", v, err)
			}
		}()
	}
	wg.Wait()
}

func TestMustFactorialPanics(t *testing.T) {
	require.Equal(t, int64(120), MustFactorial(5).Int64())

	// Test that factorial of negative number panics
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustFactorial(-1) should panic, but it didn't")
		}
	}()
	MustFactorial(-1)
}
