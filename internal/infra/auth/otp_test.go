package auth

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGenerator_SixDigits(t *testing.T) {
	gen := NewOTPGenerator()

	for range 200 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestOTPGenerator_NotConstant(t *testing.T) {
	gen := NewOTPGenerator()

	seen := make(map[string]struct{})
	for range 50 {
		code, err := gen.Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}

	// 50 draws from 900000 values collapsing to one would mean a broken
	// random source.
	assert.Greater(t, len(seen), 1)
}
