package referral

import (
	"regexp"
	"testing"

	"affiliate/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var urlSafe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator(8)

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, code, 8)
		assert.Regexp(t, urlSafe, code)
		seen[code] = struct{}{}
	}

	assert.Len(t, seen, 1000)
}

func TestNewGenerator_DefaultLength(t *testing.T) {
	code, err := NewGenerator(0).Generate()
	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)
}

func TestProvideGenerator(t *testing.T) {
	gen := ProvideGenerator(&config.Config{Referral: &config.ReferralConfig{CodeLength: 12}})
	code, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, code, 12)

	code, err = ProvideGenerator(&config.Config{}).Generate()
	require.NoError(t, err)
	assert.Len(t, code, DefaultLength)
}
