package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountKey_RoundTrip(t *testing.T) {
	key := AccountKey(123456789012345678, 987654321098765432)
	assert.Equal(t, "123456789012345678_987654321098765432", key)

	guildID, userID, err := ParseAccountKey(key)
	require.NoError(t, err)
	assert.Equal(t, int64(123456789012345678), guildID)
	assert.Equal(t, int64(987654321098765432), userID)
}

func TestParseAccountKey_Malformed(t *testing.T) {
	for _, key := range []string{"", "123", "abc_1", "1_abc"} {
		_, _, err := ParseAccountKey(key)
		assert.Error(t, err, key)
	}
}
