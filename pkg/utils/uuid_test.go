package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, idSize)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(characters, r))
		}
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}
