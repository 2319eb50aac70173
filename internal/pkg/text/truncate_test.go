package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
	assert.Equal(t, "abcdef", Truncate("abcdef", 0))
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "市场风险", Snippet("市场风险提示", 4))
	assert.Equal(t, "short", Snippet("short", 500))
}
