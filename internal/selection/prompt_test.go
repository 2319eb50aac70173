package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptSubstitutesCount(t *testing.T) {
	p := BuildPrompt(5)
	assert.Contains(t, p, "精选不超过 5 只短线个股")
	assert.Contains(t, p, "入选代码：")
}

func TestBuildPromptDeterministic(t *testing.T) {
	assert.Equal(t, BuildPrompt(10), BuildPrompt(10))
	assert.NotEqual(t, BuildPrompt(3), BuildPrompt(7))
}
