package atomcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker(t *testing.T) {
	c, err := NewCompiler(CompilerOptions{})
	require.NoError(t, err)
	tracker := NewTracker()

	first := tracker.Take(c.Declarations("p-4 flex"))
	assert.Equal(t, ".p-4 {\n  padding: 1rem;\n}\n.flex {\n  display: flex;\n}\n", first)

	second := tracker.Take(c.Declarations("flex rounded p-4"))
	assert.Equal(t, ".rounded {\n  border-radius: 0.25rem;\n}\n", second)

	assert.Empty(t, tracker.Take(c.Declarations("p-4")))
	assert.True(t, tracker.Seen("rounded"))
	assert.False(t, tracker.Seen("m-2"))
	assert.Equal(t, []string{"p-4", "flex", "rounded"}, tracker.Tokens())
	assert.Equal(t, 3, tracker.Len())

	tracker.Reset()
	assert.Zero(t, tracker.Len())
	assert.NotEmpty(t, tracker.Take(c.Declarations("p-4")))
}

func TestTracker_SkipsNil(t *testing.T) {
	tracker := NewTracker()
	assert.Empty(t, tracker.Take([]*Declaration{nil}))
	assert.Zero(t, tracker.Len())
}
