package dungeon_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-api/internal/dungeon"
)

func TestRender(t *testing.T) {
	l, err := dungeon.Generate(7, baseConfig())
	require.NoError(t, err)

	out := l.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, l.Config.Depth)
	for _, line := range lines {
		assert.Len(t, line, l.Config.Width)
	}

	assert.Contains(t, out, "#")
	assert.Contains(t, out, ".")

	// Corners belong to two boundary walls each.
	assert.Equal(t, byte('#'), lines[0][0])
	assert.Equal(t, byte('#'), lines[len(lines)-1][len(lines[0])-1])
}

func TestRender_Deterministic(t *testing.T) {
	a, err := dungeon.Generate(3, baseConfig())
	require.NoError(t, err)
	b, err := dungeon.Generate(3, baseConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Render(), b.Render())
}
