package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph(t *testing.T) {
	l := chainLayout()

	require.NotNil(t, l.Graph)
	require.Len(t, l.Graph.Nodes, 3)

	// One edge pair per doored interior wall, none for boundary walls.
	assert.Len(t, l.Graph.Neighbors(0), 1)
	assert.Len(t, l.Graph.Neighbors(1), 2)
	assert.Len(t, l.Graph.Neighbors(2), 1)

	assert.Equal(t, Connection{To: 1, Via: 0}, l.Graph.Neighbors(0)[0])
	assert.Equal(t, Connection{To: 1, Via: 1}, l.Graph.Neighbors(2)[0])
}

func TestReachable(t *testing.T) {
	l := chainLayout()

	assert.True(t, l.Graph.Reachable(l, 0))
	assert.True(t, l.Graph.Reachable(l, 2), "start choice does not matter in a connected layout")

	// Closing the far door strands room 2.
	l.Doors[1].Enabled = false
	assert.False(t, l.Graph.Reachable(l, 0))

	// Disabling the stranded room restores full coverage of what is left.
	l.Rooms[2].Enabled = false
	assert.True(t, l.Graph.Reachable(l, 0))
}

func TestReachable_DisabledStart(t *testing.T) {
	l := chainLayout()
	l.Rooms[0].Enabled = false

	assert.False(t, l.Graph.Reachable(l, 0))
	assert.False(t, l.Graph.Reachable(l, NoRoom))
}

func TestReachable_EdgeNeedsEnabledDoor(t *testing.T) {
	l := chainLayout()

	// A disabled door blocks traversal even between enabled rooms.
	l.Doors[0].Enabled = false
	assert.False(t, l.Graph.Reachable(l, 0))
	assert.False(t, l.Graph.Reachable(l, 1))
}

func TestAddEdge_ParallelEdgesAccumulate(t *testing.T) {
	g := NewGraph(2)
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 1, 1)

	assert.Len(t, g.Neighbors(0), 2, "two doors between the same rooms are two edges")
}
