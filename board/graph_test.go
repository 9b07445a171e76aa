package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDualGraphFreshHasNoScoringComponent(t *testing.T) {
	dg := newDualGraph(9)
	assert.Equal(t, 0, dg.score())
}

// A freshly built dual graph for a width-W board is itself one connected
// component of 4*(W-1)^2 nodes. For the smallest legal width, 4, that
// component has exactly 4*3*3 = 36 nodes, comfortably over the threshold;
// this test isolates the boundary case by cutting a graph down to exactly
// one isolated 4-node unit.
func TestScoreThresholdExcludesExactlyFourNodes(t *testing.T) {
	dg := newDualGraph(9)
	// Isolate the single unit at (0,0) from the rest of the graph by
	// cutting its two inter-unit edges; its 4 intra-unit nodes remain
	// wired to each other, forming an isolated 4-node component.
	dg.removeEdge(0, 0, sideE, 1, 0, sideW)
	dg.removeEdge(0, 0, sideS, 0, 1, sideN)

	found := false
	for _, comp := range componentsOf(dg) {
		if len(comp) == 4 {
			found = true
		}
	}
	assert.True(t, found, "expected an isolated 4-node component")
	// A component of exactly 4 must not contribute to score.
	scoreBefore := dg.score()

	// Isolate a second unit identically elsewhere so we can confirm score
	// doesn't count either of the two 4-node islands.
	dg.removeEdge(6, 7, sideE, 7, 7, sideW)
	dg.removeEdge(7, 6, sideS, 7, 7, sideN)
	scoreAfter := dg.score()
	assert.Equal(t, scoreBefore, scoreAfter)
}

func TestRemoveEdgePanicsOnMissingEdge(t *testing.T) {
	dg := newDualGraph(9)
	dg.removeEdge(0, 0, sideN, 0, 0, sideE)
	assert.Panics(t, func() { dg.removeEdge(0, 0, sideN, 0, 0, sideE) })
}

func TestCutSegmentDiagonalLeavesOppositeDiamondEdges(t *testing.T) {
	dg := newDualGraph(9)
	// (0,0)-(1,1) is the NW-SE diagonal of unit (0,0): it separates {N,E}
	// from {S,W}, so it severs N-W and E-S and leaves N-E and S-W intact.
	dg.cutSegment(Coord{0, 0}, Coord{1, 1})
	assert.False(t, dg.g.HasEdgeBetween(dg.nodeID(0, 0, sideN), dg.nodeID(0, 0, sideW)))
	assert.False(t, dg.g.HasEdgeBetween(dg.nodeID(0, 0, sideE), dg.nodeID(0, 0, sideS)))
	assert.True(t, dg.g.HasEdgeBetween(dg.nodeID(0, 0, sideN), dg.nodeID(0, 0, sideE)))
	assert.True(t, dg.g.HasEdgeBetween(dg.nodeID(0, 0, sideS), dg.nodeID(0, 0, sideW)))
}

func TestCutSegmentAntiDiagonalLeavesOppositeDiamondEdges(t *testing.T) {
	dg := newDualGraph(9)
	// (1,0)-(0,1) is the NE-SW diagonal of unit (0,0): it separates {N,W}
	// from {E,S}, so it severs N-E and S-W and leaves N-W and E-S intact.
	dg.cutSegment(Coord{1, 0}, Coord{0, 1})
	assert.False(t, dg.g.HasEdgeBetween(dg.nodeID(0, 0, sideN), dg.nodeID(0, 0, sideE)))
	assert.False(t, dg.g.HasEdgeBetween(dg.nodeID(0, 0, sideS), dg.nodeID(0, 0, sideW)))
	assert.True(t, dg.g.HasEdgeBetween(dg.nodeID(0, 0, sideN), dg.nodeID(0, 0, sideW)))
	assert.True(t, dg.g.HasEdgeBetween(dg.nodeID(0, 0, sideE), dg.nodeID(0, 0, sideS)))
}

func TestCutSegmentOrthogonalRemovesInterUnitEdge(t *testing.T) {
	dg := newDualGraph(9)
	dg.cutSegment(Coord{1, 0}, Coord{1, 1})
	assert.False(t, dg.g.HasEdgeBetween(dg.nodeID(0, 0, sideE), dg.nodeID(1, 0, sideW)))
}

// componentsOf computes the connected components with a breadth-first
// search, for assertions that need the raw partition rather than just the
// score.
func componentsOf(dg *dualGraph) [][]int64 {
	var out [][]int64
	nodes := dg.g.Nodes()
	seen := map[int64]bool{}
	for nodes.Next() {
		id := nodes.Node().ID()
		if seen[id] {
			continue
		}
		comp := bfsComponent(dg, id, seen)
		out = append(out, comp)
	}
	return out
}

func bfsComponent(dg *dualGraph, start int64, seen map[int64]bool) []int64 {
	queue := []int64{start}
	seen[start] = true
	var comp []int64
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		comp = append(comp, id)
		to := dg.g.From(id)
		for to.Next() {
			nid := to.Node().ID()
			if !seen[nid] {
				seen[nid] = true
				queue = append(queue, nid)
			}
		}
	}
	return comp
}
