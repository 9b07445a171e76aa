package board

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// side identifies one of the four nodes carried by a unit of the dual
// graph. Units sit between four adjacent stones; side N/E/S/W names which
// edge of the unit the node represents.
type side int

const (
	sideN side = iota
	sideE
	sideS
	sideW
)

// scoreThreshold is the connected-component size, in dual-graph nodes, that
// a region must exceed to score. Strictly greater than 4: a component of
// exactly 4 nodes does not score.
const scoreThreshold = 4

// dualGraph is one color's view of territory connectivity. It is a grid of
// (width-1)^2 units, each holding four nodes (N/E/S/W) wired into a diamond
// cycle N-E, E-S, S-W, W-N, plus edges linking adjacent units across shared
// stone-grid boundaries. Placing a root for this color removes the edges
// that root segment severs.
type dualGraph struct {
	ngrids int // units per side, i.e. width-1
	g      *simple.UndirectedGraph
}

func newDualGraph(width int) *dualGraph {
	ngrids := width - 1
	dg := &dualGraph{ngrids: ngrids, g: simple.NewUndirectedGraph()}
	for ux := 0; ux < ngrids; ux++ {
		for uy := 0; uy < ngrids; uy++ {
			for s := sideN; s <= sideW; s++ {
				dg.g.AddNode(simple.Node(dg.nodeID(ux, uy, s)))
			}
			dg.setEdge(ux, uy, sideN, ux, uy, sideE)
			dg.setEdge(ux, uy, sideE, ux, uy, sideS)
			dg.setEdge(ux, uy, sideS, ux, uy, sideW)
			dg.setEdge(ux, uy, sideW, ux, uy, sideN)
			if ux+1 < ngrids {
				dg.setEdge(ux, uy, sideE, ux+1, uy, sideW)
			}
			if uy+1 < ngrids {
				dg.setEdge(ux, uy, sideS, ux, uy+1, sideN)
			}
		}
	}
	return dg
}

func (dg *dualGraph) nodeID(ux, uy int, s side) int64 {
	return int64(((ux*dg.ngrids)+uy)*4 + int(s))
}

func (dg *dualGraph) inBounds(ux, uy int) bool {
	return ux >= 0 && ux < dg.ngrids && uy >= 0 && uy < dg.ngrids
}

func (dg *dualGraph) setEdge(ux1, uy1 int, s1 side, ux2, uy2 int, s2 side) {
	dg.g.SetEdge(dg.g.NewEdge(
		simple.Node(dg.nodeID(ux1, uy1, s1)),
		simple.Node(dg.nodeID(ux2, uy2, s2)),
	))
}

// removeEdge cuts the edge between the two named nodes. Panics if the edge
// does not exist — applying a legal move should never ask to cut an edge
// twice or cut one that was never wired.
func (dg *dualGraph) removeEdge(ux1, uy1 int, s1 side, ux2, uy2 int, s2 side) {
	a := dg.nodeID(ux1, uy1, s1)
	b := dg.nodeID(ux2, uy2, s2)
	if !dg.g.HasEdgeBetween(a, b) {
		panic(fmt.Sprintf("board: no edge between unit(%d,%d,%d) and unit(%d,%d,%d)", ux1, uy1, s1, ux2, uy2, s2))
	}
	dg.g.RemoveEdge(a, b)
}

// cutDiagonal cuts the two diamond edges crossed by a diagonal root segment
// running between two stones that share a single unit. dx and dy are each
// +1 or -1.
func (dg *dualGraph) cutDiagonal(ux, uy, dx, dy int) {
	if !dg.inBounds(ux, uy) {
		return
	}
	if dx == dy {
		// NW-SE diagonal: separates {N,E} from {S,W}, severing N-W and E-S.
		dg.removeEdge(ux, uy, sideN, ux, uy, sideW)
		dg.removeEdge(ux, uy, sideE, ux, uy, sideS)
	} else {
		// NE-SW diagonal: separates {N,W} from {E,S}, severing N-E and S-W.
		dg.removeEdge(ux, uy, sideN, ux, uy, sideE)
		dg.removeEdge(ux, uy, sideS, ux, uy, sideW)
	}
}

// cutHorizontal cuts the inter-unit edge straddling a horizontal root
// segment at row y between columns x0 and x0+1.
func (dg *dualGraph) cutHorizontal(x0, y int) {
	above := y - 1
	below := y
	if dg.inBounds(x0, above) && dg.inBounds(x0, below) {
		dg.removeEdge(x0, above, sideS, x0, below, sideN)
	}
}

// cutVertical cuts the inter-unit edge straddling a vertical root segment
// at column x between rows y0 and y0+1.
func (dg *dualGraph) cutVertical(x, y0 int) {
	left := x - 1
	right := x
	if dg.inBounds(left, y0) && dg.inBounds(right, y0) {
		dg.removeEdge(left, y0, sideE, right, y0, sideW)
	}
}

// cutSegment cuts whatever edge a root segment between two adjacent
// coordinates severs, diagonal or orthogonal.
func (dg *dualGraph) cutSegment(a, b Coord) {
	d := dirBetween(a, b)
	switch {
	case d.DX != 0 && d.DY != 0:
		ux, uy := a.X, a.Y
		if d.DX < 0 {
			ux = b.X
		}
		if d.DY < 0 {
			uy = b.Y
		}
		dg.cutDiagonal(ux, uy, d.DX, d.DY)
	case d.DY == 0:
		x0 := a.X
		if b.X < x0 {
			x0 = b.X
		}
		dg.cutHorizontal(x0, a.Y)
	default:
		y0 := a.Y
		if b.Y < y0 {
			y0 = b.Y
		}
		dg.cutVertical(a.X, y0)
	}
}

// score counts the connected components with more than scoreThreshold
// nodes, less one: the whole board starts as a single such component, which
// no root encloses, so a fresh board scores 0.
func (dg *dualGraph) score() int {
	components := topo.ConnectedComponents(dg.g)
	count := 0
	for _, comp := range components {
		if len(comp) > scoreThreshold {
			count++
		}
	}
	if count > 0 {
		count--
	}
	return count
}

func (dg *dualGraph) clone() *dualGraph {
	clone := &dualGraph{ngrids: dg.ngrids, g: simple.NewUndirectedGraph()}
	nodes := dg.g.Nodes()
	for nodes.Next() {
		clone.g.AddNode(simple.Node(nodes.Node().ID()))
	}
	edges := dg.g.Edges()
	for edges.Next() {
		e := edges.Edge()
		clone.g.SetEdge(clone.g.NewEdge(simple.Node(e.From().ID()), simple.Node(e.To().ID())))
	}
	return clone
}
