package mcts

import (
	"math"

	"github.com/rootcut/rootcut/board"
)

// node is one position in the UCT search tree. wins/losses are counted
// separately, rather than collapsed into a single win rate, so a draw
// (neither incremented) is distinguishable from a loss when the node has
// very few samples.
type node struct {
	parent   *node
	children []*node
	move     board.Move
	toMove   board.Color
	state    *board.Board
	untried  []board.Move
	samples  int
	wins     int
	losses   int
}

func newNode(parent *node, state *board.Board, move board.Move, toMove board.Color) *node {
	return &node{
		parent:  parent,
		state:   state,
		move:    move,
		toMove:  toMove,
		untried: state.PossibleMoves(toMove),
	}
}

// perspective is the color whose choice this node's win/loss counts are
// judged from: the player who moved to create it, or the node's own mover
// if it has no parent (the search root).
func (n *node) perspective() board.Color {
	if n.parent != nil {
		return n.parent.toMove
	}
	return n.toMove
}

// ucb1 is the standard UCB1 selection score, +Inf for an unsampled child so
// every child is tried at least once before any is revisited.
func (n *node) ucb1(exploration float64) float64 {
	if n.samples == 0 {
		return math.Inf(1)
	}
	winRate := float64(n.wins) / float64(n.samples)
	return winRate + exploration*math.Sqrt(math.Log(float64(n.parent.samples))/float64(n.samples))
}

// fullyExpanded reports whether every move out of this node already has a
// child.
func (n *node) fullyExpanded() bool {
	return len(n.untried) == 0
}

// selectChild returns the child with the highest UCB1 score, breaking ties
// by earliest creation (the order moves were expanded in).
func (n *node) selectChild(exploration float64) *node {
	best := n.children[0]
	bestScore := best.ucb1(exploration)
	for _, c := range n.children[1:] {
		if s := c.ucb1(exploration); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

// mostVisited returns the child with the most samples, breaking ties by
// win rate and then by creation order.
func (n *node) mostVisited() *node {
	best := n.children[0]
	for _, c := range n.children[1:] {
		if c.samples > best.samples {
			best = c
			continue
		}
		if c.samples == best.samples && winRate(c) > winRate(best) {
			best = c
		}
	}
	return best
}

func winRate(n *node) float64 {
	if n.samples == 0 {
		return 0
	}
	return float64(n.wins) / float64(n.samples)
}

// record backs up a terminal outcome from n up to the root, incrementing
// wins or losses at each ancestor relative to that ancestor's perspective.
// A tie increments samples only.
func (n *node) record(outcome board.Color, decisive bool) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.samples++
		if !decisive {
			continue
		}
		if outcome == cur.perspective() {
			cur.wins++
		} else {
			cur.losses++
		}
	}
}
