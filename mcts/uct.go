package mcts

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/rootcut/rootcut/board"
	"github.com/rootcut/rootcut/rng"
)

// UCTConfig configures a UCTMonteCarlo player.
type UCTConfig struct {
	Color           board.Color
	Seed            uint64
	Exploration     float64       // UCB1's c term
	ExpandThreshold int           // visits a node needs before it grows its first child
	Iterations      int           // fixed iteration budget per move; 0 disables
	TimeLimit       time.Duration // wall-clock budget per move; 0 disables
}

func (c UCTConfig) validate() error {
	var result *multierror.Error
	if c.Exploration < 0 {
		result = multierror.Append(result, errors.New("mcts: UCTConfig.Exploration must be >= 0"))
	}
	if c.ExpandThreshold < 1 {
		result = multierror.Append(result, errors.New("mcts: UCTConfig.ExpandThreshold must be >= 1"))
	}
	if c.Iterations <= 0 && c.TimeLimit <= 0 {
		result = multierror.Append(result, errors.New("mcts: UCTConfig needs a positive Iterations or TimeLimit"))
	}
	return result.ErrorOrNil()
}

// UCTMonteCarlo is a single-threaded UCT player: UCB1 selection down the
// tree, expansion once a node crosses ExpandThreshold visits, a random
// playout to a terminal state, and backpropagation of win/loss counts.
// The tree is reused across calls to ChooseMove: when the board passed in
// matches a node already in the tree (the opponent played the move we
// expected), that subtree is promoted to root and everything else is
// dropped, rather than starting over.
type UCTMonteCarlo struct {
	cfg  UCTConfig
	src  rng.Source
	root *node
}

// NewUCTMonteCarlo validates cfg and builds a UCTMonteCarlo player.
func NewUCTMonteCarlo(cfg UCTConfig) (*UCTMonteCarlo, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &UCTMonteCarlo{cfg: cfg, src: rng.New(cfg.Seed)}, nil
}

// ChooseMove runs UCT search from current's position and returns the move
// with the most samples. The second return value is false if color has no
// legal move.
func (u *UCTMonteCarlo) ChooseMove(current *board.Board) (board.Move, bool) {
	u.reroot(current)
	if len(u.root.untried) == 0 && len(u.root.children) == 0 {
		return board.Move{}, false
	}

	var deadline time.Time
	if u.cfg.TimeLimit > 0 {
		deadline = time.Now().Add(u.cfg.TimeLimit)
	}
	for i := 0; u.cfg.Iterations <= 0 || i < u.cfg.Iterations; i++ {
		if u.cfg.TimeLimit > 0 && time.Now().After(deadline) {
			break
		}
		leaf := u.treePolicy()
		outcome, decisive := u.rolloutFrom(leaf)
		leaf.record(outcome, decisive)
	}

	best := u.root.mostVisited()
	return best.move, true
}

// treePolicy descends the tree by UCB1 selection, expanding the first node
// it reaches that has spare untried moves and has crossed ExpandThreshold
// visits (the root is always eligible, so the very first iteration expands
// it). It returns the node a rollout should be run from.
func (u *UCTMonteCarlo) treePolicy() *node {
	cur := u.root
	for !cur.state.IsGameOver() {
		if !cur.fullyExpanded() && (cur.parent == nil || cur.samples >= u.cfg.ExpandThreshold) {
			return u.expand(cur)
		}
		if len(cur.children) == 0 {
			return cur
		}
		cur = cur.selectChild(u.cfg.Exploration)
	}
	return cur
}

func (u *UCTMonteCarlo) expand(n *node) *node {
	idx := u.src.Intn(len(n.untried))
	move := n.untried[idx]
	n.untried = append(n.untried[:idx:idx], n.untried[idx+1:]...)

	child := n.state.Clone()
	child.ApplyMove(move, n.toMove)
	nextColor, more := nextMover(child, n.toMove)
	if !more {
		nextColor = n.toMove.Opponent()
	}
	childNode := newNode(n, child, move, nextColor)
	n.children = append(n.children, childNode)
	return childNode
}

func (u *UCTMonteCarlo) rolloutFrom(n *node) (board.Color, bool) {
	trial := n.state.Clone()
	if trial.IsGameOver() {
		return winner(trial)
	}
	return playout(trial, n.toMove, u.src)
}

// reroot finds the node in the existing tree whose position matches
// current and promotes it to root, severing its link to its old parent so
// the rest of the tree can be collected. If no match is found (there is no
// tree yet, or current diverges from anything explored) it starts a fresh
// root.
func (u *UCTMonteCarlo) reroot(current *board.Board) {
	key, err := boardKey(current)
	if err != nil || u.root == nil {
		u.root = newNode(nil, current.Clone(), board.Move{}, u.cfg.Color)
		return
	}
	if match := findMatch(u.root, key); match != nil {
		match.parent = nil
		u.root = match
		return
	}
	u.root = newNode(nil, current.Clone(), board.Move{}, u.cfg.Color)
}

func findMatch(n *node, key string) *node {
	if k, err := boardKey(n.state); err == nil && k == key {
		return n
	}
	for _, c := range n.children {
		if m := findMatch(c, key); m != nil {
			return m
		}
	}
	return nil
}

func boardKey(b *board.Board) (string, error) {
	data, err := b.ToJSON()
	if err != nil {
		return "", errors.Wrap(err, "mcts: compute board key")
	}
	return string(data), nil
}
