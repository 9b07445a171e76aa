package mcts

import (
	"github.com/rootcut/rootcut/board"
	"github.com/rootcut/rootcut/rng"
)

// RandomPlayer chooses uniformly among its legal moves. It exists mainly as
// a baseline opponent; its choice (chooseRandomMove) is the same uniform
// pick the other two players' rollouts use.
type RandomPlayer struct {
	Color  board.Color
	Source rng.Source
}

// NewRandomPlayer builds a RandomPlayer seeded deterministically.
func NewRandomPlayer(color board.Color, seed uint64) *RandomPlayer {
	return &RandomPlayer{Color: color, Source: rng.New(seed)}
}

// ChooseMove returns a uniformly random legal move, or false if color has
// none.
func (p *RandomPlayer) ChooseMove(b *board.Board) (board.Move, bool) {
	return chooseRandomMove(b, p.Color, p.Source)
}
