// Package mcts implements the three search-based players: RandomPlayer,
// NaiveMonteCarlo, and UCTMonteCarlo, sharing a single random-playout
// engine.
package mcts

import (
	"github.com/rootcut/rootcut/board"
	"github.com/rootcut/rootcut/rng"
)

// nextMover returns whichever color is entitled to move next given that
// last moved just played. A color with no legal move is skipped, matching
// a pass; if neither can move the game is already over and the second
// return value is false.
func nextMover(b *board.Board, lastMoved board.Color) (board.Color, bool) {
	other := lastMoved.Opponent()
	if b.CanMove(other) {
		return other, true
	}
	if b.CanMove(lastMoved) {
		return lastMoved, true
	}
	return lastMoved, false
}

// chooseRandomMove picks uniformly among color's legal moves on b. The
// second return value is false when color has none.
func chooseRandomMove(b *board.Board, color board.Color, src rng.Source) (board.Move, bool) {
	moves := b.PossibleMoves(color)
	if len(moves) == 0 {
		return board.Move{}, false
	}
	return moves[src.Intn(len(moves))], true
}

// playout plays uniformly random moves from b, starting with toMove, until
// the game ends, mutating b in place. It returns the color with the higher
// score, or false if the game ends tied.
func playout(b *board.Board, toMove board.Color, src rng.Source) (board.Color, bool) {
	mover := toMove
	for !b.IsGameOver() {
		move, ok := chooseRandomMove(b, mover, src)
		if !ok {
			next, more := nextMover(b, mover)
			if !more {
				break
			}
			mover = next
			continue
		}
		b.ApplyMove(move, mover)
		next, more := nextMover(b, mover)
		if !more {
			break
		}
		mover = next
	}
	return winner(b)
}

// winner compares scores and reports the leading color, or false on a tie.
func winner(b *board.Board) (board.Color, bool) {
	red := b.Score(board.Red)
	blue := b.Score(board.Blue)
	switch {
	case red > blue:
		return board.Red, true
	case blue > red:
		return board.Blue, true
	default:
		return board.Red, false
	}
}
