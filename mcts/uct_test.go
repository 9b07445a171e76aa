package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootcut/rootcut/board"
)

func validConfig() UCTConfig {
	return UCTConfig{
		Color:           board.Red,
		Seed:            1,
		Exploration:     1.4,
		ExpandThreshold: 2,
		Iterations:      200,
	}
}

func TestNewUCTMonteCarloRejectsBadConfig(t *testing.T) {
	_, err := NewUCTMonteCarlo(UCTConfig{Color: board.Red, Exploration: -1, ExpandThreshold: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Exploration")
	assert.Contains(t, err.Error(), "ExpandThreshold")
	assert.Contains(t, err.Error(), "Iterations or TimeLimit")
}

func TestUCTMonteCarloChoosesLegalMove(t *testing.T) {
	u, err := NewUCTMonteCarlo(validConfig())
	require.NoError(t, err)

	b := board.NewBoard(6)
	move, ok := u.ChooseMove(b)
	require.True(t, ok)
	assert.Contains(t, b.PossibleMoves(board.Red), move)
}

func TestUCTMonteCarloDeterministicWithSameSeed(t *testing.T) {
	u1, err := NewUCTMonteCarlo(validConfig())
	require.NoError(t, err)
	u2, err := NewUCTMonteCarlo(validConfig())
	require.NoError(t, err)

	b1 := board.NewBoard(6)
	b2 := board.NewBoard(6)

	m1, _ := u1.ChooseMove(b1)
	m2, _ := u2.ChooseMove(b2)
	assert.Equal(t, m1, m2)
}

func TestUCTMonteCarloReusesTreeAcrossMatchingBoard(t *testing.T) {
	u, err := NewUCTMonteCarlo(validConfig())
	require.NoError(t, err)

	b := board.NewBoard(6)
	move, ok := u.ChooseMove(b)
	require.True(t, ok)
	b.ApplyMove(move, board.Red)

	oldRoot := u.root
	require.NotEmpty(t, oldRoot.children)

	// Present the board as it stands after our own move (before Blue has
	// replied) — this is exactly one of oldRoot's children.
	_, ok = u.ChooseMove(b)
	require.True(t, ok)
	assert.NotSame(t, oldRoot, u.root)
	assert.Nil(t, u.root.parent)
}

func TestUCTMonteCarloReportsNoMoveWhenNoneLegal(t *testing.T) {
	u, err := NewUCTMonteCarlo(validConfig())
	require.NoError(t, err)

	b := board.NewBoard(4)
	for i := 0; i < 500 && !b.IsGameOver(); i++ {
		for _, c := range []board.Color{board.Red, board.Blue} {
			moves := b.PossibleMoves(c)
			if len(moves) > 0 {
				b.ApplyMove(moves[0], c)
			}
		}
	}
	require.False(t, b.CanMove(board.Red))
	_, ok := u.ChooseMove(b)
	assert.False(t, ok)
}
