package mcts

import (
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/rootcut/rootcut/board"
	"github.com/rootcut/rootcut/rng"
)

// NaiveConfig configures a NaiveMonteCarlo player.
type NaiveConfig struct {
	Color     board.Color
	Seed      uint64
	TimeLimit time.Duration
}

func (c NaiveConfig) validate() error {
	var result *multierror.Error
	if c.TimeLimit <= 0 {
		result = multierror.Append(result, errors.New("mcts: NaiveConfig.TimeLimit must be positive"))
	}
	return result.ErrorOrNil()
}

// NaiveMonteCarlo picks a move by sampling complete random playouts per
// candidate move and keeping the one with the best observed win ratio — no
// search tree, unlike UCTMonteCarlo.
type NaiveMonteCarlo struct {
	cfg NaiveConfig
	src rng.Source
}

// NewNaiveMonteCarlo validates cfg and builds a NaiveMonteCarlo player.
func NewNaiveMonteCarlo(cfg NaiveConfig) (*NaiveMonteCarlo, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &NaiveMonteCarlo{cfg: cfg, src: rng.New(cfg.Seed)}, nil
}

// ChooseMove samples each legal move for color with an equal share of
// TimeLimit and returns the one with the highest observed win ratio.
func (m *NaiveMonteCarlo) ChooseMove(b *board.Board) (board.Move, bool) {
	candidates := b.PossibleMoves(m.cfg.Color)
	if len(candidates) == 0 {
		return board.Move{}, false
	}

	perCandidate := m.cfg.TimeLimit / time.Duration(len(candidates))
	bestIdx := 0
	bestRatio := -1.0

	for i, move := range candidates {
		deadline := time.Now().Add(perCandidate)
		wins, samples := 0, 0
		for time.Now().Before(deadline) {
			trial := b.Clone()
			trial.ApplyMove(move, m.cfg.Color)
			next, more := nextMover(trial, m.cfg.Color)
			if more {
				_, _ = playout(trial, next, m.src)
			}
			w, tie := winner(trial)
			samples++
			if !tie && w == m.cfg.Color {
				wins++
			}
		}
		if samples == 0 {
			continue
		}
		ratio := float64(wins) / float64(samples)
		if ratio > bestRatio {
			bestRatio = ratio
			bestIdx = i
		}
	}
	return candidates[bestIdx], true
}
