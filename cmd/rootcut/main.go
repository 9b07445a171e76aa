// Command rootcut drives a self-play game between two configurable
// players over a plain-text board rendering. It exercises the board and
// mcts packages directly; it carries none of the JSON/image plumbing a
// real host UI would own.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rootcut/rootcut/board"
	"github.com/rootcut/rootcut/mcts"
)

var (
	widthFlag int
	seedFlag  uint64
	timeFlag  float64
	redFlag   string
	blueFlag  string
)

func init() {
	flag.IntVar(&widthFlag, "width", 9, "board width, 4-19")
	flag.Uint64Var(&seedFlag, "seed", 1, "PRNG seed for the red player; the blue player uses seed+1")
	flag.Float64Var(&timeFlag, "time", 1.0, "per-move search budget in seconds for naive/uct players")
	flag.StringVar(&redFlag, "red", "uct", "red player: random, naive, or uct")
	flag.StringVar(&blueFlag, "blue", "random", "blue player: random, naive, or uct")
}

// player is the narrow surface every configured player exposes to the
// game loop.
type player interface {
	ChooseMove(b *board.Board) (board.Move, bool)
}

func newPlayer(kind string, color board.Color, seed uint64, budget time.Duration, logger *log.Logger) (player, error) {
	switch kind {
	case "random":
		return mcts.NewRandomPlayer(color, seed), nil
	case "naive":
		return mcts.NewNaiveMonteCarlo(mcts.NaiveConfig{
			Color:     color,
			Seed:      seed,
			TimeLimit: budget,
		})
	case "uct":
		return mcts.NewUCTMonteCarlo(mcts.UCTConfig{
			Color:           color,
			Seed:            seed,
			Exploration:     1.414,
			ExpandThreshold: 8,
			TimeLimit:       budget,
		})
	default:
		return nil, fmt.Errorf("rootcut: unknown player kind %q (want random, naive, or uct)", kind)
	}
}

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "[rootcut] ", log.Ltime)

	if err := run(logger); err != nil {
		logger.Fatal(err)
	}
}

func run(logger *log.Logger) error {
	budget := time.Duration(timeFlag * float64(time.Second))

	red, err := newPlayer(redFlag, board.Red, seedFlag, budget, logger)
	if err != nil {
		return err
	}
	blue, err := newPlayer(blueFlag, board.Blue, seedFlag+1, budget, logger)
	if err != nil {
		return err
	}

	b := board.NewBoard(widthFlag)
	players := map[board.Color]player{board.Red: red, board.Blue: blue}
	mover := board.Red

	printBoard(b)
	for !b.IsGameOver() {
		if !b.CanMove(mover) {
			mover = mover.Opponent()
			continue
		}
		move, ok := players[mover].ChooseMove(b)
		if !ok {
			mover = mover.Opponent()
			continue
		}
		b.ApplyMove(move, mover)
		logger.Printf("%v plays %v", mover, move)
		printBoard(b)
		mover = mover.Opponent()
	}

	showResult(logger, b)
	return nil
}

func printBoard(b *board.Board) {
	fmt.Print("    ")
	for c := 0; c < b.Width; c++ {
		fmt.Printf("%2d ", c)
	}
	fmt.Println()
	for y := 0; y < b.Width; y++ {
		fmt.Printf("%2d ", y)
		for x := 0; x < b.Width; x++ {
			fmt.Printf(" %c ", cellGlyph(b, x, y))
		}
		fmt.Println()
	}
	fmt.Println()
}

func cellGlyph(b *board.Board, x, y int) rune {
	occupied, color := b.CellAt(x, y)
	if !occupied {
		return '.'
	}
	if color == board.Red {
		return 'R'
	}
	return 'B'
}

func showResult(logger *log.Logger, b *board.Board) {
	red, blue := b.Score(board.Red), b.Score(board.Blue)
	logger.Printf("final score — red: %d, blue: %d", red, blue)
	switch {
	case red > blue:
		fmt.Println("Red wins!")
	case blue > red:
		fmt.Println("Blue wins!")
	default:
		fmt.Println("It's a draw!")
	}
}
