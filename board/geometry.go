// Package board implements the territory-game board: cell grid, per-color
// dual graphs used for scoring, and the move legality/application rules.
package board

import "fmt"

// MinWidth and MaxWidth bound the board side length accepted by NewBoard.
const (
	MinWidth = 4
	MaxWidth = 19
)

// Color is one of the two players.
type Color int

const (
	Red Color = iota
	Blue
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Red {
		return Blue
	}
	return Red
}

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Blue"
}

// Coord is a grid position, 0 <= X,Y < width.
type Coord struct {
	X, Y int
}

func (c Coord) Add(d Dir) Coord {
	return Coord{c.X + d.DX, c.Y + d.DY}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Dir is a step direction; components are each in {-1, 0, 1}, not both zero.
type Dir struct {
	DX, DY int
}

func dirBetween(a, b Coord) Dir {
	return Dir{b.X - a.X, b.Y - a.Y}
}

func (d Dir) negate() Dir {
	return Dir{-d.DX, -d.DY}
}

// diagonals lists the four diagonal directions in the order PossibleMoves
// iterates them. The order is part of the enumeration contract — tests
// keyed to a seeded PRNG depend on it.
var diagonals = [4]Dir{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// Move is two consecutive root segments, S1->S2 (diagonal) then S2->S3
// (axis-aligned), placed by the mover. S1 is an existing stone of the
// mover's color; S2 is a newly-placed stone; S3 is either newly placed or
// an existing stone of the mover's color.
type Move struct {
	S1, S2, S3 Coord
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v->%v", m.S1, m.S2, m.S3)
}
