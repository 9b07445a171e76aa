package board

import "fmt"

// Board is the full game state: a width x width grid of stones plus one
// dual connectivity graph per color. It has no notion of whose turn it is —
// callers pass the acting Color to every query and mutation, matching
// spec.md's stateless-core contract.
type Board struct {
	Width  int
	cells  [][]Cell
	graphs [2]*dualGraph // indexed by Color
}

// NewBoard builds a fresh board of the given width with the four starting
// stones placed: Red at the main-diagonal corners, Blue at the
// anti-diagonal corners. Panics if width is outside [MinWidth, MaxWidth] —
// an out-of-range width is a caller error, not a recoverable condition.
func NewBoard(width int) *Board {
	if width < MinWidth || width > MaxWidth {
		panic(fmt.Sprintf("board: width %d outside [%d,%d]", width, MinWidth, MaxWidth))
	}
	cells := make([][]Cell, width)
	for x := range cells {
		cells[x] = make([]Cell, width)
	}
	b := &Board{
		Width: width,
		cells: cells,
		graphs: [2]*dualGraph{
			Red:  newDualGraph(width),
			Blue: newDualGraph(width),
		},
	}
	b.place(Coord{0, 0}, Red)
	b.place(Coord{width - 1, width - 1}, Red)
	b.place(Coord{0, width - 1}, Blue)
	b.place(Coord{width - 1, 0}, Blue)
	return b
}

func (b *Board) place(c Coord, color Color) {
	b.cells[c.X][c.Y] = Cell{Occupied: true, Color: color}
}

// CellAt reports whether (x, y) is occupied and by which color. Intended
// for rendering; game logic should go through PossibleMoves/ApplyMove
// instead of poking at cells directly.
func (b *Board) CellAt(x, y int) (occupied bool, color Color) {
	cell := b.cells[x][y]
	return cell.Occupied, cell.Color
}

func (b *Board) cellAt(c Coord) *Cell {
	return &b.cells[c.X][c.Y]
}

func (b *Board) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Width
}

// PossibleMoves enumerates every legal move available to color, in a
// deterministic order: by existing stone, then by the fixed diagonal
// iteration order, then by the two axis-aligned continuations of that
// diagonal. Callers relying on a seeded random choice among these moves
// depend on this exact order.
func (b *Board) PossibleMoves(color Color) []Move {
	var moves []Move
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Width; y++ {
			s1 := Coord{x, y}
			cell := b.cellAt(s1)
			if !cell.Occupied || cell.Color != color {
				continue
			}
			for _, d1 := range diagonals {
				s2 := s1.Add(d1)
				if !b.inBounds(s2) || b.cellAt(s2).Occupied {
					continue
				}
				if !cell.IsLegalRoot(d1) {
					continue
				}
				cell2 := b.cellAt(s2)
				if !cell2.IsLegalRoot(d1.negate()) {
					continue
				}
				continuations := [2]Dir{{d1.DX, 0}, {0, d1.DY}}
				for _, d2 := range continuations {
					if !cell2.IsLegalRoot(d2) {
						continue
					}
					s3 := s2.Add(d2)
					if !b.inBounds(s3) {
						continue
					}
					cell3 := b.cellAt(s3)
					if cell3.Occupied {
						if cell3.Color != color || !cell3.IsLegalRoot(d2.negate()) {
							continue
						}
					}
					moves = append(moves, Move{S1: s1, S2: s2, S3: s3})
				}
			}
		}
	}
	return moves
}

// CanMove reports whether color has at least one legal move.
func (b *Board) CanMove(color Color) bool {
	return len(b.PossibleMoves(color)) > 0
}

// IsGameOver reports whether neither color has a legal move.
func (b *Board) IsGameOver() bool {
	return !b.CanMove(Red) && !b.CanMove(Blue)
}

func (b *Board) isLegalMove(move Move, color Color) bool {
	for _, m := range b.PossibleMoves(color) {
		if m == move {
			return true
		}
	}
	return false
}

// ApplyMove places move's new stone(s) for color and cuts the corresponding
// edges in color's dual graph. S2 is always a new stone; S3 may instead
// already be an existing stone of color, in which case the move only
// extends a root onto it rather than placing a new one. Panics if move is
// not currently legal for color — callers that can't guarantee legality
// should use ApplyMoveIfPossible instead.
func (b *Board) ApplyMove(move Move, color Color) {
	if !b.isLegalMove(move, color) {
		panic(fmt.Sprintf("board: %v is not a legal move for %v", move, color))
	}
	d1 := dirBetween(move.S1, move.S2)
	d2 := dirBetween(move.S2, move.S3)

	b.place(move.S2, color)
	if !b.cellAt(move.S3).Occupied {
		b.place(move.S3, color)
	}

	b.cellAt(move.S1).addRoot(d1)
	b.cellAt(move.S2).addRoot(d1.negate())
	b.cellAt(move.S2).addRoot(d2)
	b.cellAt(move.S3).addRoot(d2.negate())

	g := b.graphs[color]
	g.cutSegment(move.S1, move.S2)
	g.cutSegment(move.S2, move.S3)
}

// ApplyMoveIfPossible applies move for color if it is currently legal,
// reporting whether it did. It never panics.
func (b *Board) ApplyMoveIfPossible(move Move, color Color) bool {
	if !b.isLegalMove(move, color) {
		return false
	}
	b.ApplyMove(move, color)
	return true
}

// Score returns the number of qualifying connected regions color's roots
// have enclosed.
func (b *Board) Score(color Color) int {
	return b.graphs[color].score()
}

// Clone returns a deep, independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]Cell, b.Width)
	for x := range b.cells {
		cells[x] = make([]Cell, b.Width)
		for y := range b.cells[x] {
			cells[x][y] = b.cells[x][y].clone()
		}
	}
	return &Board{
		Width: b.Width,
		cells: cells,
		graphs: [2]*dualGraph{
			Red:  b.graphs[Red].clone(),
			Blue: b.graphs[Blue].clone(),
		},
	}
}
