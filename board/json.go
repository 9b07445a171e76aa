package board

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// wireCoord is the flat {x,y} shape used throughout the wire format.
type wireCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// wireStone is one occupied cell.
type wireStone struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

// wireRoot is one stored root direction on a stone. Roots are emitted once
// per stored direction — a placed segment contributes two entries, one per
// endpoint — matching original_source's per-direction storage.
type wireRoot struct {
	X  int `json:"x"`
	Y  int `json:"y"`
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// wireBoard is the full board snapshot sent to a host UI.
type wireBoard struct {
	Width  int         `json:"width"`
	Stones []wireStone `json:"stones"`
	Roots  []wireRoot  `json:"roots"`
}

// wireMove mirrors Move.
type wireMove struct {
	S1 wireCoord `json:"s1"`
	S2 wireCoord `json:"s2"`
	S3 wireCoord `json:"s3"`
}

// wireMoves is the possible-moves wire envelope.
type wireMoves struct {
	Moves []wireMove `json:"moves"`
}

// segmentKey is an order-independent identifier for the two endpoints of a
// root segment, used to avoid replaying the same cut twice.
func segmentKey(a, b Coord) [4]int {
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
	}
	return [4]int{a.X, a.Y, b.X, b.Y}
}

func colorName(c Color) string {
	return c.String()
}

func colorFromName(name string) (Color, error) {
	switch name {
	case "Red":
		return Red, nil
	case "Blue":
		return Blue, nil
	default:
		return Red, errors.Errorf("board: unknown color %q", name)
	}
}

// ToJSON renders the board's stones and roots to the wire format consumed
// by a host UI.
func (b *Board) ToJSON() ([]byte, error) {
	wb := wireBoard{Width: b.Width}
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Width; y++ {
			cell := b.cells[x][y]
			if !cell.Occupied {
				continue
			}
			wb.Stones = append(wb.Stones, wireStone{X: x, Y: y, Color: colorName(cell.Color)})
			for _, d := range cell.Roots {
				wb.Roots = append(wb.Roots, wireRoot{X: x, Y: y, DX: d.DX, DY: d.DY})
			}
		}
	}
	out, err := json.Marshal(wb)
	if err != nil {
		return nil, errors.Wrap(err, "board: marshal board")
	}
	return out, nil
}

// PossibleMovesAsJSON renders color's legal moves to the wire format.
func (b *Board) PossibleMovesAsJSON(color Color) ([]byte, error) {
	wm := wireMoves{}
	for _, m := range b.PossibleMoves(color) {
		wm.Moves = append(wm.Moves, wireMove{
			S1: wireCoord{m.S1.X, m.S1.Y},
			S2: wireCoord{m.S2.X, m.S2.Y},
			S3: wireCoord{m.S3.X, m.S3.Y},
		})
	}
	out, err := json.Marshal(wm)
	if err != nil {
		return nil, errors.Wrap(err, "board: marshal possible moves")
	}
	return out, nil
}

// FromJSON reconstructs a board from a snapshot produced by ToJSON. The
// dual graphs are rebuilt from scratch and every stored root replayed
// through them, so the result scores identically to the board that was
// serialized.
func FromJSON(data []byte) (*Board, error) {
	var wb wireBoard
	if err := json.Unmarshal(data, &wb); err != nil {
		return nil, errors.Wrap(err, "board: unmarshal board")
	}
	if wb.Width < MinWidth || wb.Width > MaxWidth {
		return nil, errors.Errorf("board: width %d outside [%d,%d]", wb.Width, MinWidth, MaxWidth)
	}

	cells := make([][]Cell, wb.Width)
	for x := range cells {
		cells[x] = make([]Cell, wb.Width)
	}
	for _, s := range wb.Stones {
		color, err := colorFromName(s.Color)
		if err != nil {
			return nil, err
		}
		cells[s.X][s.Y] = Cell{Occupied: true, Color: color}
	}

	b := &Board{
		Width: wb.Width,
		cells: cells,
		graphs: [2]*dualGraph{
			Red:  newDualGraph(wb.Width),
			Blue: newDualGraph(wb.Width),
		},
	}

	cutSegments := make(map[Color]map[[4]int]bool)
	cutSegments[Red] = map[[4]int]bool{}
	cutSegments[Blue] = map[[4]int]bool{}

	for _, r := range wb.Roots {
		from := Coord{r.X, r.Y}
		if !b.inBounds(from) {
			return nil, errors.Errorf("board: root at out-of-range coord %v", from)
		}
		cell := b.cellAt(from)
		if !cell.Occupied {
			return nil, errors.Errorf("board: root on unoccupied cell %v", from)
		}
		d := Dir{r.DX, r.DY}
		if cell.hasRoot(d) {
			continue
		}
		cell.addRoot(d)
		to := from.Add(d)
		if !b.inBounds(to) || !b.cellAt(to).Occupied {
			continue
		}
		key := segmentKey(from, to)
		if cutSegments[cell.Color][key] {
			continue // the paired endpoint already replayed this segment's cut
		}
		cutSegments[cell.Color][key] = true
		b.graphs[cell.Color].cutSegment(from, to)
	}

	return b, nil
}
