package board

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func TestToJSONFreshBoardHasFourStonesNoRoots(t *testing.T) {
	b := NewBoard(9)
	data, err := b.ToJSON()
	require.NoError(t, err)

	var wb wireBoard
	require.NoError(t, decodeJSON(data, &wb))
	assert.Equal(t, 9, wb.Width)
	assert.Len(t, wb.Stones, 4)
	assert.Empty(t, wb.Roots)
}

func TestToJSONRootCountDoublesPerAppliedMove(t *testing.T) {
	b := NewBoard(9)
	move := b.PossibleMoves(Red)[0]
	b.ApplyMove(move, Red)

	data, err := b.ToJSON()
	require.NoError(t, err)
	var wb wireBoard
	require.NoError(t, decodeJSON(data, &wb))
	// One move stores 4 root entries: S1, and both directions on S2, and S3.
	assert.Len(t, wb.Roots, 4)
	assert.Len(t, wb.Stones, 6)
}

func TestPossibleMovesAsJSONMatchesPossibleMoves(t *testing.T) {
	b := NewBoard(9)
	data, err := b.PossibleMovesAsJSON(Red)
	require.NoError(t, err)

	var wm wireMoves
	require.NoError(t, decodeJSON(data, &wm))
	assert.Len(t, wm.Moves, len(b.PossibleMoves(Red)))
}

func TestFromJSONRoundTripsScore(t *testing.T) {
	b := NewBoard(9)
	for i := 0; i < 8; i++ {
		moves := b.PossibleMoves(Red)
		if len(moves) == 0 {
			break
		}
		b.ApplyMove(moves[0], Red)
	}
	data, err := b.ToJSON()
	require.NoError(t, err)

	restored, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, b.Score(Red), restored.Score(Red))
	assert.Equal(t, b.Score(Blue), restored.Score(Blue))

	dataAgain, err := restored.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(dataAgain))
}

func TestFromJSONRejectsOutOfRangeWidth(t *testing.T) {
	_, err := FromJSON([]byte(`{"width":3,"stones":[],"roots":[]}`))
	assert.Error(t, err)
}

func TestFromJSONRejectsUnknownColor(t *testing.T) {
	_, err := FromJSON([]byte(`{"width":9,"stones":[{"x":0,"y":0,"color":"Green"}],"roots":[]}`))
	assert.Error(t, err)
}
