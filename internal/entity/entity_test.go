package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board with a mark in the centre
	board := NewBoard(3)
	board[1][1] = CellX

	// When: the clone is modified
	clone := board.Clone()
	clone[1][1] = CellO
	clone[0][0] = CellX

	// Then: the original board is untouched
	require.Len(t, clone, 3)
	assert.Equal(t, CellX, board[1][1])
	assert.True(t, board[0][0].IsEmpty())
}

func TestOutcome(t *testing.T) {
	t.Run("In progress is not finished", func(t *testing.T) {
		outcome := InProgress()

		assert.False(t, outcome.IsFinished())
		assert.Equal(t, "in progress", outcome.String())
	})

	t.Run("Win carries the winner", func(t *testing.T) {
		outcome := Win(PlayerO)

		assert.True(t, outcome.IsFinished())
		assert.False(t, outcome.IsDraw())
		assert.Equal(t, PlayerO, outcome.Winner)
		assert.Equal(t, "O wins", outcome.String())
	})

	t.Run("Draw has no winner", func(t *testing.T) {
		outcome := Draw()

		assert.True(t, outcome.IsFinished())
		assert.True(t, outcome.IsDraw())
		assert.Empty(t, outcome.Winner)
		assert.Equal(t, "draw", outcome.String())
	})
}

func TestStats(t *testing.T) {
	t.Run("Add sums every field", func(t *testing.T) {
		// Given: a persisted record and a session record
		history := Stats{X: 3, O: 1, Draw: 2}
		session := Stats{X: 1, O: 4}

		// When: they are added
		total := history.Add(session)

		// Then: every counter is summed and neither input changes
		assert.Equal(t, Stats{X: 4, O: 5, Draw: 2}, total)
		assert.Equal(t, Stats{X: 3, O: 1, Draw: 2}, history)
		assert.Equal(t, 11, total.Total())
		assert.Equal(t, 4, total.Wins(PlayerX))
		assert.Equal(t, 5, total.Wins(PlayerO))
	})

	t.Run("Negative counters are invalid", func(t *testing.T) {
		assert.True(t, Stats{}.IsValid())
		assert.False(t, Stats{O: -1}.IsValid())
	})
}
