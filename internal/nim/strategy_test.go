package nim

import (
	"math/rand"
	"testing"

	"github.com/ghost91-/nimgame/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	t.Run("Fresh three-stack board has nim-sum seven", func(t *testing.T) {
		// Given: stacks [1 3 5]
		board := entity.NewBoard(3)

		// Then: 1^3^5 == 7
		assert.Equal(t, 7, Sum(board))
	})

	t.Run("Empty board has nim-sum zero", func(t *testing.T) {
		assert.Equal(t, 0, Sum(entity.NewBoard(0)))
	})

	t.Run("Balanced position has nim-sum zero", func(t *testing.T) {
		// Given: stacks [1 3 2], since 1^3^2 == 0
		board := boardWithStacks(t, []int{1, 3, 2})

		assert.Equal(t, 0, Sum(board))
	})
}

func TestWinningTurns(t *testing.T) {
	t.Run("Fresh three-stack board admits exactly one winning turn", func(t *testing.T) {
		// Given: stacks [1 3 5] with nim-sum 7
		board := entity.NewBoard(3)

		// When: collecting winning turns
		winning := WinningTurns(board)

		// Then: only taking three from stack 2 leaves 1^3^2 == 0
		assert.Equal(t, []entity.Turn{{Stack: 2, Matches: 3}}, winning)
	})

	t.Run("Every winning turn leaves a zero nim-sum", func(t *testing.T) {
		board := boardWithStacks(t, []int{4, 6, 7, 2})

		winning := WinningTurns(board)

		require.NotEmpty(t, winning)
		for _, turn := range winning {
			scratch := board.Clone()
			require.NoError(t, scratch.RemoveMatches(turn.Stack, turn.Matches))
			assert.Zero(t, Sum(scratch))
		}
	})

	t.Run("No winning turns in a lost position", func(t *testing.T) {
		// Given: stacks [1 3 2] with nim-sum zero
		board := boardWithStacks(t, []int{1, 3, 2})

		assert.Empty(t, WinningTurns(board))
	})

	t.Run("Single non-empty stack is emptied", func(t *testing.T) {
		board := boardWithStacks(t, []int{0, 4, 0})

		winning := WinningTurns(board)

		assert.Equal(t, []entity.Turn{{Stack: 1, Matches: 4}}, winning)
	})
}

func TestBestTurn(t *testing.T) {
	t.Run("Zeroes the nim-sum whenever possible", func(t *testing.T) {
		// Given: random positions with a non-zero nim-sum
		rng := rand.New(rand.NewSource(1)) //nolint: gosec // it's ok

		for i := 0; i < 200; i++ {
			board := randomBoard(t, rng)
			if Sum(board) == 0 {
				continue
			}

			// When: playing the best turn
			turn, err := BestTurn(board)
			require.NoError(t, err)

			// Then: the turn is legal and leaves the opponent lost
			scratch := board.Clone()
			require.NoError(t, scratch.RemoveMatches(turn.Stack, turn.Matches))
			assert.Zero(t, Sum(scratch), "stacks %v, turn %+v", board.Stacks(), turn)
		}
	})

	t.Run("Returns a legal turn in a lost position", func(t *testing.T) {
		// Given: stacks [2 2] with nim-sum zero
		board := boardWithStacks(t, []int{2, 2})

		turn, err := BestTurn(board)

		require.NoError(t, err)
		scratch := board.Clone()
		assert.NoError(t, scratch.RemoveMatches(turn.Stack, turn.Matches))
	})

	t.Run("Fails on an empty board", func(t *testing.T) {
		_, err := BestTurn(entity.NewBoard(0))

		require.ErrorIs(t, err, ErrNoLegalTurns)
	})
}

// Every legal turn out of a balanced position unbalances it; this is the
// theory behind treating zero nim-sum positions as lost.
func TestLosingPositionCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(2)) //nolint: gosec // it's ok

	checked := 0
	for i := 0; i < 500; i++ {
		board := randomBoard(t, rng)
		if Sum(board) != 0 || !board.ExistsMatch() {
			continue
		}
		checked++

		for stack, count := range board.Stacks() {
			for matches := 1; matches <= count; matches++ {
				scratch := board.Clone()
				require.NoError(t, scratch.RemoveMatches(stack, matches))
				assert.NotZero(t, Sum(scratch), "stacks %v, stack %d, matches %d", board.Stacks(), stack, matches)
			}
		}
	}

	require.Positive(t, checked, "random boards never hit a balanced position")
}

// boardWithStacks - builds a board holding exactly the given counts by
// trimming a fresh 2*i+1 board down.
func boardWithStacks(t *testing.T, stacks []int) *entity.Board {
	t.Helper()

	board := entity.NewBoard(len(stacks))
	for i, want := range stacks {
		have, err := board.NumberOfMatchesInStack(i)
		require.NoError(t, err)
		require.LessOrEqual(t, want, have, "stack %d cannot grow beyond %d", i, have)

		if want < have {
			require.NoError(t, board.RemoveMatches(i, have-want))
		}
	}

	return board
}

func randomBoard(t *testing.T, rng *rand.Rand) *entity.Board {
	t.Helper()

	stacks := make([]int, 1+rng.Intn(5))
	for i := range stacks {
		stacks[i] = rng.Intn(2*i + 2)
	}

	return boardWithStacks(t, stacks)
}
