package nim

import (
	"errors"
	"math/rand"

	"github.com/ghost91-/nimgame/internal/entity"
)

var ErrNoLegalTurns = errors.New("no legal turns left")

// Sum - computes the nim-sum, the bitwise XOR of all stack counts. Under
// last-player-to-move-wins rules a position with a zero nim-sum is lost for
// the player to move.
func Sum(board *entity.Board) int {
	sum := 0
	for _, count := range board.Stacks() {
		sum ^= count
	}

	return sum
}

// BestTurn - returns a perfect-play turn for the given position. When winning
// turns exist one of them is chosen uniformly at random; in a lost position a
// uniformly random legal turn is returned instead.
func BestTurn(board *entity.Board) (entity.Turn, error) {
	if winning := WinningTurns(board); len(winning) > 0 {
		return winning[rand.Intn(len(winning))], nil //nolint: gosec // it's ok
	}

	return randomTurn(board)
}

// WinningTurns - collects every turn that drives the nim-sum to zero. The
// result is empty exactly when the position is lost for the player to move.
func WinningTurns(board *entity.Board) []entity.Turn {
	sum := Sum(board)
	if sum == 0 {
		return nil
	}

	var winning []entity.Turn
	for stack, count := range board.Stacks() {
		target := count ^ sum
		if target >= count {
			continue
		}

		turn := entity.Turn{Stack: stack, Matches: count - target}
		if isWinTurn(board, turn) {
			winning = append(winning, turn)
		}
	}

	return winning
}

// isWinTurn - replays the turn on a cloned board and checks that the opponent
// is left with a zero nim-sum. The live board is never touched.
func isWinTurn(board *entity.Board, turn entity.Turn) bool {
	scratch := board.Clone()
	if err := scratch.RemoveMatches(turn.Stack, turn.Matches); err != nil {
		return false
	}

	return Sum(scratch) == 0
}

// randomTurn - picks uniformly among all legal turns across all stacks. Empty
// stacks contribute no legal turns.
func randomTurn(board *entity.Board) (entity.Turn, error) {
	var legal []entity.Turn
	for stack, count := range board.Stacks() {
		for matches := 1; matches <= count; matches++ {
			legal = append(legal, entity.Turn{Stack: stack, Matches: matches})
		}
	}

	if len(legal) == 0 {
		return entity.Turn{}, ErrNoLegalTurns
	}

	return legal[rand.Intn(len(legal))], nil //nolint: gosec // it's ok
}
