package entity

import (
	"fmt"

	"github.com/ghost91-/nimgame/internal/apperror"
)

// Board holds the matchstick stacks of a single game. The number of stacks is
// fixed once constructed and stacks only ever shrink.
type Board struct {
	stacks []int
}

// NewBoard - creates a board with the given number of stacks, stack i holding
// 2*i+1 matches.
func NewBoard(numberOfStacks int) *Board {
	stacks := make([]int, numberOfStacks)
	for i := range stacks {
		stacks[i] = 2*i + 1
	}

	return &Board{stacks: stacks}
}

// Length - returns the total number of stacks.
func (that *Board) Length() int {
	return len(that.stacks)
}

// NumberOfMatchesInStack - returns the current count of the given stack.
func (that *Board) NumberOfMatchesInStack(stack int) (int, error) {
	if stack < 0 || stack >= len(that.stacks) {
		return 0, fmt.Errorf("%w: stack %d", apperror.ErrStackDoesNotExist, stack)
	}

	return that.stacks[stack], nil
}

// RemoveMatches - takes amount matches from the given stack. The board is left
// unchanged when the removal is not legal.
func (that *Board) RemoveMatches(stack, amount int) error {
	if stack < 0 || stack >= len(that.stacks) {
		return fmt.Errorf("%w: stack %d", apperror.ErrStackDoesNotExist, stack)
	}

	if amount <= 0 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidAmount, amount)
	}

	if amount > that.stacks[stack] {
		return fmt.Errorf("%w: stack %d holds %d, requested %d", apperror.ErrNotEnoughMatches, stack, that.stacks[stack], amount)
	}

	that.stacks[stack] -= amount

	return nil
}

// ExistsMatch - reports whether any stack still holds a match. A board where
// this is false is the terminal position.
func (that *Board) ExistsMatch() bool {
	for _, count := range that.stacks {
		if count > 0 {
			return true
		}
	}

	return false
}

// Clone - returns a board with independent storage; mutating the clone never
// touches the original. Any speculative removal must happen on a clone.
func (that *Board) Clone() *Board {
	stacks := make([]int, len(that.stacks))
	copy(stacks, that.stacks)

	return &Board{stacks: stacks}
}

// Stacks - returns the stack counts in order as a fresh slice, safe for
// callers to range over or modify.
func (that *Board) Stacks() []int {
	stacks := make([]int, len(that.stacks))
	copy(stacks, that.stacks)

	return stacks
}
