package game

import (
	"context"
	"fmt"
	"time"

	"github.com/ghost91-/nimgame/internal/entity"
	"github.com/ghost91-/nimgame/internal/nim"
)

// InputReader is the collaborator a human player reads its moves from.
type InputReader interface {
	ReadPositiveInteger() (int, error)
}

// Player produces one candidate turn per call from a read-only board view.
type Player interface {
	Name() string
	// IsBot reports whether an invalid turn from this player is a programming
	// defect rather than recoverable input.
	IsBot() bool
	DoTurn(ctx context.Context, board *entity.Board) (entity.Turn, error)
}

type HumanPlayer struct {
	name  string
	input InputReader
}

func NewHumanPlayer(name string, input InputReader) *HumanPlayer {
	return &HumanPlayer{
		name:  name,
		input: input,
	}
}

func (that *HumanPlayer) Name() string {
	return that.name
}

func (that *HumanPlayer) IsBot() bool {
	return false
}

// DoTurn - reads the stack number and the match count from the input
// collaborator. The turn is returned unvalidated; retrying on a bad turn is
// the game loop's job, not the player's.
func (that *HumanPlayer) DoTurn(_ context.Context, _ *entity.Board) (entity.Turn, error) {
	stack, err := that.input.ReadPositiveInteger()
	if err != nil {
		return entity.Turn{}, fmt.Errorf("failed to read stack number: %w", err)
	}

	matches, err := that.input.ReadPositiveInteger()
	if err != nil {
		return entity.Turn{}, fmt.Errorf("failed to read match count: %w", err)
	}

	// Stacks are shown 1-indexed, the board counts from zero.
	return entity.Turn{Stack: stack - 1, Matches: matches}, nil
}

type BotPlayer struct {
	name  string
	delay time.Duration
}

func NewBotPlayer(name string, delay time.Duration) *BotPlayer {
	return &BotPlayer{
		name:  name,
		delay: delay,
	}
}

func (that *BotPlayer) Name() string {
	return that.name
}

func (that *BotPlayer) IsBot() bool {
	return true
}

// DoTurn - computes a perfect-play turn from the board snapshot. The bot keeps
// no state between calls.
func (that *BotPlayer) DoTurn(ctx context.Context, board *entity.Board) (entity.Turn, error) {
	that.think(ctx)

	turn, err := nim.BestTurn(board)
	if err != nil {
		return entity.Turn{}, fmt.Errorf("bot failed to pick a turn: %w", err)
	}

	return turn, nil
}

// think - pacing only, no effect on the chosen turn. A zero delay skips the
// pause entirely.
func (that *BotPlayer) think(ctx context.Context) {
	if that.delay <= 0 {
		return
	}

	select {
	case <-time.After(that.delay):
	case <-ctx.Done():
	}
}
