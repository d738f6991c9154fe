package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ghost91-/nimgame/internal/apperror"
	"github.com/ghost91-/nimgame/internal/entity"
)

const (
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

var (
	ErrNothingToPlay        = errors.New("board holds no matches")
	ErrBotPlayedInvalidTurn = errors.New("bot produced an invalid turn")
)

// Notifier receives board snapshots and status text. Every state transition
// and every retried error is reported here before the next action is
// requested.
type Notifier interface {
	ShowBoard(board *entity.Board)
	Info(message string)
	Error(message string)
}

// Game owns one board and an ordered pair of players and drives the turn
// loop. It is strictly single-threaded; the board is mutated only here.
type Game struct {
	logger   *slog.Logger
	notifier Notifier

	board   *entity.Board
	players [2]Player

	status  string
	current int
	winner  int
	turns   int
}

func New(logger *slog.Logger, notifier Notifier, board *entity.Board, playerOne, playerTwo Player) *Game {
	return &Game{
		logger:   logger.With("component", "game"),
		notifier: notifier,

		board:   board,
		players: [2]Player{playerOne, playerTwo},
		status:  StatusPlaying,
	}
}

// Run - alternates turns until the board is empty and returns the winner, the
// player whose move removed the last match. A rejected turn is reported via
// the notifier and the same player retries without consuming the turn; the
// same situation with a bot aborts the game instead.
func (that *Game) Run(ctx context.Context) (Player, error) {
	log := that.logger.With("method", "Run")

	if that.status == StatusFinished {
		return nil, apperror.ErrGameFinished
	}

	if !that.board.ExistsMatch() {
		return nil, ErrNothingToPlay
	}

	for that.status == StatusPlaying {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game aborted: %w", err)
		}

		player := that.players[that.current]
		that.notifier.ShowBoard(that.board)
		that.notifier.Info(fmt.Sprintf("%s, it is your turn: pick a stack and how many matches to take", player.Name()))

		turn, err := player.DoTurn(ctx, that.board)
		if err != nil {
			if err = that.retryOrFail(player, err); err != nil {
				return nil, err
			}
			continue
		}

		if err = that.board.RemoveMatches(turn.Stack, turn.Matches); err != nil {
			if err = that.retryOrFail(player, err); err != nil {
				return nil, err
			}
			continue
		}

		that.turns++
		log.Debug("turn applied", "player", player.Name(), "stack", turn.Stack, "matches", turn.Matches)

		if !that.board.ExistsMatch() {
			that.status = StatusFinished
			that.winner = that.current
			break
		}

		that.current = 1 - that.current
	}

	winner := that.players[that.winner]
	that.notifier.ShowBoard(that.board)
	that.notifier.Info(fmt.Sprintf("%s wins the game", winner.Name()))

	return winner, nil
}

// retryOrFail - reports a rejected turn. Humans retry in place with no retry
// limit; a closed input source or an invalid bot turn ends the game.
func (that *Game) retryOrFail(player Player, cause error) error {
	if player.IsBot() {
		return fmt.Errorf("%w: %s: %v", ErrBotPlayedInvalidTurn, player.Name(), cause)
	}

	if errors.Is(cause, io.EOF) {
		return fmt.Errorf("input source closed: %w", cause)
	}

	that.logger.Debug("turn rejected", "player", player.Name(), "error", cause)
	that.notifier.Error(cause.Error())

	return nil
}

// Turns - returns the number of applied turns so far.
func (that *Game) Turns() int {
	return that.turns
}

func (that *Game) IsFinished() bool {
	return that.status == StatusFinished
}
