package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ghost91-/nimgame/internal/entity"
	"github.com/ghost91-/nimgame/internal/game"
)

const (
	modeQuit       = 0
	modeHumanHuman = 1
	modeHumanBot   = 2
	modeBotBot     = 3
)

// Scoreboard persists finished match outcomes. Optional, the menu works
// without one.
type Scoreboard interface {
	Record(ctx context.Context, result *entity.Result) error
	Recent(ctx context.Context, limit int) ([]*entity.Result, error)
}

// Menu collects the opponent configuration and the board size, then hands a
// fresh game to the turn loop. It keeps running until the user quits or the
// input stream ends.
type Menu struct {
	logger   *slog.Logger
	reader   *Reader
	renderer *Renderer

	scoreboard     Scoreboard
	scoreboardSize int

	defaultStacks int
	botDelay      time.Duration
}

func NewMenu(logger *slog.Logger, reader *Reader, renderer *Renderer, scoreboard Scoreboard, scoreboardSize, defaultStacks int, botDelay time.Duration) *Menu {
	return &Menu{
		logger:   logger.With("component", "menu"),
		reader:   reader,
		renderer: renderer,

		scoreboard:     scoreboard,
		scoreboardSize: scoreboardSize,

		defaultStacks: defaultStacks,
		botDelay:      botDelay,
	}
}

// Run - the main menu loop. Returns nil on a clean quit.
func (that *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		that.renderer.Info("matchstick game")
		that.showScoreboard(ctx)
		that.renderer.Info("  1) human vs human")
		that.renderer.Info("  2) human vs bot")
		that.renderer.Info("  3) bot vs bot")
		that.renderer.Info("  0) quit")

		mode, err := that.reader.ReadPositiveInteger()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			that.renderer.Error(err.Error())
			continue
		}

		if mode == modeQuit {
			return nil
		}

		if mode > modeBotBot {
			that.renderer.Error(fmt.Sprintf("unknown menu entry %d", mode))
			continue
		}

		if err = that.play(ctx, mode); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("game failed: %w", err)
		}
	}
}

func (that *Menu) play(ctx context.Context, mode int) error {
	stacks, err := that.readStackCount()
	if err != nil {
		return err
	}

	playerOne, playerTwo := that.buildPlayers(mode)

	g := game.New(that.logger, that.renderer, entity.NewBoard(stacks), playerOne, playerTwo)

	winner, err := g.Run(ctx)
	if err != nil {
		return fmt.Errorf("turn loop failed: %w", err)
	}

	loser := playerOne
	if winner == playerOne {
		loser = playerTwo
	}

	that.recordResult(ctx, winner, loser, stacks, g.Turns())

	return nil
}

// readStackCount - prompts until the user names a playable board size.
func (that *Menu) readStackCount() (int, error) {
	for {
		that.renderer.Info(fmt.Sprintf("how many stacks? (0 for the default of %d)", that.defaultStacks))

		stacks, err := that.reader.ReadPositiveInteger()
		if errors.Is(err, io.EOF) {
			return 0, err
		}

		if err != nil {
			that.renderer.Error(err.Error())
			continue
		}

		if stacks == 0 {
			return that.defaultStacks, nil
		}

		return stacks, nil
	}
}

func (that *Menu) buildPlayers(mode int) (game.Player, game.Player) {
	switch mode {
	case modeHumanHuman:
		return game.NewHumanPlayer("player 1", that.reader), game.NewHumanPlayer("player 2", that.reader)
	case modeHumanBot:
		return game.NewHumanPlayer("you", that.reader), game.NewBotPlayer("the bot", that.botDelay)
	default:
		return game.NewBotPlayer("bot 1", that.botDelay), game.NewBotPlayer("bot 2", that.botDelay)
	}
}

func (that *Menu) recordResult(ctx context.Context, winner, loser game.Player, stacks, turns int) {
	if that.scoreboard == nil {
		return
	}

	result := &entity.Result{
		Winner:     winner.Name(),
		Loser:      loser.Name(),
		Stacks:     stacks,
		Turns:      turns,
		FinishedAt: time.Now(),
	}

	if err := that.scoreboard.Record(ctx, result); err != nil {
		that.logger.Error("failed to record result", "error", err)
	}
}

func (that *Menu) showScoreboard(ctx context.Context) {
	if that.scoreboard == nil {
		return
	}

	results, err := that.scoreboard.Recent(ctx, that.scoreboardSize)
	if err != nil {
		that.logger.Error("failed to load scoreboard", "error", err)
		return
	}

	if len(results) == 0 {
		return
	}

	that.renderer.Info("recent games:")
	for _, result := range results {
		that.renderer.Info(fmt.Sprintf("  %s beat %s in %d turns on %d stacks (%s)",
			result.Winner, result.Loser, result.Turns, result.Stacks, result.FinishedAt.Format("2006-01-02 15:04")))
	}
}
