package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghost91-/nimgame/internal/config"
	"github.com/ghost91-/nimgame/internal/repository"
	"github.com/ghost91-/nimgame/internal/repository/storage"
	"github.com/ghost91-/nimgame/transport/terminal"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var scoreboard terminal.Scoreboard
	if conf.Scoreboard.Enabled {
		if conf.Scoreboard.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, conf.Scoreboard.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		scoreboard = repository.NewResultRepository(redisStorage.Connection)
	}

	reader := terminal.NewReader(os.Stdin, os.Stdout)
	renderer := terminal.NewRenderer(os.Stdout)
	menu := terminal.NewMenu(logger, reader, renderer, scoreboard, conf.Scoreboard.Size, conf.Stacks, conf.BotDelay)

	log.Info("Starting matchstick game", "stacks", conf.Stacks, "scoreboard", conf.Scoreboard.Enabled)

	if err := menu.Run(ctx); err != nil {
		return fmt.Errorf("menu loop failed: %w", err)
	}

	return nil
}
