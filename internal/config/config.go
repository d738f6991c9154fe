package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env-default:"info"`
	Stacks     int           `yaml:"stacks" env-default:"4"`
	BotDelay   time.Duration `yaml:"bot-delay" env-default:"1s"`
	Scoreboard Scoreboard    `yaml:"scoreboard"`
}

type Scoreboard struct {
	Enabled bool  `yaml:"enabled" env-default:"false"`
	Size    int   `yaml:"size" env-default:"10"`
	Redis   Redis `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine, the defaults describe a fully standalone game.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load default config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
