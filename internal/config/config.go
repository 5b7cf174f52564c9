package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	FirstPlayer string `yaml:"first-player" env:"FIRST_PLAYER" env-default:"X"`
	ScriptPath  string `yaml:"script-path" env:"SCRIPT_PATH"`
	PlayAgain   bool   `yaml:"play-again" env:"PLAY_AGAIN" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment
// when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
