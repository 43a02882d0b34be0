package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds runtime settings that may come from the environment.
// Command-line flags take precedence; these only supply flag defaults.
type Env struct {
	FPS        int    `env:"SHOOTER_FPS"        envDefault:"60"`
	Seed       int64  `env:"SHOOTER_SEED"       envDefault:"0"`
	ConfigPath string `env:"SHOOTER_CONFIG"`
	Difficulty string `env:"SHOOTER_DIFFICULTY"`
	Backend    string `env:"SHOOTER_BACKEND"    envDefault:"tea"`
	Sound      bool   `env:"SHOOTER_SOUND"      envDefault:"false"`
	LogFile    string `env:"SHOOTER_LOG_FILE"`
	LogLevel   string `env:"SHOOTER_LOG_LEVEL"  envDefault:"info"`
}

// LoadEnv reads runtime settings from the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}
