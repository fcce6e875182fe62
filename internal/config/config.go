package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries module settings read from the Nakama runtime environment.
type Config struct {
	BotsEnabled bool   `env:"SAGETRAIL_BOTS_ENABLED" envDefault:"true"`
	SwapTarget  string `env:"SAGETRAIL_SWAP_TARGET" envDefault:"Zilu"`
	DefaultGoal int    `env:"SAGETRAIL_DEFAULT_GOAL" envDefault:"10"`
	DefaultMode string `env:"SAGETRAIL_DEFAULT_MODE" envDefault:"normal"`

	VoiceSecret string `env:"SAGETRAIL_VOICE_SECRET"`
	VoiceIssuer string `env:"SAGETRAIL_VOICE_ISSUER"`
	VoiceDomain string `env:"SAGETRAIL_VOICE_DOMAIN"`

	WelcomeHonor int64 `env:"SAGETRAIL_WELCOME_HONOR" envDefault:"100"`
	VictoryHonor int64 `env:"SAGETRAIL_VICTORY_HONOR" envDefault:"25"`
}

// FromRuntimeEnv parses module settings from the env map Nakama exposes under
// RUNTIME_CTX_ENV.
func FromRuntimeEnv(runtimeEnv map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: runtimeEnv}); err != nil {
		return Config{}, fmt.Errorf("parse runtime env: %w", err)
	}
	if cfg.DefaultGoal < 1 {
		cfg.DefaultGoal = 10
	}
	return cfg, nil
}
