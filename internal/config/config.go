// SPDX-License-Identifier: EPL-2.0

// Package config loads solarcheck settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/ik5/audfixture/fixture"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Fixture
	FixturePath string

	// Application layout, relative to the working directory
	EngineDir string
	UIDir     string

	// Check bounds
	BuildTimeout time.Duration
	CheckTimeout time.Duration

	LogLevel zapcore.Level
}

// Load reads configuration from environment variables with defaults.
// Unparsable values fall back to their default.
func Load() Config {
	return Config{
		FixturePath: envStr("SOLARCHECK_FIXTURE_PATH", fixture.DefaultOutputPath()),

		EngineDir: envStr("SOLARCHECK_ENGINE_DIR", "engine"),
		UIDir:     envStr("SOLARCHECK_UI_DIR", "ui"),

		BuildTimeout: time.Duration(envInt("SOLARCHECK_BUILD_TIMEOUT", 300)) * time.Second,
		CheckTimeout: time.Duration(envInt("SOLARCHECK_CHECK_TIMEOUT", 5)) * time.Second,

		LogLevel: envLevel("SOLARCHECK_LOG_LEVEL", zapcore.InfoLevel),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envLevel(key string, fallback zapcore.Level) zapcore.Level {
	if v := os.Getenv(key); v != "" {
		if lvl, err := zapcore.ParseLevel(v); err == nil {
			return lvl
		}
	}
	return fallback
}
