// SPDX-License-Identifier: EPL-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/ik5/audfixture/fixture"
)

var envVars = []string{
	"SOLARCHECK_FIXTURE_PATH", "SOLARCHECK_ENGINE_DIR", "SOLARCHECK_UI_DIR",
	"SOLARCHECK_BUILD_TIMEOUT", "SOLARCHECK_CHECK_TIMEOUT", "SOLARCHECK_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, fixture.DefaultOutputPath(), cfg.FixturePath)
	assert.Equal(t, "engine", cfg.EngineDir)
	assert.Equal(t, "ui", cfg.UIDir)
	assert.Equal(t, 300*time.Second, cfg.BuildTimeout)
	assert.Equal(t, 5*time.Second, cfg.CheckTimeout)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOLARCHECK_FIXTURE_PATH", "/tmp/fixture.wav")
	t.Setenv("SOLARCHECK_ENGINE_DIR", "../engine")
	t.Setenv("SOLARCHECK_UI_DIR", "../ui")
	t.Setenv("SOLARCHECK_BUILD_TIMEOUT", "600")
	t.Setenv("SOLARCHECK_CHECK_TIMEOUT", "10")
	t.Setenv("SOLARCHECK_LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "/tmp/fixture.wav", cfg.FixturePath)
	assert.Equal(t, "../engine", cfg.EngineDir)
	assert.Equal(t, "../ui", cfg.UIDir)
	assert.Equal(t, 600*time.Second, cfg.BuildTimeout)
	assert.Equal(t, 10*time.Second, cfg.CheckTimeout)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
}

func TestLoadInvalidFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SOLARCHECK_BUILD_TIMEOUT", "abc")
	t.Setenv("SOLARCHECK_CHECK_TIMEOUT", "-3")
	t.Setenv("SOLARCHECK_LOG_LEVEL", "loud")

	cfg := Load()

	assert.Equal(t, 300*time.Second, cfg.BuildTimeout)
	assert.Equal(t, 5*time.Second, cfg.CheckTimeout)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
}
