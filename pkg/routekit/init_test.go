package routekit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/routekit/pkg/routekit/constants"
)

func TestApplyEnvironment(t *testing.T) {
	base := Options{LogLevel: "info", InternalLogLevel: "error", Language: "en"}

	t.Run("no overrides", func(t *testing.T) {
		t.Setenv(constants.EnvironmentEnvVar, "")
		t.Setenv(constants.DebugEnvVar, "")
		t.Setenv(constants.LanguageEnvVar, "")
		require.Equal(t, base, applyEnvironment(base))
	})

	t.Run("development mode", func(t *testing.T) {
		t.Setenv(constants.EnvironmentEnvVar, constants.Development)
		t.Setenv(constants.DebugEnvVar, "")
		t.Setenv(constants.LanguageEnvVar, "")
		require.True(t, constants.IsDevMode())

		got := applyEnvironment(base)
		require.True(t, got.Console)
		require.Equal(t, "DEBUG", got.InternalLogLevel)
		require.Equal(t, "info", got.LogLevel, "application level is left alone")
	})

	t.Run("other environments", func(t *testing.T) {
		t.Setenv(constants.EnvironmentEnvVar, "PROD")
		t.Setenv(constants.DebugEnvVar, "")
		t.Setenv(constants.LanguageEnvVar, "")
		require.False(t, constants.IsDevMode())
		require.False(t, applyEnvironment(base).Console)
	})

	t.Run("debug and language", func(t *testing.T) {
		t.Setenv(constants.EnvironmentEnvVar, "")
		t.Setenv(constants.DebugEnvVar, "1")
		t.Setenv(constants.LanguageEnvVar, "it")

		got := applyEnvironment(base)
		require.False(t, got.Console)
		require.Equal(t, "DEBUG", got.InternalLogLevel)
		require.Equal(t, "it", got.Language)
	})
}
