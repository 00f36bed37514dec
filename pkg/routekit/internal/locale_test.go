package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/routekit/pkg/routekit/constants"
)

func TestLocalize(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, SetLanguage("en"))
	})

	require.Equal(t, "esc: back", Localize(constants.MessageBackHint))

	require.NoError(t, SetLanguage("it"))
	require.Equal(t, "esc: indietro", Localize(constants.MessageBackHint))
	require.Equal(t, "OK", Localize(constants.MessageAlertOK))

	t.Run("unknown message falls back to its id", func(t *testing.T) {
		require.Equal(t, "no_such_message", Localize("no_such_message"))
	})

	t.Run("untranslated language falls back to english", func(t *testing.T) {
		require.NoError(t, SetLanguage("de"))
		require.Equal(t, "q: quit", Localize(constants.MessageQuitHint))
	})

	t.Run("invalid language", func(t *testing.T) {
		require.Error(t, SetLanguage("not a language!"))
	})
}

func TestSupportedLanguages(t *testing.T) {
	tags := SupportedLanguages()
	require.Contains(t, tags, language.English)
	require.Contains(t, tags, language.Italian)
}
