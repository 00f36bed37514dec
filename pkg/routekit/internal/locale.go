package internal

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFiles embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localizerMu sync.RWMutex
	localizer   *i18n.Localizer
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		localizer = i18n.NewLocalizer(bundle, language.English.String())

		files, err := fs.Glob(localeFiles, "locales/*.toml")
		if err != nil {
			GetInternalLogger().Error("Failed to list locale files", "error", err)
			return
		}
		for _, f := range files {
			if _, err := bundle.LoadMessageFileFS(localeFiles, f); err != nil {
				GetInternalLogger().Error("Failed to load locale file", "file", f, "error", err)
			}
		}
	})
	return bundle
}

// SetLanguage switches the active language. English remains the fallback for
// messages the language does not translate.
func SetLanguage(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", lang, err)
	}

	b := getBundle()

	localizerMu.Lock()
	localizer = i18n.NewLocalizer(b, tag.String(), language.English.String())
	localizerMu.Unlock()
	return nil
}

// Localize returns the message for id in the active language, or id itself
// when no translation exists.
func Localize(id string) string {
	getBundle()

	localizerMu.RLock()
	l := localizer
	localizerMu.RUnlock()

	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// SupportedLanguages lists the languages with a bundled message file.
func SupportedLanguages() []language.Tag {
	return getBundle().LanguageTags()
}
