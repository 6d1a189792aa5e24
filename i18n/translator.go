// Package i18n localizes user-facing status and error messages.
// File: i18n/translator.go
package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"go-ctf-event/eventphase"
	"go-ctf-event/logger"
)

//go:embed active.*.toml
var localeFS embed.FS

// T renders user-facing messages.
type T interface {
	// T renders the message identified by key for locale. locale may be a
	// language tag or a raw Accept-Language header value.
	T(locale, key string, data map[string]any) string
}

var _ T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator loads the embedded active.*.toml files. Unknown locales
// fall back to Spanish.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.Spanish
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.es.toml", "active.en.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error.Printf("[i18n] failed to load %s: %v", file, err)
		}
	}

	return &Translator{bundle: bundle, defaultLanguage: tag}
}

// T falls back to the default locale, then to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		logger.Warn.Printf("[i18n] localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}

// StatusMessage renders the countdown banner for a display state. The
// countdown shown is the one the status refers to.
func StatusMessage(tr T, locale string, d eventphase.DisplayState) string {
	var data map[string]any
	switch d.Status {
	case eventphase.StatusStartsIn, eventphase.StatusEndsIn:
		if d.Primary != nil {
			data = map[string]any{"Countdown": d.Primary.String()}
		}
	case eventphase.StatusRegistrationClosesIn:
		if d.Secondary != nil {
			data = map[string]any{"Countdown": d.Secondary.String()}
		}
	}
	return tr.T(locale, "status."+string(d.Status), data)
}

// PhaseLabel renders the short phase name.
func PhaseLabel(tr T, locale string, p eventphase.Phase) string {
	return tr.T(locale, "phase."+p.String(), nil)
}
