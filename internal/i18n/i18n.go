// Package i18n localizes caller-facing response messages. The API's primary
// audience is Uzbek-speaking, so uz is the usual default; clients pick
// another locale through the Accept-Language header.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// supported lists the locales shipped in locales/; the first entry is the
// fallback when matching fails entirely.
var supported = []language.Tag{language.Uzbek, language.English}

var (
	bundle        *i18n.Bundle
	matcher       language.Matcher
	defaultLocale string
)

type localeKey struct{}

// Init parses the embedded locale files and fixes the default locale.
func Init(defLocale string) error {
	defaultLocale = supported[0].String()
	if defLocale != "" {
		defaultLocale = defLocale
	}

	bundle = i18n.NewBundle(supported[0])
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	matcher = language.NewMatcher(supported)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("read locales dir: %w", err)
	}
	for _, e := range entries {
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return fmt.Errorf("read locale %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return fmt.Errorf("parse locale %s: %w", e.Name(), err)
		}
	}
	return nil
}

// Match resolves an Accept-Language header value to a supported locale.
// An empty or unparsable header yields the default locale.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return defaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return defaultLocale
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return defaultLocale
	}
	return supported[idx].String()
}

// WithLocale returns a context carrying the given locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// Locale extracts the locale from the context, falling back to the default.
func Locale(ctx context.Context) string {
	if v, ok := ctx.Value(localeKey{}).(string); ok && v != "" {
		return v
	}
	return defaultLocale
}

// T translates a message ID in the context's locale. Unknown IDs come back
// unchanged so a missing translation never hides an error from the caller.
func T(ctx context.Context, messageID string, templateData ...map[string]any) string {
	l := i18n.NewLocalizer(bundle, Locale(ctx), defaultLocale)

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(templateData) > 0 && templateData[0] != nil {
		cfg.TemplateData = templateData[0]
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}
