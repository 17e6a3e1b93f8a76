// Package i18n holds the English and Hindi message catalogs and the lookup
// rules: fall back to English when a Hindi string is missing, and surface a
// completely unknown key loudly in the logs instead of failing the request.
package i18n

import (
	"strings"

	"go.uber.org/zap"
)

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleHI Locale = "hi"
)

const fallbackLocale = LocaleEN

// ParseLocale maps a lang query parameter or Accept-Language prefix onto a
// supported locale, defaulting to def.
func ParseLocale(s string, def Locale) Locale {
	switch {
	case strings.HasPrefix(strings.ToLower(s), "hi"):
		return LocaleHI
	case strings.HasPrefix(strings.ToLower(s), "en"):
		return LocaleEN
	}
	return def
}

type Bundle struct {
	catalogs map[Locale]map[Key]string
	logger   *zap.Logger
}

func NewBundle(logger *zap.Logger) *Bundle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bundle{
		catalogs: map[Locale]map[Key]string{
			LocaleEN: catalogEN,
			LocaleHI: catalogHI,
		},
		logger: logger,
	}
}

// Lookup resolves key in the requested locale. A key absent from the locale is
// served from English; a key absent everywhere is logged and echoed back
// verbatim so the gap is visible but never fatal.
func (b *Bundle) Lookup(loc Locale, key Key) string {
	if msgs, ok := b.catalogs[loc]; ok {
		if s, ok := msgs[key]; ok {
			return s
		}
	}
	if s, ok := b.catalogs[fallbackLocale][key]; ok {
		if loc != fallbackLocale {
			b.logger.Warn("missing translation, falling back to English",
				zap.String("locale", string(loc)),
				zap.String("key", string(key)))
		}
		return s
	}
	b.logger.Warn("unknown message key", zap.String("key", string(key)))
	return string(key)
}
