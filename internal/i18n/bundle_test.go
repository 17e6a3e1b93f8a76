package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	b := NewBundle(nil)

	t.Run("resolves in requested locale", func(t *testing.T) {
		assert.Equal(t, "Application Submitted", b.Lookup(LocaleEN, KeyProgressStepSubmitted))
		assert.Equal(t, "आवेदन जमा हुआ", b.Lookup(LocaleHI, KeyProgressStepSubmitted))
	})

	t.Run("falls back to English for unknown locale", func(t *testing.T) {
		assert.Equal(t, "Good News!", b.Lookup(Locale("ta"), KeyAdvisoryApprovedTitle))
	})

	t.Run("echoes unknown key instead of failing", func(t *testing.T) {
		assert.Equal(t, "no_such_key", b.Lookup(LocaleEN, Key("no_such_key")))
	})
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleHI, ParseLocale("hi", LocaleEN))
	assert.Equal(t, LocaleHI, ParseLocale("hi-IN", LocaleEN))
	assert.Equal(t, LocaleEN, ParseLocale("en-US", LocaleHI))
	assert.Equal(t, LocaleEN, ParseLocale("", LocaleEN))
	assert.Equal(t, LocaleHI, ParseLocale("fr", LocaleHI))
}

func TestHindiCatalogCoversEnglish(t *testing.T) {
	for key := range catalogEN {
		if _, ok := catalogHI[key]; !ok {
			t.Fatalf("key %s has no Hindi translation", key)
		}
	}
}
