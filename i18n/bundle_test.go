package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBundle_DefaultLoadsEmbeddedLocales(t *testing.T) {
	b := Default()
	require.NotNil(t, b)

	assert.True(t, b.HasLanguage(language.English))
	assert.True(t, b.HasLanguage(language.German))
	assert.Equal(t, language.English, b.GetDefaultLanguage())
	assert.Equal(t, "unknown option: --x", b.T("argbind.error.bind.unknown_option", "--x"))
	assert.Equal(t, "unbekannte Option: --x", b.TL(language.German, "argbind.error.bind.unknown_option", "--x"))
}

func TestBundle_UnknownKeyIsReturnedVerbatim(t *testing.T) {
	b := Default()
	assert.Equal(t, "no.such.key", b.T("no.such.key"))
	assert.Equal(t, "no.such.key", b.TL(language.German, "no.such.key", 1))
}

func TestBundle_AddLanguage(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{
		"greeting": "hello %s",
		"farewell": "bye",
	}))

	t.Run("missing keys are rejected for new languages", func(t *testing.T) {
		err := b.AddLanguage(language.French, map[string]string{"greeting": "bonjour %s"})
		assert.ErrorIs(t, err, ErrInvalidTranslations)
		assert.ErrorIs(t, err, ErrMissingKey)
		assert.False(t, b.HasLanguage(language.French))
	})

	t.Run("complete languages are accepted", func(t *testing.T) {
		err := b.AddLanguage(language.French, map[string]string{"greeting": "bonjour %s", "farewell": "au revoir"})
		require.NoError(t, err)
		assert.Equal(t, "bonjour Ada", b.TL(language.French, "greeting", "Ada"))
	})

	t.Run("empty translations are rejected", func(t *testing.T) {
		assert.ErrorIs(t, b.AddLanguage(language.Spanish, nil), ErrEmptyTranslations)
	})

	t.Run("fallback to default language", func(t *testing.T) {
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"only.en": "english only"}))
		assert.Equal(t, "english only", b.TL(language.French, "only.en"))
	})

	assert.Equal(t, []language.Tag{language.English, language.French}, b.Languages())
}

func TestBundle_MatchLanguage(t *testing.T) {
	b := Default()
	assert.Equal(t, language.German, b.MatchLanguage(language.MustParse("de-CH")))
	assert.Equal(t, language.English, b.MatchLanguage(language.MustParse("en-GB")))
	assert.Equal(t, language.English, b.MatchLanguage(language.Japanese))
}

func TestBundle_LoadFromStringRejectsInvalidJSON(t *testing.T) {
	b := NewEmptyBundle()
	assert.ErrorIs(t, b.LoadFromString(language.English, "{not json"), ErrInvalidTranslations)
}

func TestBundle_NewBundleLoadsEveryLocale(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	for _, lang := range []language.Tag{language.English, language.German} {
		assert.True(t, b.HasLanguage(lang))
		assert.Equal(t, "unresolved placeholder ${home}", b.T("argbind.error.bind.unresolved_placeholder", "${home}"))
		assert.NotEqual(t, "argbind.error.bind.unresolved_placeholder", b.TL(lang, "argbind.error.bind.unresolved_placeholder", "${home}"))
	}
	assert.Equal(t, "nicht aufgelöster Platzhalter ${home}", b.TL(language.German, "argbind.error.bind.unresolved_placeholder", "${home}"))
}

func TestBundle_AddLanguageAcceptsDollarArguments(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"k": "value %s"}))
	assert.Equal(t, "value ${x}", b.T("k", "${x}"))
}
