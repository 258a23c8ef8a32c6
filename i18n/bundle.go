// Package i18n provides the message bundles used to render argbind errors and usage text.
//
// The system bundle returned by Default embeds English and German translations. A Registry may
// switch its language with SetLanguage; errors created from the errs package follow the provider
// installed with errs.UpdateMessageProvider.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrMissingKey                         = errors.New("missing key")
)

// Bundle holds translations per language
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
}

var (
	defaultBundleOnce sync.Once
	defaultBundle     *Bundle
)

// Default returns the shared system bundle
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		var err error
		defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
	})

	return defaultBundle
}

// NewBundle returns a fresh bundle loaded with the embedded system translations
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without translations whose default language is English
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dirPrefix. English must be present.
func NewBundleWithFS(fs embed.FS, dirPrefix string) (*Bundle, error) {
	b := NewEmptyBundle()

	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return nil, err
	}

	// the default language is loaded first so that other languages validate against it
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.HasPrefix(entries[i].Name(), b.defaultLang.String()+".")
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		data, err := fs.ReadFile(path.Join(dirPrefix, entry.Name()))
		if err != nil {
			return nil, err
		}
		if err := b.LoadFromString(lang, string(data)); err != nil {
			return nil, err
		}
	}

	if !b.HasLanguage(b.defaultLang) {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// LoadFromString adds translations for lang from a flat JSON object
func (b *Bundle) LoadFromString(lang language.Tag, jsonData string) error {
	var translations map[string]string
	if err := json.Unmarshal([]byte(jsonData), &translations); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, err)
	}

	return b.AddLanguage(lang, translations)
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.GetDefaultLanguage(), key, args...)
}

// TL returns the translation for the given language and key. Unknown keys are returned verbatim.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	msg, ok := b.lookup(lang, key)
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}

	return b.printer(lang).Sprintf(msg, args...)
}

// Message returns the untranslated format string for key in the default language, falling back to English
func (b *Bundle) Message(key string) (string, bool) {
	if msg, ok := b.lookup(b.GetDefaultLanguage(), key); ok {
		return msg, true
	}
	return b.lookup(language.English, key)
}

// AddLanguage adds a new language to the bundle or merges keys into an existing one.
// A new non-default language must provide every key of the default language.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(translations) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)
	}

	existing, known := b.translations[lang]
	if !known && lang != b.defaultLang {
		if defaults, ok := b.translations[b.defaultLang]; ok {
			for key := range defaults {
				if _, ok := translations[key]; !ok {
					return fmt.Errorf("%w: %s: %w: %q", ErrInvalidTranslations, lang, ErrMissingKey, key)
				}
			}
		}
	}

	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		if err := b.catalog.SetString(lang, k, v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, k, err)
		}
		merged[k] = v
	}
	b.translations[lang] = merged
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))

	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]
	return exists
}

// Languages returns the supported languages sorted by tag
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

// MatchLanguage returns the supported language closest to lang
func (b *Bundle) MatchLanguage(lang language.Tag) language.Tag {
	supported := b.Languages()
	if len(supported) == 0 {
		return b.GetDefaultLanguage()
	}
	matched, _, confidence := language.NewMatcher(supported).Match(lang)
	if confidence == language.No {
		return b.GetDefaultLanguage()
	}
	base, _ := matched.Base()
	for _, s := range supported {
		if sb, _ := s.Base(); sb == base {
			return s
		}
	}

	return matched
}

// SetDefaultLanguage sets the default language
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaultLang = lang
}

// GetDefaultLanguage returns the default language
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

func (b *Bundle) lookup(lang language.Tag, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if translations, ok := b.translations[lang]; ok {
		if msg, ok := translations[key]; ok {
			return msg, true
		}
	}
	if translations, ok := b.translations[b.defaultLang]; ok {
		if msg, ok := translations[key]; ok {
			return msg, true
		}
	}

	return "", false
}

func (b *Bundle) printer(lang language.Tag) *message.Printer {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if p, ok := b.printers[lang]; ok {
		return p
	}

	return message.NewPrinter(lang)
}
