// Package i18n provides the embedded message catalog backing all user-facing
// strings of the clparse library. Error messages and help/usage fragments are
// looked up by key so that callers can supply additional languages without
// touching the parsing engine.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/clparse/clparse/types"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage         = errors.New("invalid language in filename")
	ErrDefaultLanguageMissing  = errors.New("default language translations missing")
	ErrInvalidTranslations     = errors.New("invalid translations")
	ErrEmptyTranslations       = errors.New("empty translations")
	ErrFailedToSetString       = errors.New("failed to set string")
	ErrLanguageNotFound        = errors.New("language not found")
	ErrMissingKey              = errors.New("missing key")
)

// Bundle holds the per-language message tables and the x/text printers used
// to format them.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the bundle built from the embedded locales.
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle built from the embedded locales.
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewBundleWithFS builds a bundle from JSON locale files under dirPrefix.
// Each file name must parse as a language tag ("en.json", "de.json", ...).
func NewBundleWithFS(fs embed.FS, dirPrefix string) (*Bundle, error) {
	b := &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}

	if err := b.loadEmbedded(fs, dirPrefix); err != nil {
		return nil, err
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageMissing, b.defaultLang)
	}

	return b, nil
}

// T returns the translation for the given key in the default language.
func (b *Bundle) T(key string, args ...interface{}) string {
	b.mu.RLock()
	defaultLang := b.defaultLang
	b.mu.RUnlock()

	return b.TL(defaultLang, key, args...)
}

// TL returns the translation for the given language and key, falling back to
// the default language and finally to the key itself.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if p, exists := b.printers[lang]; exists {
		return p.Sprintf(key, args...)
	}

	if p := b.printers[b.defaultLang]; p != nil {
		return p.Sprintf(key, args...)
	}

	return key
}

// WrapErrorf wraps a sentinel error in a TranslatableError carrying the given
// message key and format arguments. The sentinel stays matchable with
// errors.Is.
func (b *Bundle) WrapErrorf(sentinel error, key string, args ...interface{}) error {
	if !b.HasKey(b.defaultLang, key) {
		return fmt.Errorf("i18n: missing translation %q: %w", key, sentinel)
	}

	return NewTranslatableError(sentinel, key, args...)
}

// AddLanguage adds a language to the bundle or merges into an existing one.
// Non-default languages must cover every key of the default language.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(translations) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)
	}

	existing := b.translations[lang]
	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}
	b.translations[lang] = merged

	if lang != b.defaultLang && existing == nil {
		if errs := b.validateAgainstDefault(lang); len(errs) > 0 {
			delete(b.translations, lang)
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errs)
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	return nil
}

// HasLanguage checks whether a language is present in the bundle.
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]
	return exists
}

// Languages returns the bundle's languages in sorted tag order.
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

// HasKey checks whether a key exists for a language.
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, exists := b.translations[lang]
	if !exists {
		return false
	}

	_, exists = translations[key]
	return exists
}

// SetDefaultLanguage sets the language used by T and WrapErrorf lookups.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaultLang = lang
}

func (b *Bundle) loadEmbedded(fs embed.FS, dirPrefix string) error {
	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return err
	}

	// The default language is loaded first so that later languages can be
	// validated against its key set.
	var deferred []types.KeyValue[language.Tag, string]
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		lang := strings.TrimSuffix(entry.Name(), ".json")
		parsedLang, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		path := filepath.Join(dirPrefix, entry.Name())
		if parsedLang == b.defaultLang {
			if err := b.loadLangFile(fs, parsedLang, path); err != nil {
				return err
			}
		} else {
			deferred = append(deferred, types.KeyValue[language.Tag, string]{Key: parsedLang, Value: path})
		}
	}

	for _, entry := range deferred {
		if err := b.loadLangFile(fs, entry.Key, entry.Value); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) loadLangFile(fs embed.FS, lang language.Tag, path string) error {
	data, err := fs.ReadFile(path)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return err
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) validateAgainstDefault(lang language.Tag) []error {
	var errs []error

	translations, exists := b.translations[lang]
	if !exists {
		return []error{fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)}
	}

	defaultTranslations := b.translations[b.defaultLang]
	for key := range defaultTranslations {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}

	return errs
}
