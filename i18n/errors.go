package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError is an error that carries a message key and format
// arguments so the rendered text can be localized after the fact.
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider resolves a message key to its default-language text.
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError is the TranslatableError implementation returned by
// Bundle.WrapErrorf. errors.Is matches it against its sentinel.
type TrError struct {
	sentinel        error
	key             string
	args            []interface{}
	wrapped         error
	messageProvider MessageProvider
}

type bundleProvider struct {
	bundle *Bundle
	lang   language.Tag
}

func (p *bundleProvider) GetMessage(key string) string {
	p.bundle.mu.RLock()
	defer p.bundle.mu.RUnlock()
	if msg, ok := p.bundle.translations[p.lang][key]; ok {
		return msg
	}
	return key
}

// NewTranslatableError builds a TrError around a sentinel, a message key and
// format arguments.
func NewTranslatableError(sentinel error, key string, args ...interface{}) *TrError {
	return &TrError{
		sentinel:        sentinel,
		key:             key,
		args:            args,
		messageProvider: getDefaultProvider(),
	}
}

// Error returns the message for the key, formatted with the arguments.
func (e *TrError) Error() string {
	msg := e.messageProvider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with new format arguments.
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a copy of the error wrapping another error.
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is matches against the sentinel error.
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel || target == e
}

// Key returns the translation key.
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments.
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error, if any.
func (e *TrError) Unwrap() error {
	return e.wrapped
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by new errors.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = &bundleProvider{
			bundle: Default(),
			lang:   language.English,
		}
	}
	return defaultProvider
}
