// Package locale provides the localized message catalogs used when answering
// gateway callbacks and when naming currencies, keyed by dot-separated paths
// (for example "response.error.invalid_ip" or "currency.RUB").
package locale

import (
	"github.com/zkelo/unitpay-go/pkg/model"
)

// Source yields localized messages by dot-separated key. The second return
// value is false when the catalog has no message for the key.
type Source interface {
	Message(key string) (string, bool)
}

// Map is a Source backed by a flat key-to-message table.
type Map map[string]string

// Message implements Source.
func (m Map) Message(key string) (string, bool) {
	msg, ok := m[key]
	return msg, ok
}

// sources maps locale codes to their message sources. Built-in locales may be
// replaced through Register; the table is meant to be fixed at process start
// and read-only afterwards.
var sources = map[string]Source{
	model.LocaleEnglish: English,
	model.LocaleRussian: Russian,
}

// Register substitutes the message source for a locale code. Call it during
// process start, before any concurrent use of the SDK; the override table is
// not synchronized.
func Register(code string, src Source) {
	sources[code] = src
}

// For returns the message source registered for the locale code.
func For(code string) (Source, bool) {
	src, ok := sources[code]
	return src, ok
}

// Default returns the source for the default locale.
func Default() Source {
	return sources[model.DefaultLocale]
}
