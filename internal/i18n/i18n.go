// Package i18n looks up UI strings for the active language.
package i18n

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Language represents a supported locale.
type Language string

const (
	LangEN Language = "en"
)

var catalogs = map[Language]map[string]string{
	LangEN: en,
}

var current atomic.Value

func init() {
	current.Store(LangEN)
}

// SetLanguage changes the active locale.
// Unrecognized values fall back to English.
func SetLanguage(lang string) {
	if _, ok := catalogs[Language(lang)]; ok {
		current.Store(Language(lang))
		return
	}
	current.Store(LangEN)
}

// Current returns the active language.
func Current() Language {
	return current.Load().(Language)
}

// Supported lists the available language codes, sorted.
func Supported() []string {
	langs := make([]string, 0, len(catalogs))
	for l := range catalogs {
		langs = append(langs, string(l))
	}
	sort.Strings(langs)
	return langs
}

// T returns the translated string for the given key.
// If the key is not found, the English string is used, then the key itself.
func T(key string) string {
	if v, ok := catalogs[Current()][key]; ok {
		return v
	}
	if v, ok := en[key]; ok {
		return v
	}
	return key
}

// Tf returns a formatted translated string.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}
