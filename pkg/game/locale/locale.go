// Package locale holds the translated game text. Catalogs are gettext .po files
// embedded in the binary; Dutch is the default language.
package locale

import (
	"embed"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

//go:embed po/*.po
var catalogs embed.FS

// Supported lists the languages with a catalog, default first.
var Supported = []language.Tag{language.Dutch, language.English}

var matcher = language.NewMatcher(Supported)

type catalog struct {
	lang string
	po   *gotext.Po
}

var current atomic.Pointer[catalog]

// Code returns the short code ("nl", "en") for a supported tag.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Match picks the best supported language for the given preferences, which may
// be BCP 47 tags or POSIX locale names such as "en_GB.UTF-8". Empty preferences
// are skipped; with none left the default language is returned.
func Match(prefs ...string) string {
	cleaned := make([]string, 0, len(prefs))
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if i := strings.IndexAny(p, ".@"); i >= 0 {
			p = p[:i]
		}
		p = strings.ReplaceAll(p, "_", "-")
		if p == "" || p == "C" || p == "POSIX" {
			continue
		}
		cleaned = append(cleaned, p)
	}
	if len(cleaned) == 0 {
		return Code(Supported[0])
	}
	_, index := language.MatchStrings(matcher, cleaned...)
	return Code(Supported[index])
}

// Load makes lang the active catalog. Unsupported languages fall back to the
// closest supported one.
func Load(lang string) error {
	code := Match(lang)
	data, err := catalogs.ReadFile("po/" + code + ".po")
	if err != nil {
		return fmt.Errorf("reading %s catalog: %w", code, err)
	}

	po := gotext.NewPo()
	po.Parse(data)
	current.Store(&catalog{lang: code, po: po})
	return nil
}

// Current returns the code of the active catalog, or "" before Load.
func Current() string {
	if c := current.Load(); c != nil {
		return c.lang
	}
	return ""
}

// Get returns the translation of key. Before a catalog is loaded the
// package-level gotext configuration is used, which returns the key itself
// when nothing is configured.
func Get(key string) string {
	if c := current.Load(); c != nil {
		return c.po.Get(key)
	}
	return gotext.Get(key)
}

// Getf returns the translation of key with args filled into its verbs.
func Getf(key string, args ...any) string {
	return fmt.Sprintf(Get(key), args...)
}

// Name returns the display name of a language code in that language.
func Name(code string) string {
	switch code {
	case "nl":
		return "Nederlands"
	case "en":
		return "English"
	}
	return code
}

// Next returns the supported language after code, wrapping around.
func Next(code string) string {
	for i, tag := range Supported {
		if Code(tag) == code {
			return Code(Supported[(i+1)%len(Supported)])
		}
	}
	return Code(Supported[0])
}
