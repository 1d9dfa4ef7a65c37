// Package i18n translates the messages of the i18nstr command itself.
//
// Translations are gettext catalogs embedded in the binary. The command
// builds its messages with package builder and renders them through
// Resolver, so its own output goes through the same template pipeline it
// offers to users.
//
//	i18n.Init("") // LANGUAGE, LC_ALL, LC_MESSAGES, LANG
//	fmt.Println(builder.Localize(msg, i18n.Resolver()))
package i18n

import (
	"embed"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/minios-linux/i18nstr/i18nstr"
)

// Layout: locales/{lang}/LC_MESSAGES/i18nstr.po
//
//go:embed all:locales
var locales embed.FS

const domain = "i18nstr"

var po *gotext.Locale

// Init loads the catalog for lang, detecting it from the environment when
// empty. Call it once before the first T.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}

	po = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	po.AddDomain(domain)
	po.SetDomain(domain)
}

// T translates a template body. Unknown bodies come back unchanged.
func T(body string) string {
	if po == nil || body == "" {
		return body
	}
	return po.Get(body)
}

type resolver struct{}

func (resolver) Resolve(body string) string { return T(body) }

// Resolver returns T as an i18nstr.Resolver.
func Resolver() i18nstr.Resolver { return resolver{} }

// detectLanguage follows GNU gettext: LANGUAGE > LC_ALL > LC_MESSAGES > LANG.
func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		if idx := strings.IndexByte(val, '.'); idx >= 0 {
			val = val[:idx]
		}
		// C and POSIX mean no translation
		if val == "C" || val == "POSIX" || val == "" {
			continue
		}
		return val
	}
	return "en"
}
