package i18n

import (
	"testing"

	"github.com/minios-linux/i18nstr/builder"
)

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
}

func TestDetectLanguagePriorityAndNormalization(t *testing.T) {
	t.Run("LANGUAGE has highest priority", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANGUAGE", "ru_RU.UTF-8:en_US")
		t.Setenv("LC_ALL", "de_DE.UTF-8")

		if got := detectLanguage(); got != "ru_RU" {
			t.Fatalf("detectLanguage() = %q, want %q", got, "ru_RU")
		}
	})

	t.Run("C and POSIX are skipped", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANGUAGE", "C")
		t.Setenv("LC_ALL", "POSIX")
		t.Setenv("LC_MESSAGES", "fr_FR.UTF-8")

		if got := detectLanguage(); got != "fr_FR" {
			t.Fatalf("detectLanguage() = %q, want %q", got, "fr_FR")
		}
	})

	t.Run("falls back to en", func(t *testing.T) {
		clearLocaleEnv(t)
		if got := detectLanguage(); got != "en" {
			t.Fatalf("detectLanguage() = %q, want %q", got, "en")
		}
	})
}

func TestTFallbackWhenUninitialized(t *testing.T) {
	old := po
	po = nil
	t.Cleanup(func() { po = old })

	if got := T("Hello"); got != "Hello" {
		t.Fatalf("T fallback = %q, want %q", got, "Hello")
	}
}

func TestEmbeddedRussianCatalog(t *testing.T) {
	old := po
	t.Cleanup(func() { po = old })
	Init("ru_RU")

	if got := T("Wrote {0} messages to {1}"); got != "Записано сообщений: {0}, файл {1}" {
		t.Fatalf("T() = %q", got)
	}
	if got := T("no such message"); got != "no such message" {
		t.Fatalf("T(unknown) = %q, want passthrough", got)
	}

	msg := builder.Func(func(b builder.TemplateStage) builder.Finished {
		return b.Template("Wrote {0} messages to {1}").ArgValue(3).ArgString("po/messages.pot").Finish()
	})
	if got, want := builder.Localize(msg, Resolver()), "Записано сообщений: 3, файл po/messages.pot"; got != want {
		t.Fatalf("Localize() = %q, want %q", got, want)
	}
}
