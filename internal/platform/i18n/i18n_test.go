package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTagSupportedLocales(t *testing.T) {
	t.Parallel()

	tag, ok := ParseTag("pt-BR")
	if !ok {
		t.Fatal("expected pt-BR to be supported")
	}
	if tag != language.BrazilianPortuguese {
		t.Fatalf("tag = %v, want %v", tag, language.BrazilianPortuguese)
	}

	tag, ok = ParseTag("en-US")
	if !ok {
		t.Fatal("expected en-US to be supported")
	}
	if tag != language.AmericanEnglish {
		t.Fatalf("tag = %v, want %v", tag, language.AmericanEnglish)
	}
}

func TestParseTagRejectsUnknownValues(t *testing.T) {
	t.Parallel()

	if _, ok := ParseTag("not a tag"); ok {
		t.Fatal("expected invalid value to be rejected")
	}
	if _, ok := ParseTag("zz"); ok {
		t.Fatal("expected unsupported language to be rejected")
	}
}

func TestMatchTagsFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v, want %v", got, DefaultTag())
	}
}

func TestMatchTagsPrefersRequestedLocale(t *testing.T) {
	t.Parallel()

	got := MatchTags([]language.Tag{language.BrazilianPortuguese, language.AmericanEnglish})
	if got != language.BrazilianPortuguese {
		t.Fatalf("MatchTags = %v, want %v", got, language.BrazilianPortuguese)
	}
}

func TestSupportedTagsCopies(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	if len(tags) != 2 {
		t.Fatalf("len(SupportedTags()) = %d, want 2", len(tags))
	}
	tags[0] = language.Und
	if SupportedTags()[0] == language.Und {
		t.Fatal("expected SupportedTags to return a copy")
	}
}
