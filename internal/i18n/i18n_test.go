package i18n

import (
	"testing"

	"github.com/jubams/ramadan-tracker/internal/catalog"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{"en", LangEnglish},
		{"ar", LangArabic},
		{"Arabic", LangArabic},
		{" AR ", LangArabic},
		{"", LangEnglish},
		{"fr", LangEnglish},
	}
	for _, tt := range tests {
		if got := ParseLanguage(tt.input); got != tt.want {
			t.Errorf("ParseLanguage(%q)=%q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEveryCatalogItemHasBothLabels(t *testing.T) {
	for _, it := range catalog.Items() {
		if Label(LangEnglish, it.ID) == it.ID {
			t.Errorf("item %q has no English label", it.ID)
		}
		if Label(LangArabic, it.ID) == it.ID {
			t.Errorf("item %q has no Arabic label", it.ID)
		}
	}
}

func TestLabelFallsBackToKey(t *testing.T) {
	if got := Label(LangEnglish, "not_a_key"); got != "not_a_key" {
		t.Errorf("Label fell back to %q, want the key itself", got)
	}
	if got := Label(LangArabic, "fajr"); got != "الفجر" {
		t.Errorf("Label(ar, fajr)=%q", got)
	}
}
