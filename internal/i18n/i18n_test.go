package i18n

import "testing"

func TestMatch(t *testing.T) {
	cases := []struct {
		accept string
		want   string
	}{
		{"", LangPL},
		{"pl", LangPL},
		{"pl-PL,pl;q=0.9", LangPL},
		{"en", LangEN},
		{"en-US,en;q=0.9,pl;q=0.5", LangEN},
		{"de-DE,de;q=0.9", LangPL}, // no soportado: fallback
		{";;;garbage;;;", LangPL},
	}
	for _, tc := range cases {
		if got := Match(tc.accept); got != tc.want {
			t.Errorf("Match(%q) = %q, quería %q", tc.accept, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if Normalize("en") != LangEN {
		t.Error("Normalize(en)")
	}
	for _, in := range []string{"pl", "", "fr", "EN"} {
		if Normalize(in) != LangPL {
			t.Errorf("Normalize(%q) != pl", in)
		}
	}
}

func TestT(t *testing.T) {
	// misma key, dos idiomas
	pl := T(LangPL, "auth.login.failed")
	en := T(LangEN, "auth.login.failed")
	if pl == "" || en == "" || pl == en {
		t.Errorf("catálogos: pl=%q en=%q", pl, en)
	}

	// key desconocida se retorna tal cual
	if got := T(LangPL, "no.existe.esta.key"); got != "no.existe.esta.key" {
		t.Errorf("key desconocida = %q", got)
	}

	// idioma desconocido cae al catálogo pl
	if got := T("de", "auth.login.failed"); got != pl {
		t.Errorf("idioma desconocido = %q, quería %q", got, pl)
	}
}

// Todas las keys de en tienen su par en pl (pl es el catálogo completo).
func TestCatalogosConsistentes(t *testing.T) {
	for key := range catalogs[LangEN] {
		if _, ok := catalogs[LangPL][key]; !ok {
			t.Errorf("key %q está en en pero no en pl", key)
		}
	}
}
