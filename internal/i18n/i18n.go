// Package i18n contiene los catálogos de mensajes pl/en y la negociación
// de idioma vía Accept-Language. El polaco es el idioma de fallback,
// igual que en la UI original.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Idiomas soportados.
const (
	LangPL = "pl"
	LangEN = "en"
)

var matcher = language.NewMatcher([]language.Tag{
	language.Polish, // fallback
	language.English,
})

// Match negocia el idioma a partir de un header Accept-Language.
// Retorna "pl" o "en"; con input vacío o no soportado retorna "pl".
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return LangPL
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LangPL
	}
	_, idx, _ := matcher.Match(tags...)
	if idx == 1 {
		return LangEN
	}
	return LangPL
}

// Normalize reduce un código de idioma arbitrario a uno soportado.
func Normalize(lang string) string {
	if lang == LangEN {
		return LangEN
	}
	return LangPL
}

// T resuelve una key en el idioma dado; los args se interpolan con fmt.
// Una key desconocida se retorna tal cual (visible en dev, nunca rompe).
func T(lang, key string, args ...any) string {
	cat, ok := catalogs[Normalize(lang)]
	if !ok {
		cat = catalogs[LangPL]
	}
	msg, ok := cat[key]
	if !ok {
		// fallback al catálogo pl antes de rendirse
		if msg, ok = catalogs[LangPL][key]; !ok {
			return key
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
