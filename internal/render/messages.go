package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text doubles as the key.
const (
	msgIndex    = "No."
	msgSurname  = "Surname"
	msgName     = "Name"
	msgZodiac   = "Zodiac sign"
	msgBirthday = "Birthday"
	msgEmpty    = "The list is empty"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

func init() {
	ru := map[string]string{
		msgIndex:    "№",
		msgSurname:  "Фамилия",
		msgName:     "Имя",
		msgZodiac:   "Знак зодиака",
		msgBirthday: "Дата рождения",
		msgEmpty:    "Список пуст",
	}
	for key, text := range ru {
		_ = message.SetString(language.Russian, key, text)
	}
}

// Languages returns the display languages with translated headers.
func Languages() []string {
	out := make([]string, len(supported))
	for i, tag := range supported {
		out[i] = tag.String()
	}
	return out
}

// newPrinter returns a printer for the closest supported language to lang.
// Unknown or empty values fall back to English.
func newPrinter(lang string) *message.Printer {
	tag, _, _ := matcher.Match(language.Make(lang))
	base, _ := tag.Base()
	return message.NewPrinter(language.Make(base.String()))
}
