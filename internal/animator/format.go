package animator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders a counter value.
type Formatter func(v int64) string

// NumberFormatter renders values with the thousands separators of locale.
// An unknown locale falls back to English.
func NumberFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return func(v int64) string {
		return p.Sprintf("%d", v)
	}
}
