// Package translate renders user facing messages for the current locale.
package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/message"
)

var (
	once    sync.Once
	printer *message.Printer
)

func load() {
	locales, err := locale.GetLocales()
	if err != nil || len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() style key for the current locale.
func From(key message.Reference, args ...any) string {
	once.Do(load)
	return printer.Sprintf(key, args...)
}
