// Package translate renders user-facing message text for the LS-8 tools in
// the language of the current locale.
package translate

import (
	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"

	"golang.org/x/text/message"
)

// DefaultLocale is used when the host locale cannot be determined.
const DefaultLocale = "en-US"

var printer *message.Printer

func init() {
	printer = message.NewPrinter(message.MatchLanguage(Locales()...))
}

// Locales returns the user's preferred locales, falling back to DefaultLocale.
func Locales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		logrus.WithError(err).Debug("ls8: locale")
	}

	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
