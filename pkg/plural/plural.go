// Package plural formats counts of things for problem messages.
package plural

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Suffix returns suffix unless n is exactly one.
func Suffix(n int, suffix string) string {
	if n == 1 {
		return ""
	}
	return suffix
}

// Count formats n followed by noun, pluralized with an "s" and with
// thousands grouping, e.g., "1 row" or "12,345 rows".
func Count(n int, noun string) string {
	return printer.Sprintf("%d %s%s", n, noun, Suffix(n, "s"))
}
