package banner

import "strings"

// &amp; comes first in the table, and Replacer scans the input once, so the
// entities it introduces are never escaped again.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape makes text safe to embed in HTML element content and quoted attributes.
func Escape(text string) string {
	return htmlEscaper.Replace(text)
}
