// Package tex prepares strings for embedding in LaTeX figure output.
package tex

import "strings"

// escaper rewrites LaTeX special characters in a single pass, so the
// backslashes it emits are never themselves re-escaped.
var escaper = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\^{}`,
	`\`, `\textbackslash{}`,
	`<`, `\textless{}`,
	`>`, `\textgreater{}`,
)

// Escape returns text with LaTeX special characters escaped so the
// string appears verbatim in typeset output.
func Escape(text string) string {
	return escaper.Replace(text)
}
