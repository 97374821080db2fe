package ui

import (
	"strings"
)

const wrapWidth = 80

// FormatResult renders "n! = value", wrapping long values onto dimmed
// continuation lines of wrapWidth digits.
func FormatResult(expr, value string) string {
	var b strings.Builder
	b.WriteString(BrightCyan(expr))
	b.WriteString(" = ")

	if len(value) <= wrapWidth {
		b.WriteString(BrightWhite(value))
		return b.String()
	}

	for i := 0; i < len(value); i += wrapWidth {
		end := i + wrapWidth
		if end > len(value) {
			end = len(value)
		}
		b.WriteString("\n")
		b.WriteString(Dim("  "))
		b.WriteString(BrightWhite(value[i:end]))
	}
	return b.String()
}
