package main

import "strings"

type shell int

const (
	shellSh shell = iota
	shellTcsh
)

func parseShell(name string) (shell, bool) {
	switch name {
	case "sh", "bash":
		return shellSh, true
	case "tcsh", "csh":
		return shellTcsh, true
	}
	return 0, false
}

// quote wraps s in single quotes for the shell. Inside single quotes only the quote itself needs
// care in sh; tcsh also expands history (!) and does not allow a bare newline.
func quote(s string, sh shell) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch {
		case r == '\'':
			b.WriteString(`'\''`)
		case sh == shellTcsh && r == '!':
			b.WriteString(`\!`)
		case sh == shellTcsh && r == '\n':
			b.WriteString("\\\n")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
