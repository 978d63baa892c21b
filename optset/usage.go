package optset

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/pressly/getopt"
)

const usageWidth = 80

// DefaultUsage returns usage text for the set: the short help, the synopsis and one line per
// option, sorted by option character.
func (s *Set) DefaultUsage() string {
	var b strings.Builder

	if s.ShortHelp != "" {
		b.WriteString(s.ShortHelp)
		b.WriteString("\n\n")
	}

	b.WriteString("Usage:\n")
	usage := s.Usage
	if usage == "" {
		usage = s.synopsis()
	}
	b.WriteString("  " + usage + "\n")

	if len(s.opts) == 0 {
		return strings.TrimRight(b.String(), "\n")
	}
	b.WriteString("\nOptions:\n")

	opts := s.sorted()
	maxLen := 0
	for _, o := range opts {
		maxLen = max(maxLen, len(optName(o)))
	}
	nameWidth := maxLen + 4
	wrapWidth := usageWidth - nameWidth - 2
	indent := strings.Repeat(" ", nameWidth+2)

	for _, o := range opts {
		description := o.Usage
		if o.Arg != getopt.NoArgument && o.DefValue != "" {
			description += fmt.Sprintf(" (default: %s)", o.DefValue)
		}
		if o.Required {
			description += " (required)"
		}
		lines := strings.Split(wordwrap.WrapString(description, uint(wrapWidth)), "\n")
		name := optName(o)
		padding := strings.Repeat(" ", maxLen-len(name)+4)
		fmt.Fprintf(&b, "  %s%s%s\n", name, padding, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(&b, "%s%s\n", indent, line)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// synopsis builds a getopt style synopsis: "name [-ab] -f value [-o value] [-c[value]] [operand ...]".
func (s *Set) synopsis() string {
	parts := []string{s.Name}
	var flags strings.Builder
	for _, o := range s.sorted() {
		if o.Arg == getopt.NoArgument {
			flags.WriteRune(o.Char)
		}
	}
	if flags.Len() > 0 {
		parts = append(parts, "[-"+flags.String()+"]")
	}
	for _, o := range s.sorted() {
		switch {
		case o.Arg == getopt.NoArgument:
		case o.Required:
			parts = append(parts, optName(o))
		default:
			parts = append(parts, "["+optName(o)+"]")
		}
	}
	parts = append(parts, "[operand ...]")
	return strings.Join(parts, " ")
}

func (s *Set) sorted() []*Opt {
	opts := slices.Clone(s.opts)
	slices.SortFunc(opts, func(a, b *Opt) int {
		return cmp.Compare(a.Char, b.Char)
	})
	return opts
}

func optName(o *Opt) string {
	switch o.Arg {
	case getopt.RequiredArgument:
		return "-" + string(o.Char) + " value"
	case getopt.OptionalArgument:
		return "-" + string(o.Char) + "[value]"
	default:
		return "-" + string(o.Char)
	}
}
