package getopt

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ArgKind describes whether an option takes an argument.
type ArgKind int

const (
	NoArgument       ArgKind = iota // no colon
	RequiredArgument                // one colon
	OptionalArgument                // two colons, argument must be attached
)

func (k ArgKind) String() string {
	switch k {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	default:
		return "unknown"
	}
}

// Spec is a parsed option string.
//
// [State.Next] parses option strings permissively, the way the C function reads them. Use
// [Compile] to reject malformed option strings up front.
type Spec struct {
	raw     string
	body    string // raw without the leading markers
	posix   bool
	inOrder bool
	quiet   bool
}

// parseSpec splits the leading marker run off optstring. Only the first character selects the
// mode ('+' or '-'); a ':' anywhere in the run makes the scanner quiet.
func parseSpec(optstring string) Spec {
	s := Spec{raw: optstring}
	if optstring != "" {
		s.posix = optstring[0] == '+'
		s.inOrder = optstring[0] == '-'
	}
	i := 0
markers:
	for ; i < len(optstring); i++ {
		switch optstring[i] {
		case '+', '-':
		case ':':
			s.quiet = true
		default:
			break markers
		}
	}
	s.body = optstring[i:]
	return s
}

// lookup returns the argument kind of option c. The first occurrence of c wins. A colon is never
// an option character.
func (s *Spec) lookup(c rune) (ArgKind, bool) {
	if c == ':' {
		return NoArgument, false
	}
	body := s.body
	for i := 0; i < len(body); {
		r, size := utf8.DecodeRuneInString(body[i:])
		i += size
		kind := NoArgument
		if i < len(body) && body[i] == ':' {
			kind = RequiredArgument
			i++
			if i < len(body) && body[i] == ':' {
				kind = OptionalArgument
				i++
			}
		}
		if r == c {
			return kind, true
		}
	}
	return NoArgument, false
}

// String returns the option string s was parsed from.
func (s *Spec) String() string { return s.raw }

// Posix reports whether the option string starts with '+'.
func (s *Spec) Posix() bool { return s.posix }

// InOrder reports whether the option string starts with '-'.
func (s *Spec) InOrder() bool { return s.inOrder }

// Quiet reports whether the option string's leading markers contain ':'.
func (s *Spec) Quiet() bool { return s.quiet }

// HasArg returns the argument kind of option c and whether c is a recognized option.
func (s *Spec) HasArg(c rune) (ArgKind, bool) { return s.lookup(c) }

// Chars returns the option characters in the order they are declared.
func (s *Spec) Chars() []rune {
	var chars []rune
	for _, r := range s.body {
		if r != ':' {
			chars = append(chars, r)
		}
	}
	return chars
}

// SpecError reports a malformed option string.
type SpecError struct {
	Spec   string
	Offset int // byte offset into Spec
	Msg    string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("getopt: invalid option string %q at offset %d: %s", e.Spec, e.Offset, e.Msg)
}

// Compile parses and validates an option string. It rejects more than two colons after an option
// character, duplicate option characters, characters that cannot name an option (space, control
// characters, '-', invalid UTF-8), option strings that mix the '+' and '-' markers, and a mode marker placed after ':'. Colons
// directly after the markers belong to the marker run.
func Compile(optstring string) (*Spec, error) {
	s := parseSpec(optstring)
	bad := func(offset int, format string, args ...any) error {
		return &SpecError{Spec: optstring, Offset: offset, Msg: fmt.Sprintf(format, args...)}
	}
	offset := len(optstring) - len(s.body)
	var plus, minus bool
	misplaced := -1
	for i := 0; i < offset; i++ {
		switch c := optstring[i]; c {
		case '+', '-':
			if c == '+' {
				plus = true
			} else {
				minus = true
			}
			if misplaced < 0 && i > 0 && strings.Contains(optstring[:i], ":") {
				misplaced = i
			}
		}
	}
	if plus && minus {
		return nil, bad(0, "both '+' and '-' markers")
	}
	if misplaced >= 0 {
		return nil, bad(misplaced, "mode marker %q must come before ':'", optstring[misplaced])
	}

	seen := make(map[rune]bool)
	body := s.body
	for i := 0; i < len(body); {
		r, size := utf8.DecodeRuneInString(body[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			return nil, bad(offset+i, "invalid UTF-8")
		case r == '-' || unicode.IsSpace(r) || unicode.IsControl(r):
			return nil, bad(offset+i, "%q cannot be an option character", r)
		case seen[r]:
			return nil, bad(offset+i, "duplicate option character %q", r)
		}
		seen[r] = true
		i += size
		colons := 0
		for i < len(body) && body[i] == ':' {
			colons++
			i++
		}
		if colons > 2 {
			return nil, bad(offset+i-colons+2, "too many colons after %q", r)
		}
	}
	return &s, nil
}

// MustCompile is like [Compile] but panics if the option string is malformed.
func MustCompile(optstring string) *Spec {
	s, err := Compile(optstring)
	if err != nil {
		panic(err)
	}
	return s
}
