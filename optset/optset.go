// Package optset binds getopt option characters to typed values, in the spirit of [flag.FlagSet]
// but with POSIX short option syntax: clustering (-abc), attached or separate arguments (-ofile,
// -o file), optional attached arguments (-c[value]) and GNU permutation of operands.
//
// Example:
//
//	set := optset.New("echo")
//	noNewline := set.Bool('n', "do not print the trailing newline")
//	sep := set.String('s', " ", "separator between operands")
//	if err := set.Parse(os.Args[1:]); err != nil {
//	    if errors.Is(err, flag.ErrHelp) {
//	        fmt.Println(set.DefaultUsage())
//	        return
//	    }
//	    fmt.Fprintf(os.Stderr, "%v\n", err)
//	    os.Exit(2)
//	}
//	fmt.Print(strings.Join(set.Args(), *sep))
package optset

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/pressly/getopt"
)

var (
	// ErrUnknownOption is wrapped by Parse for an option that is not defined.
	ErrUnknownOption = getopt.ErrUnknownOption
	// ErrMissingArgument is wrapped by Parse for an option given without its required argument.
	ErrMissingArgument = getopt.ErrMissingArgument
	// ErrRequired is wrapped by Parse when options marked with [Set.Require] were not given.
	ErrRequired = errors.New("missing required option")
)

// Set is a set of defined options.
type Set struct {
	// Name is the program name, used in usage text and error messages.
	Name string

	// Usage is the synopsis shown in usage text. If empty, one is generated from the options.
	//
	// Example: "echo [-n] [-s sep] text..."
	Usage string

	// ShortHelp is a brief description shown above the synopsis.
	ShortHelp string

	// Posix stops option parsing at the first operand instead of permuting operands behind the
	// options. POSIXLY_CORRECT in the environment has the same effect.
	Posix bool

	// LookupEnv replaces os.LookupEnv when checking POSIXLY_CORRECT.
	LookupEnv func(string) (string, bool)

	// Logger, if set, receives the scanner's permutation decisions at debug level.
	Logger *slog.Logger

	opts []*Opt
	args []string
}

// Opt describes a single defined option.
type Opt struct {
	Char     rune
	Usage    string
	Value    flag.Value
	Arg      getopt.ArgKind
	DefValue string // Value.String() at definition time
	Required bool

	count int
}

// New returns an empty option set for the named program.
func New(name string) *Set {
	return &Set{Name: name}
}

// Var defines an option that sets v. The option requires an argument unless v has an IsBoolFlag
// method returning true, in which case it takes none and v.Set is called with "true".
func (s *Set) Var(v flag.Value, c rune, usage string) {
	kind := getopt.RequiredArgument
	if b, ok := v.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		kind = getopt.NoArgument
	}
	s.define(v, c, usage, kind)
}

// OptionalVar defines an option with an optional argument. The argument must be attached
// (-cvalue); v.Set is only called when it is present.
func (s *Set) OptionalVar(v flag.Value, c rune, usage string) {
	s.define(v, c, usage, getopt.OptionalArgument)
}

// Bool defines an option without argument and returns a pointer that becomes true when the option
// is given.
func (s *Set) Bool(c rune, usage string) *bool {
	p := new(bool)
	s.Var((*boolValue)(p), c, usage)
	return p
}

// Count defines an option without argument and returns a pointer to the number of times it was
// given, as in -vvv.
func (s *Set) Count(c rune, usage string) *int {
	p := new(int)
	s.Var((*countValue)(p), c, usage)
	return p
}

// String defines an option with a required string argument.
func (s *Set) String(c rune, value string, usage string) *string {
	p := new(string)
	*p = value
	s.Var((*stringValue)(p), c, usage)
	return p
}

// Int defines an option with a required integer argument. Decimal, hex (0x) and octal (0o or
// leading 0) are accepted.
func (s *Set) Int(c rune, value int, usage string) *int {
	p := new(int)
	*p = value
	s.Var((*intValue)(p), c, usage)
	return p
}

// Require marks option c as required. It panics if c is not defined.
func (s *Set) Require(c rune) {
	o := s.Lookup(c)
	if o == nil {
		panic(fmt.Sprintf("optset: cannot require undefined option -%c", c))
	}
	o.Required = true
}

// Lookup returns the definition of option c, or nil.
func (s *Set) Lookup(c rune) *Opt {
	for _, o := range s.opts {
		if o.Char == c {
			return o
		}
	}
	return nil
}

// Called returns how many times option c was given during the last Parse.
func (s *Set) Called(c rune) int {
	if o := s.Lookup(c); o != nil {
		return o.count
	}
	return 0
}

// Args returns the operands left after parsing, in their original order.
func (s *Set) Args() []string {
	return s.args
}

// OptString returns the getopt option string for the defined options. It always starts with ':'
// because the set reports problems through errors rather than diagnostics.
func (s *Set) OptString() string {
	var b strings.Builder
	if s.Posix {
		b.WriteByte('+')
	}
	b.WriteByte(':')
	for _, o := range s.opts {
		b.WriteRune(o.Char)
		switch o.Arg {
		case getopt.RequiredArgument:
			b.WriteString(":")
		case getopt.OptionalArgument:
			b.WriteString("::")
		}
	}
	return b.String()
}

func (s *Set) define(v flag.Value, c rune, usage string, kind getopt.ArgKind) {
	if c == ':' || c == '-' || c == getopt.Operand || unicode.IsSpace(c) || unicode.IsControl(c) {
		panic(fmt.Sprintf("optset: %q cannot be an option character", c))
	}
	if s.Lookup(c) != nil {
		panic(fmt.Sprintf("optset: option -%c redefined", c))
	}
	s.opts = append(s.opts, &Opt{
		Char:     c,
		Usage:    usage,
		Value:    v,
		Arg:      kind,
		DefValue: v.String(),
	})
}
