package optset

import (
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/pressly/getopt"
)

// Parse parses args, which must not include the program name, and sets the values of the given
// options. The operands are available from [Set.Args] afterwards.
//
// If -h is given and no 'h' option is defined, Parse returns [flag.ErrHelp].
func (s *Set) Parse(args []string) error {
	for _, o := range s.opts {
		o.count = 0
	}
	s.args = nil

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, s.Name)
	argv = append(argv, args...)

	var opts []getopt.Option
	if s.LookupEnv != nil {
		opts = append(opts, getopt.WithLookupEnv(s.LookupEnv))
	}
	if s.Logger != nil {
		opts = append(opts, getopt.WithLogger(s.Logger))
	}
	st := getopt.New(opts...)
	optstring := s.OptString()

	for {
		out := st.Next(argv, optstring)
		switch out.Kind {
		case getopt.KindEnd:
			s.args = slices.Clone(argv[st.Optind():])
			return s.checkRequired()
		case getopt.KindOption:
			if err := s.set(out); err != nil {
				return err
			}
		case getopt.KindUnknown:
			if out.Char == 'h' {
				return flag.ErrHelp
			}
			return fmt.Errorf("%s: %w", s.Name, out.Err())
		default:
			return fmt.Errorf("%s: %w", s.Name, out.Err())
		}
	}
}

func (s *Set) set(out getopt.Outcome) error {
	o := s.Lookup(out.Char)
	if o == nil {
		// The option string is built from s.opts.
		return fmt.Errorf("%s: internal error: option -%c not defined", s.Name, out.Char)
	}
	o.count++
	value := out.Arg
	switch o.Arg {
	case getopt.NoArgument:
		value = "true"
	case getopt.OptionalArgument:
		if !out.HasArg {
			return nil
		}
	}
	if err := o.Value.Set(value); err != nil {
		return fmt.Errorf("%s: invalid argument %q for -%c: %w", s.Name, out.Arg, out.Char, err)
	}
	return nil
}

func (s *Set) checkRequired() error {
	var missing []string
	for _, o := range s.opts {
		if o.Required && o.count == 0 {
			missing = append(missing, "-"+string(o.Char))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", s.Name, ErrRequired, strings.Join(missing, ", "))
	}
	return nil
}
