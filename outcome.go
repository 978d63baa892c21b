package getopt

import (
	"errors"
	"fmt"
)

// Kind classifies the result of a single call to [State.Next].
type Kind int

const (
	// KindEnd means there are no more options. The cursor is parked at the first operand.
	KindEnd Kind = iota
	// KindOption is a recognized option, or an operand returned as [Operand] in '-' mode.
	KindOption
	// KindUnknown is an option character that is not in the option string.
	KindUnknown
	// KindMissingArgument is an option that requires an argument at the end of the vector.
	KindMissingArgument
	// KindMissingArgumentStrict is KindMissingArgument for a ':'-led option string. No diagnostic
	// is written; the caller reports the problem itself.
	KindMissingArgumentStrict
)

func (k Kind) String() string {
	switch k {
	case KindEnd:
		return "end"
	case KindOption:
		return "option"
	case KindUnknown:
		return "unknown option"
	case KindMissingArgument:
		return "missing argument"
	case KindMissingArgumentStrict:
		return "missing argument (strict)"
	default:
		return "unknown"
	}
}

// Operand is the pseudo-option character returned, with the operand as its argument, when the
// option string starts with '-'.
const Operand rune = '\x01'

// End is the classic getopt return value for [KindEnd].
const End = -1

var (
	// ErrUnknownOption is wrapped by [Outcome.Err] for [KindUnknown].
	ErrUnknownOption = errors.New("invalid option")
	// ErrMissingArgument is wrapped by [Outcome.Err] for both missing argument kinds.
	ErrMissingArgument = errors.New("option requires an argument")
)

// Outcome is the result of one call to [State.Next].
type Outcome struct {
	Kind Kind
	// Char is the matched option for KindOption and the offending option for the error kinds.
	Char rune
	// Arg is the option argument. It is only meaningful when HasArg is true, which distinguishes
	// an absent optional argument from an empty one.
	Arg    string
	HasArg bool
}

// Code returns the value the C getopt function would return: the option character, '?' for
// unknown options and missing arguments, ':' for the strict missing argument, 1 for an operand in
// '-' mode, and [End] when scanning is done.
func (o Outcome) Code() int {
	switch o.Kind {
	case KindOption:
		return int(o.Char)
	case KindUnknown, KindMissingArgument:
		return '?'
	case KindMissingArgumentStrict:
		return ':'
	default:
		return End
	}
}

// IsOperand reports whether o carries an operand returned in '-' mode.
func (o Outcome) IsOperand() bool {
	return o.Kind == KindOption && o.Char == Operand
}

// Err returns an error describing an unknown option or a missing argument, and nil for the other
// kinds.
func (o Outcome) Err() error {
	switch o.Kind {
	case KindUnknown:
		return fmt.Errorf("%w -- '%c'", ErrUnknownOption, o.Char)
	case KindMissingArgument, KindMissingArgumentStrict:
		return fmt.Errorf("%w -- '%c'", ErrMissingArgument, o.Char)
	}
	return nil
}

func (o Outcome) String() string {
	switch {
	case o.IsOperand():
		return fmt.Sprintf("operand %q", o.Arg)
	case o.Kind == KindOption && o.HasArg:
		return fmt.Sprintf("-%c %q", o.Char, o.Arg)
	case o.Kind == KindOption:
		return fmt.Sprintf("-%c", o.Char)
	case o.Kind == KindEnd:
		return o.Kind.String()
	default:
		return fmt.Sprintf("%s -%c", o.Kind, o.Char)
	}
}
