// Package getopt implements the POSIX getopt function with the GNU extensions: a stateful,
// incremental scanner that returns one short option per call from an argument vector described by
// an option string.
//
// The option string lists the recognized option characters. A character followed by one colon
// requires an argument, a character followed by two colons takes an optional argument that must be
// attached (-oVALUE). The string may start with marker characters:
//   - '+' stops at the first operand (POSIX mode) for this call.
//   - '-' returns each operand in place as the argument of the pseudo-option [Operand].
//   - ':' suppresses diagnostics and reports a missing argument as [KindMissingArgumentStrict].
//
// Only the first character selects the mode, so '+' and '-' must come before ':'.
//
// Without '+', and unless POSIXLY_CORRECT is present in the environment, the scanner permutes the
// argument vector while it runs so that, once [KindEnd] is returned, all options and their
// arguments come first and all operands follow, each group in its original relative order.
// [State.Optind] then points at the first operand.
//
// Example:
//
//	var st getopt.State
//	for {
//	    o := st.Next(os.Args, "ab:c::")
//	    if o.Kind == getopt.KindEnd {
//	        break
//	    }
//	    switch o.Char {
//	    case 'a':
//	        aflag = true
//	    case 'b':
//	        bval = o.Arg
//	    case 'c':
//	        if o.HasArg {
//	            cval = o.Arg
//	        }
//	    default:
//	        os.Exit(2) // the diagnostic was already written to stderr
//	    }
//	}
//	operands := os.Args[st.Optind():]
//
// A State is not safe for concurrent use. The argument vector is shared with the caller, who must
// not modify it until scanning is finished.
package getopt
