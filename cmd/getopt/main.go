// Command getopt parses command options for shell scripts, in the manner of util-linux getopt(1)
// restricted to short options.
//
//	eval set -- "$(getopt -o ab:c:: -- "$@")"
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pressly/getopt"
)

const (
	exitOK    = 0
	exitParse = 1 // the parameters contained errors; output is still written
	exitUsage = 2 // getopt itself was called wrongly
	exitTest  = 4
)

// ownOptions is the option string of getopt itself. Its options end at the first operand.
const ownOptions = "+dhn:o:qQs:TuV"

type config struct {
	optstring     string
	haveOptstring bool
	name          string
	quiet         bool
	quietOutput   bool
	unquoted      bool
	test          bool
	debug         bool
	shell         shell
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, os.LookupEnv))
}

func run(args []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	prog := "getopt"
	if len(args) > 0 && args[0] != "" {
		prog = filepath.Base(args[0])
	}
	argv := append([]string{prog}, args[min(1, len(args)):]...)

	cfg, params, code, ok := parseOwn(argv, stdout, stderr, lookupEnv)
	if !ok {
		return code
	}
	if cfg.test {
		return exitTest
	}
	if !cfg.haveOptstring {
		if len(params) == 0 {
			fmt.Fprintf(stderr, "%s: missing optstring argument\n", prog)
			fmt.Fprintf(stderr, "Try '%s -h' for more information.\n", prog)
			return exitUsage
		}
		cfg.optstring, params = params[0], params[1:]
	}
	spec, err := getopt.Compile(cfg.optstring)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return exitUsage
	}

	name := cfg.name
	if name == "" {
		name = prog
	}
	var logger *slog.Logger
	if cfg.debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	words, code := normalize(append([]string{name}, params...), spec, cfg, stderr, lookupEnv, logger)
	if !cfg.quietOutput {
		fmt.Fprintln(stdout, " "+strings.Join(words, " "))
	}
	return code
}

// parseOwn scans the options of getopt itself and returns the remaining parameters. When ok is
// false the command is finished and code is its exit status.
func parseOwn(
	argv []string,
	stdout, stderr io.Writer,
	lookupEnv func(string) (string, bool),
) (cfg config, params []string, code int, ok bool) {
	prog := argv[0]
	st := getopt.New(getopt.WithStderr(stderr), getopt.WithLookupEnv(lookupEnv))
	for {
		out := st.Next(argv, ownOptions)
		if out.Kind == getopt.KindEnd {
			break
		}
		switch out.Char {
		case 'd':
			cfg.debug = true
		case 'h':
			fmt.Fprint(stdout, usage(prog))
			return cfg, nil, exitOK, false
		case 'n':
			cfg.name = out.Arg
		case 'o':
			cfg.optstring, cfg.haveOptstring = out.Arg, true
		case 'q':
			cfg.quiet = true
		case 'Q':
			cfg.quietOutput = true
		case 's':
			sh, valid := parseShell(out.Arg)
			if !valid {
				fmt.Fprintf(stderr, "%s: unknown shell after -s argument: %q\n", prog, out.Arg)
				fmt.Fprintf(stderr, "Try '%s -h' for more information.\n", prog)
				return cfg, nil, exitUsage, false
			}
			cfg.shell = sh
		case 'T':
			cfg.test = true
		case 'u':
			cfg.unquoted = true
		case 'V':
			fmt.Fprint(stdout, versionString(prog))
			return cfg, nil, exitOK, false
		default:
			// the scanner already wrote the diagnostic
			fmt.Fprintf(stderr, "Try '%s -h' for more information.\n", prog)
			return cfg, nil, exitUsage, false
		}
	}
	return cfg, slices.Clone(argv[st.Optind():]), exitOK, true
}

// normalize rescans argv with spec and returns the output words: options with their arguments,
// "--", then the operands.
func normalize(
	argv []string,
	spec *getopt.Spec,
	cfg config,
	stderr io.Writer,
	lookupEnv func(string) (string, bool),
	logger *slog.Logger,
) ([]string, int) {
	q := func(s string) string {
		if cfg.unquoted {
			return s
		}
		return quote(s, cfg.shell)
	}

	st := getopt.New(getopt.WithStderr(stderr), getopt.WithLookupEnv(lookupEnv), getopt.WithLogger(logger))
	st.SetOpterr(!cfg.quiet)

	var words []string
	code := exitOK
	for {
		out := st.Next(argv, spec.String())
		if out.Kind == getopt.KindEnd {
			break
		}
		switch {
		case out.IsOperand():
			words = append(words, q(out.Arg))
		case out.Kind == getopt.KindOption:
			words = append(words, "-"+string(out.Char))
			if kind, _ := spec.HasArg(out.Char); kind != getopt.NoArgument {
				// an absent optional argument is written as an empty word
				words = append(words, q(out.Arg))
			}
		default:
			code = exitParse
		}
	}
	words = append(words, "--")
	for _, operand := range argv[st.Optind():] {
		words = append(words, q(operand))
	}
	return words, code
}
