package getopt

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// PosixlyCorrect is the environment variable that disables permutation. Its presence is enough,
// the value is ignored.
const PosixlyCorrect = "POSIXLY_CORRECT"

// State is the cursor of one parsing session. The zero value is ready to use: it starts at
// argument 1, writes diagnostics to [os.Stderr] and reads the process environment.
type State struct {
	optind  int // next argument to examine, 0 means not started
	charidx int // byte offset inside argv[optind], 0 at an argument boundary

	// [permStart, permEnd) is a run of operands that was skipped to reach argv[permEnd]. It is
	// rotated behind the options consumed from permEnd once the cursor is back on a boundary.
	permStart, permEnd int

	done bool // KindEnd was returned

	optarg   string
	hasArg   bool
	optopt   rune
	noOpterr bool

	spec Spec // last parsed option string

	stderr    io.Writer
	lookupEnv func(string) (string, bool)
	logger    *slog.Logger
}

// Option configures a [State].
type Option func(*State)

// WithStderr sets the writer diagnostics are written to. The default is [os.Stderr].
func WithStderr(w io.Writer) Option {
	return func(s *State) {
		s.stderr = w
	}
}

// WithLookupEnv replaces [os.LookupEnv] for reading POSIXLY_CORRECT.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(s *State) {
		s.lookupEnv = fn
	}
}

// WithLogger sets a logger that receives the scanner's skip and permutation decisions at debug
// level. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *State) {
		s.logger = logger
	}
}

// New returns a State configured with opts.
func New(opts ...Option) *State {
	s := &State{optind: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset rewinds the cursor to argument 1 and drops any pending permutation. Configuration and
// the opterr toggle are kept.
func (s *State) Reset() {
	s.optind = 1
	s.charidx = 0
	s.permStart, s.permEnd = 0, 0
	s.done = false
	s.optarg, s.hasArg = "", false
	s.optopt = 0
}

// Optind returns the index of the next argument to examine. After [KindEnd] it is the index of
// the first operand.
func (s *State) Optind() int {
	if s.optind == 0 {
		return 1
	}
	return s.optind
}

// SetOptind moves the cursor to argument i. Like glibc, 0 restarts scanning at argument 1.
func (s *State) SetOptind(i int) {
	if i <= 0 {
		s.Reset()
		return
	}
	s.optind = i
	s.charidx = 0
	s.permStart, s.permEnd = 0, 0
	s.done = false
}

// Optarg returns the argument of the last returned option and whether it had one.
func (s *State) Optarg() (string, bool) { return s.optarg, s.hasArg }

// Optopt returns the offending character of the last unknown option or missing argument.
func (s *State) Optopt() rune { return s.optopt }

// Opterr reports whether diagnostics are written. It is true unless disabled with SetOpterr.
func (s *State) Opterr() bool { return !s.noOpterr }

// SetOpterr enables or disables diagnostics for every option string.
func (s *State) SetOpterr(enabled bool) { s.noOpterr = !enabled }

func (s *State) posixlyCorrect() bool {
	lookup := s.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return IsPosixlyCorrect(lookup)
}

// IsPosixlyCorrect reports whether POSIXLY_CORRECT is set according to lookup.
func IsPosixlyCorrect(lookup func(string) (string, bool)) bool {
	_, ok := lookup(PosixlyCorrect)
	return ok
}

func (s *State) report(argv []string, format string, c rune) {
	if s.noOpterr || s.spec.quiet {
		return
	}
	w := s.stderr
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format, argv[0], c)
}

func (s *State) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
