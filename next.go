package getopt

import "unicode/utf8"

const (
	invalidOptionFormat   = "%s: invalid option -- '%c'\n"
	missingArgumentFormat = "%s: option requires an argument -- '%c'\n"
)

// Next scans argv for the next option described by optstring and advances the cursor. argv[0] is
// the program name, used in diagnostics, and is never scanned.
//
// In GNU mode argv is permuted in place. Once Next returns [KindEnd] it keeps returning it until
// the cursor is moved with [State.SetOptind] or [State.Reset].
func (s *State) Next(argv []string, optstring string) Outcome {
	if s.spec.raw != optstring {
		s.spec = parseSpec(optstring)
	}
	if s.optind == 0 {
		s.Reset()
	}
	s.optarg, s.hasArg = "", false
	if s.done {
		return Outcome{Kind: KindEnd}
	}

	if s.charidx == 0 && s.pending() {
		s.flush(argv)
	}
	if s.optind >= len(argv) {
		return s.end()
	}
	if s.charidx >= len(argv[s.optind]) {
		// argv was modified behind our back
		s.charidx = 0
	}

	if s.charidx == 0 {
		arg := argv[s.optind]
		if !isOption(arg) {
			if s.spec.inOrder {
				s.optind++
				s.optarg, s.hasArg = arg, true
				return Outcome{Kind: KindOption, Char: Operand, Arg: arg, HasArg: true}
			}
			if s.spec.posix || s.posixlyCorrect() {
				return s.end()
			}
			next := nextOption(argv, s.optind+1)
			if next < 0 {
				s.debug("no option after operands", "optind", s.optind)
				return s.end()
			}
			s.debug("skipping operands", "start", s.optind, "end", next)
			s.permStart, s.permEnd = s.optind, next
			s.optind = next
			arg = argv[next]
		}
		if arg == "--" {
			s.optind++
			if s.pending() {
				s.flush(argv)
			}
			return s.end()
		}
		s.charidx = 1
	}
	return s.shortOption(argv)
}

func (s *State) shortOption(argv []string) Outcome {
	arg := argv[s.optind]
	c, size := utf8.DecodeRuneInString(arg[s.charidx:])
	s.charidx += size
	rest := arg[s.charidx:]

	kind, ok := s.spec.lookup(c)
	if !ok {
		s.optopt = c
		s.endOfCluster(rest)
		s.report(argv, invalidOptionFormat, c)
		return Outcome{Kind: KindUnknown, Char: c}
	}
	if kind == NoArgument {
		s.endOfCluster(rest)
		return Outcome{Kind: KindOption, Char: c}
	}

	s.charidx = 0
	s.optind++
	switch {
	case rest != "":
		s.optarg, s.hasArg = rest, true
	case kind == OptionalArgument:
	case s.optind >= len(argv):
		s.optopt = c
		s.report(argv, missingArgumentFormat, c)
		if s.spec.quiet {
			return Outcome{Kind: KindMissingArgumentStrict, Char: c}
		}
		return Outcome{Kind: KindMissingArgument, Char: c}
	default:
		s.optarg, s.hasArg = argv[s.optind], true
		s.optind++
	}
	return Outcome{Kind: KindOption, Char: c, Arg: s.optarg, HasArg: s.hasArg}
}

func (s *State) end() Outcome {
	s.charidx = 0
	s.done = true
	return Outcome{Kind: KindEnd}
}

// endOfCluster moves to the next argument when nothing is left of the current cluster.
func (s *State) endOfCluster(rest string) {
	if rest == "" {
		s.charidx = 0
		s.optind++
	}
}

func (s *State) pending() bool {
	return s.permEnd > s.permStart
}

// flush rotates the pending run of skipped operands behind the options that were consumed after
// it, and pulls the cursor back by the length of the run.
func (s *State) flush(argv []string) {
	start, end := s.permStart, s.permEnd
	s.permStart, s.permEnd = 0, 0
	if s.optind > len(argv) {
		return
	}
	rotate(argv, start, end, s.optind)
	s.optind -= end - start
	s.debug("permuted arguments", "operands", end-start, "options", s.optind-start, "optind", s.optind)
}

// isOption reports whether arg looks like an option. A lone "-" is an operand.
func isOption(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// nextOption returns the index of the first option-looking argument at or after from, or -1.
func nextOption(argv []string, from int) int {
	for i := from; i < len(argv); i++ {
		if isOption(argv[i]) {
			return i
		}
	}
	return -1
}
