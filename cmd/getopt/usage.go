package main

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
)

const version = "0.1.0"

func usage(prog string) string {
	return fmt.Sprintf(heredoc.Doc(`
		Usage:
		  %[1]s optstring parameters
		  %[1]s [options] [--] optstring parameters
		  %[1]s [options] -o optstring [options] [--] parameters

		Parse command options and print them in a normalized, quoted form:
		options first, then --, then the operands.

		Options:
		  -d             log scanner decisions to stderr
		  -h             display this help
		  -n name        the name under which errors are reported
		  -o optstring   the short options to be recognized
		  -q             disable error reporting
		  -Q             no normal output
		  -s shell       quoting conventions: sh, bash, tcsh or csh (default: sh)
		  -T             test for getopt(1) version, exits with 4
		  -u             do not quote the output
		  -V             display version
	`), prog)
}

func versionString(prog string) string {
	return fmt.Sprintf("%s from github.com/pressly/getopt %s\n", prog, version)
}
