package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/uiharness/vc-lifecycle-tests/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	filters    framework.RegexFilters
	reportFile string
	reportURL  string
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.reportFile, "report", "", "write a JSON run report to this file")
	fs.StringVar(&c.reportURL, "report-url", "", "upload the JSON run report to this URL")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// printRerunHint prints a command line that re-runs only the tests that
// failed, with each test path anchored as an exact-match regex.
func printRerunHint(results framework.Results) {
	var b commandBuilder
	b.add(os.Args[0])
	for _, f := range results.Failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	fmt.Println()
	fmt.Println("To re-run only the failed tests:")
	fmt.Printf("  %s\n", b)
}
