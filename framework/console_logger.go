package framework

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	consoleFailColor = color.New(color.FgRed, color.Bold)
	consoleSkipColor = color.New(color.FgYellow)
	consolePassColor = color.New(color.FgGreen)
)

// ConsoleTestLogger writes test progress to standard output. Debug output
// captured during a test is dumped according to the two flags.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c ConsoleTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	if failed {
		consoleFailColor.Printf("  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		consoleSkipColor.Printf("  SKIPPED: %s\n", id)
	} else {
		consoleSkipColor.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}

// PrintResults writes a summary of a completed run to standard output.
func PrintResults(results Results) {
	ran, skipped := countTests(results)

	if results.OK() {
		consolePassColor.Printf("All tests passed (%d run, %d skipped)\n", ran, skipped)
		return
	}

	consoleFailColor.Printf("%d test(s) failed out of %d run (%d skipped)\n",
		len(results.Failures), ran, skipped)
	printFailureDetail(results)
}

// countTests tallies individual tests only; the root and suite group
// nodes in Results are bookkeeping, not tests.
func countTests(results Results) (ran, skipped int) {
	for _, t := range results.Tests {
		if !t.IsTest() {
			continue
		}
		if t.Skipped {
			skipped++
		} else {
			ran++
		}
	}
	return ran, skipped
}

func printFailureDetail(results Results) {
	for _, f := range results.Failures {
		consoleFailColor.Printf("  %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
	}
}
