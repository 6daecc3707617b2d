package main

import (
	"fmt"
	"os"
	"time"

	"github.com/uiharness/vc-lifecycle-tests/framework"
	"github.com/uiharness/vc-lifecycle-tests/vctest"

	_ "github.com/uiharness/vc-lifecycle-tests/screens"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	defs := vctest.RegisteredSuites()
	if len(defs) == 0 {
		fmt.Fprintln(os.Stderr, "no screen suites are registered")
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters, suiteNames(defs))

	fmt.Println("Running screen lifecycle suites")

	testLogger := framework.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	startTime := time.Now()
	results := vctest.RunSuites(defs, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(results)

	report := framework.MakeRunReport(startTime, results)
	if params.reportFile != "" {
		if err := report.WriteFile(params.reportFile); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write report file: %s\n", err)
			os.Exit(1)
		}
	}
	if params.reportURL != "" {
		if err := framework.PostReport(params.reportURL, report); err != nil {
			fmt.Fprintf(os.Stderr, "Could not upload report: %s\n", err)
			os.Exit(1)
		}
	}

	if !results.OK() {
		printRerunHint(results)
		os.Exit(1)
	}
}

func suiteNames(defs []vctest.SuiteDefinition) []string {
	var names []string
	for _, def := range defs {
		names = append(names, def.ScreenTypeUnderTest().Name)
	}
	return names
}
