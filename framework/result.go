package framework

import (
	"strings"
	"time"
)

// Results accumulates the outcome of every test in one run. Tests holds an
// entry for each test and test group that executed (including skips);
// Failures holds only the failed ones.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID   TestID
	Errors   []error
	Skipped  bool
	Duration time.Duration
}

// IsTest reports whether this result represents an individual test, as
// opposed to the root node or a suite-level group node.
func (t TestResult) IsTest() bool {
	return len(t.TestID.Path) >= 2
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestID identifies a test as a path of names, starting with the suite
// name, such as "LoginScreen/testLoginScreenCreation".
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}
