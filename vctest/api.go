package vctest

import (
	"github.com/uiharness/vc-lifecycle-tests/framework"
)

// T represents one running check in a screen suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with debug logging
// captured per check. To make assertions, you can use the assert and
// require packages, passing the *T as if it were a *testing.T.
type T struct {
	context *framework.Context
	suite   *Suite
}

// Errorf records a check failure without stopping the check.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow stops the check immediately. The suite's teardown still runs.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Debug writes to the check's captured debug output, which is shown for
// failed checks when the harness runs with debug logging enabled.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// DebugLogger returns a Logger that writes to the check's captured debug
// output.
func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}

// Screen returns the current subject under test, created by the suite's
// SetUp for this check.
func (t *T) Screen() Screen {
	return t.suite.screen
}

// Fixtures returns the seed data loaded for this check, or nil if the
// suite declares none.
func (t *T) Fixtures() *FixtureSet {
	return t.suite.fixtures
}
