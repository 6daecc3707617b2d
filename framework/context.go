package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context tracks the progress of one test, or one group of tests, within a
// test run. It plays the same role as Go's *testing.T, but outside of the
// Go test runner, so that test entries synthesized at runtime can still be
// executed and reported individually.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	startTime   time.Time
}

// Run executes a function as the root of a test run and returns the
// accumulated results. The filter, if non-nil, decides which tests are
// run; a nil testLogger suppresses all progress output.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env, startTime: time.Now()}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		result := TestResult{TestID: c.id, Duration: time.Since(c.startTime)}
		if r := recover(); r != nil {
			if c.skipped {
				result.Skipped = true
				c.env.results.Tests = append(c.env.results.Tests, result)
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		result.Errors = c.errors
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

// ID returns the identifier of the current test.
func (c *Context) ID() TestID {
	return c.id
}

// Run executes a subtest under the current test's identifier. A failure in
// the subtest does not stop other subtests from running.
func (c *Context) Run(name string, action func(*Context)) {
	c.runChild(name, action, true)
}

// RunGroup executes a named group of subtests. Groups are not subject to
// the run filter; filtering happens on the individual tests inside, whose
// full paths are what filter patterns are written against.
func (c *Context) RunGroup(name string, action func(*Context)) {
	c.runChild(name, action, false)
}

func (c *Context) runChild(name string, action func(*Context), applyFilter bool) {
	path := make([]string, 0, len(c.id.Path)+1)
	path = append(path, c.id.Path...)
	id := TestID{Path: append(path, name)}

	c.env.testLogger.TestStarted(id)
	if applyFilter && c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:        id,
		env:       c.env,
		startTime: time.Now(),
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf records a test failure without stopping the test.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

// FailNow stops the current test immediately. The test is marked failed if
// any failure was recorded; run recovers the panic at the test boundary.
func (c *Context) FailNow() {
	panic(c)
}

// Skip stops the current test and marks it skipped rather than failed.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

// SkipWithReason is Skip with an explanation attached to the result.
func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug writes to the test's captured debug output.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger that writes to the test's captured debug
// output.
func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
