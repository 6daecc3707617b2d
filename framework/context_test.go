package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findResult(results Results, path string) *TestResult {
	for i, t := range results.Tests {
		if t.TestID.String() == path {
			return &results.Tests[i]
		}
	}
	return nil
}

func TestRunRecordsPassingTests(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("suite", func(c *Context) {
			c.Run("first", func(c *Context) {})
			c.Run("second", func(c *Context) {})
		})
	})

	assert.True(t, results.OK())
	require.NotNil(t, findResult(results, "suite/first"))
	require.NotNil(t, findResult(results, "suite/second"))
	assert.Empty(t, results.Failures)
}

func TestErrorfRecordsFailureWithoutStoppingTest(t *testing.T) {
	reachedEnd := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("bad", func(c *Context) {
			c.Errorf("something went wrong: %d", 42)
			reachedEnd = true
		})
	})

	assert.True(t, reachedEnd)
	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "bad", results.Failures[0].TestID.String())
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "something went wrong: 42")
}

func TestFailNowStopsTestButNotSiblings(t *testing.T) {
	afterFailNow := false
	siblingRan := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("stops", func(c *Context) {
			c.Errorf("fatal problem")
			c.FailNow()
			afterFailNow = true
		})
		c.Run("sibling", func(c *Context) {
			siblingRan = true
		})
	})

	assert.False(t, afterFailNow)
	assert.True(t, siblingRan)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "stops", results.Failures[0].TestID.String())
}

func TestFailNowWithNoMessageStillProducesError(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("silent", func(c *Context) {
			c.FailNow()
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "no failure message")
}

func TestSkipRecordsSkippedResultNotFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not applicable here")
		})
	})

	assert.True(t, results.OK())
	r := findResult(results, "skipped")
	require.NotNil(t, r)
	assert.True(t, r.Skipped)
	assert.Empty(t, r.Errors)
}

func TestUnexpectedPanicBecomesFailureWithStack(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic("view hierarchy corrupted")
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	message := results.Failures[0].Errors[0].Error()
	assert.Contains(t, message, "unexpected panic")
	assert.Contains(t, message, "view hierarchy corrupted")
	assert.Contains(t, message, "goroutine") // stack trace included
}

func TestFilterExcludesTests(t *testing.T) {
	excludedRan := false
	filter := func(id TestID) bool {
		return !strings.Contains(id.String(), "excluded")
	}
	results := Run(filter, nil, func(c *Context) {
		c.Run("included", func(c *Context) {})
		c.Run("excluded", func(c *Context) {
			excludedRan = true
		})
	})

	assert.False(t, excludedRan)
	assert.True(t, results.OK())
	assert.NotNil(t, findResult(results, "included"))
	assert.Nil(t, findResult(results, "excluded"))
}

func TestRunGroupIsExemptFromFilter(t *testing.T) {
	leafRan := false
	filter := func(id TestID) bool {
		return strings.HasSuffix(id.String(), "leaf")
	}
	Run(filter, nil, func(c *Context) {
		c.RunGroup("group", func(c *Context) {
			c.Run("leaf", func(c *Context) {
				leafRan = true
			})
		})
	})

	// The group's own name does not match the filter, but groups are not
	// filtered; the leaf inside is, and it matches.
	assert.True(t, leafRan)
}

func TestNestedTestIDsAreStable(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("suite", func(c *Context) {
			c.Run("a", func(c *Context) {})
			c.Run("b", func(c *Context) {})
		})
	})

	// Sibling IDs must not share backing storage.
	assert.NotNil(t, findResult(results, "suite/a"))
	assert.NotNil(t, findResult(results, "suite/b"))
}

func TestDurationIsRecorded(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("timed", func(c *Context) {})
	})

	r := findResult(results, "timed")
	require.NotNil(t, r)
	assert.Greater(t, int64(r.Duration), int64(0))
}

func TestDebugOutputIsCapturedPerTest(t *testing.T) {
	logger := &collectingTestLogger{}
	Run(nil, logger, func(c *Context) {
		c.Run("noisy", func(c *Context) {
			c.Debug("step %d", 1)
			c.Debug("step %d", 2)
		})
	})

	require.Len(t, logger.finished, 1)
	require.Len(t, logger.finished[0].debugOutput, 2)
	assert.Equal(t, "step 1", logger.finished[0].debugOutput[0].Message)
	assert.Equal(t, "step 2", logger.finished[0].debugOutput[1].Message)
}

type finishedTest struct {
	id          TestID
	failed      bool
	debugOutput CapturedOutput
}

type collectingTestLogger struct {
	started  []TestID
	errors   []error
	finished []finishedTest
	skipped  []TestID
}

func (l *collectingTestLogger) TestStarted(id TestID) {
	l.started = append(l.started, id)
}

func (l *collectingTestLogger) TestError(id TestID, err error) {
	l.errors = append(l.errors, err)
}

func (l *collectingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	l.finished = append(l.finished, finishedTest{id: id, failed: failed, debugOutput: debugOutput})
}

func (l *collectingTestLogger) TestSkipped(id TestID, reason string) {
	l.skipped = append(l.skipped, id)
}
