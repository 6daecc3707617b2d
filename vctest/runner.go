package vctest

import (
	"fmt"
	"runtime"

	"github.com/uiharness/vc-lifecycle-tests/framework"
)

// RunSuites constructs a lifecycle suite for each definition and runs
// every one of its entries, each wrapped in the suite's setup and
// teardown.
//
// The registrar depends on an ordering contract with whatever enumerates
// entries: a suite's construction must finish, completing registration,
// before its entries are listed. This function is where that contract is
// honored; it never enumerates entries on anything but a fully constructed
// suite.
func RunSuites(
	defs []SuiteDefinition,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	// Screen checks run on the thread that owns UI state, so the whole
	// run is pinned to a single OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	return framework.Run(filter, testLogger, func(c *framework.Context) {
		for _, def := range defs {
			runSuite(c, def)
		}
	})
}

func runSuite(c *framework.Context, def SuiteDefinition) {
	suite, err := NewSuite(def)
	if err != nil {
		// A definition that cannot produce a suite is a wiring mistake,
		// and it must surface as a failure no matter which filters this
		// run uses; RunGroup is unfiltered.
		c.RunGroup(fmt.Sprintf("%T", def), func(c *framework.Context) {
			c.RunGroup("configuration", func(c *framework.Context) {
				c.Errorf("suite configuration error: %s", err)
			})
		})
		return
	}

	c.RunGroup(suite.Name(), func(c *framework.Context) {
		for _, entry := range suite.Entries() {
			entry := entry
			c.Run(entry.Name, func(c *framework.Context) {
				t := &T{context: c, suite: suite}
				// Teardown is deferred first so it runs even when the
				// check stops the test with FailNow.
				defer suite.TearDown()
				suite.SetUp(t)
				entry.Run(suite, t)
			})
		}
	})
}
