package vctest

import (
	"github.com/uiharness/vc-lifecycle-tests/framework"
)

// fakeView stands in for a screen's visible representation.
type fakeView struct {
	title string
}

// fakeScreen is a controllable subject under test.
type fakeScreen struct {
	view          *fakeView
	viewAccessed  bool
	panicOnUnload bool
}

func (s *fakeScreen) View() interface{} {
	s.viewAccessed = true
	if s.view == nil {
		s.view = &fakeView{title: "fake"}
	}
	return s.view
}

func (s *fakeScreen) ViewLoaded() bool {
	return s.view != nil
}

func (s *fakeScreen) UnloadView() {
	if s.panicOnUnload {
		panic("view released out of order")
	}
	s.view = nil
}

// fakeDef is a suite definition whose factory behavior is configurable.
// Every created screen is recorded so tests can inspect it after the run.
type fakeDef struct {
	typeName  string
	newScreen func() *fakeScreen
	created   []*fakeScreen
}

func (d *fakeDef) ScreenTypeUnderTest() ScreenType {
	return ScreenType{
		Name: d.typeName,
		New: func() Screen {
			s := d.newScreen()
			d.created = append(d.created, s)
			return s
		},
	}
}

func newFakeDef(typeName string) *fakeDef {
	return &fakeDef{
		typeName:  typeName,
		newScreen: func() *fakeScreen { return &fakeScreen{} },
	}
}

// emptyDef declares no screen type, which is a configuration error.
type emptyDef struct{}

func (emptyDef) ScreenTypeUnderTest() ScreenType {
	return ScreenType{}
}

// runEntry pushes a single entry through setup, the check, and teardown,
// the same way the runner does, and returns the results.
func runEntry(suite *Suite, entry Entry) framework.Results {
	return framework.Run(nil, nil, func(c *framework.Context) {
		c.Run(entry.Name, func(c *framework.Context) {
			t := &T{context: c, suite: suite}
			defer suite.TearDown()
			suite.SetUp(t)
			entry.Run(suite, t)
		})
	})
}

func findEntry(suite *Suite, name string) (Entry, bool) {
	for _, e := range suite.Entries() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
