package vctest

import (
	"errors"
	"fmt"

	"github.com/stretchr/testify/require"
)

// SuiteDefinition is implemented by each concrete screen test suite. The
// only required capability is declaring which screen type the suite tests;
// the lifecycle and the canonical checks are shared.
//
// There is deliberately no way to build a Suite without a definition, so
// the shared lifecycle logic can never appear to be a runnable suite of
// its own.
type SuiteDefinition interface {
	// ScreenTypeUnderTest returns the descriptor for the screen type this
	// suite validates.
	ScreenTypeUnderTest() ScreenType
}

// FixtureProvider is optionally implemented by suite definitions whose
// checks need seed data loaded before each entry runs.
type FixtureProvider interface {
	// FixtureFile returns the path of a YAML fixture file.
	FixtureFile() string
}

// Suite is the lifecycle test suite for one screen type. NewSuite is the
// only way to obtain one; construction also completes entry registration,
// so any Suite a caller holds is ready for Entries to be listed and run.
type Suite struct {
	def        SuiteDefinition
	screenType ScreenType
	entries    []Entry

	// current subject; set by SetUp, cleared by TearDown
	screen   Screen
	fixtures *FixtureSet
}

// NewSuite builds the suite for a definition and registers its canonical
// check entries. A definition that does not declare a screen type is a
// wiring mistake; the returned error makes the suite unusable and is never
// recovered automatically.
func NewSuite(def SuiteDefinition) (*Suite, error) {
	if def == nil {
		return nil, errors.New("no suite definition provided")
	}
	st := def.ScreenTypeUnderTest()
	if !st.defined() {
		return nil, fmt.Errorf("suite %T: no screen type declared", def)
	}
	s := &Suite{def: def, screenType: st}
	if err := s.registerCanonicalChecks(); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the suite's display name, which is the screen type's name.
func (s *Suite) Name() string {
	return s.screenType.Name
}

// ScreenType returns the descriptor the suite was built from.
func (s *Suite) ScreenType() ScreenType {
	return s.screenType
}

// RunsOnPrimaryThread reports that this suite's checks must execute on the
// thread that owns UI state. Always true for screen lifecycle checks; the
// runner pins the run to one OS thread accordingly.
func (s *Suite) RunsOnPrimaryThread() bool {
	return true
}

// SetUp constructs a fresh screen for the entry about to run and loads the
// definition's fixtures, if it declares any. It runs before every entry.
func (s *Suite) SetUp(t *T) {
	if fp, ok := s.def.(FixtureProvider); ok {
		fixtures, err := LoadFixtures(fp.FixtureFile())
		if err != nil {
			t.Errorf("loading fixtures for %s: %s", s.screenType.Name, err)
			t.FailNow()
		}
		s.fixtures = fixtures
	}
	s.screen = s.screenType.New()
}

// TearDown drops the current screen so it can be reclaimed. It runs after
// every entry, whether or not the check passed.
func (s *Suite) TearDown() {
	s.screen = nil
	s.fixtures = nil
}

// The canonical checks. These are never invoked by their Go names; every
// invocation goes through the uniquely named entries the registrar bound
// to them at construction time.

func checkCreation(s *Suite, t *T) {
	require.NotNil(t, s.screen, "%s was not created during setup", s.screenType.Name)
}

func checkBecameVisible(s *Suite, t *T) {
	require.NotNil(t, s.screen, "%s was not created during setup", s.screenType.Name)
	// Accessing the view materializes it if nothing has loaded it yet,
	// mirroring framework-driven lazy view construction.
	view := s.screen.View()
	require.NotNil(t, view, "%s returned no view", s.screenType.Name)
	require.True(t, s.screen.ViewLoaded(), "%s did not reach its loaded state", s.screenType.Name)
}

func checkVisibilityReleased(s *Suite, t *T) {
	require.NotNil(t, s.screen, "%s was not created during setup", s.screenType.Name)
	// The unload hook must be callable no matter what state the screen is
	// in; the failure condition is the hook terminating abnormally.
	if r := callUnload(s.screen); r != nil {
		t.Errorf("%s.UnloadView terminated abnormally: %+v", s.screenType.Name, r)
	}
}

// callUnload invokes the unload hook and captures a panic from it, and
// only from it, so that assertion failures elsewhere keep their normal
// propagation.
func callUnload(screen Screen) (recovered interface{}) {
	defer func() {
		recovered = recover()
	}()
	screen.UnloadView()
	return nil
}
