package vctest

// Screen is the subject under test: a view-controller-like component with
// a lazily created visible representation.
//
// Implementations must be freshly constructible via ScreenType.New, must
// create their view on first access to View, and must tolerate UnloadView
// being called whether or not the view was ever loaded. A screen instance
// is never reused across test entries; every entry gets a fresh one.
type Screen interface {
	// View returns the screen's visible representation, creating it on
	// first access.
	View() interface{}

	// ViewLoaded reports whether the visible representation currently
	// exists.
	ViewLoaded() bool

	// UnloadView discards the visible representation, if any.
	UnloadView()
}

// ScreenType describes a screen type so a suite can construct instances of
// it and derive entry names from it.
type ScreenType struct {
	// Name is the screen's type name, such as "LoginScreen". Entry names
	// are derived from it, so it must be unique across suites.
	Name string

	// New constructs a fresh, uninitialized screen. It must not return
	// nil.
	New func() Screen
}

func (s ScreenType) defined() bool {
	return s.Name != "" && s.New != nil
}
