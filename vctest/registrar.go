package vctest

import (
	"fmt"
	"sort"
	"sync"
)

// CheckFunc is one screen validation routine. Checks receive the suite so
// they can reach the current screen, and a T for assertions.
type CheckFunc func(s *Suite, t *T)

// Entry is a uniquely named check exposed to the host runner. Entries are
// synthesized when a suite is constructed, so concrete suites never write
// test bodies for the canonical lifecycle checks.
type Entry struct {
	Name string
	Run  CheckFunc
}

// canonicalKinds is the fixed, ordered list of lifecycle checks every
// screen suite gets.
var canonicalKinds = []struct {
	suffix string
	check  CheckFunc
}{
	{"Creation", checkCreation},
	{"BecameVisible", checkBecameVisible},
	{"VisibilityReleased", checkVisibilityReleased},
}

// entryName derives an entry's name from the screen type name and the
// check kind, such as testLoginScreenCreation.
func entryName(typeName, suffix string) string {
	return "test" + typeName + suffix
}

// classRegistry records which entry names exist for each screen type, so
// that constructing several suites for the same type re-registers the same
// names harmlessly instead of duplicating or clobbering them.
//
// The mutex only matters if a host ever constructs suites concurrently;
// the harness itself constructs them serially.
type classRegistry struct {
	lock    sync.Mutex
	entries map[string]map[string]string // type name -> entry name -> kind suffix
}

var registry = &classRegistry{entries: make(map[string]map[string]string)}

// register records an entry name for a screen type. Registering the same
// name for the same kind again is a no-op; the same name for a different
// kind is a conflict.
func (r *classRegistry) register(typeName, name, kind string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	byName := r.entries[typeName]
	if byName == nil {
		byName = make(map[string]string)
		r.entries[typeName] = byName
	}
	if existing, ok := byName[name]; ok {
		if existing == kind {
			return nil
		}
		return fmt.Errorf("entry %s is already registered for %s as a %s check",
			name, typeName, existing)
	}
	byName[name] = kind
	return nil
}

func (r *classRegistry) names(typeName string) []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	var ret []string
	for name := range r.entries[typeName] {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// RegisteredEntryNames returns, in sorted order, every entry name that has
// been registered for a screen type across all suite constructions.
func RegisteredEntryNames(typeName string) []string {
	return registry.names(typeName)
}

// registerCanonicalChecks synthesizes this suite's canonical entries and
// records them in the class registry. It runs during construction, and
// NewSuite does not return until it completes; that is what lets the
// runner safely list entries on any suite it holds. A runner that
// enumerated entries before construction finished would not see them.
func (s *Suite) registerCanonicalChecks() error {
	for _, kind := range canonicalKinds {
		name := entryName(s.screenType.Name, kind.suffix)
		if err := registry.register(s.screenType.Name, name, kind.suffix); err != nil {
			return err
		}
		s.entries = append(s.entries, Entry{Name: name, Run: kind.check})
	}
	return nil
}

// AddCheck registers an additional named check for this suite, beyond the
// canonical lifecycle checks. The entry name is derived the same way as
// the canonical ones ("test" + screen type name + kind). Adding a check
// under a name this suite already has is a no-op.
func (s *Suite) AddCheck(kind string, check CheckFunc) error {
	name := entryName(s.screenType.Name, kind)
	if err := registry.register(s.screenType.Name, name, kind); err != nil {
		return err
	}
	for _, e := range s.entries {
		if e.Name == name {
			return nil
		}
	}
	s.entries = append(s.entries, Entry{Name: name, Run: check})
	return nil
}

// Entries lists the suite's named checks in registration order. Entry
// registration is part of construction, so this is safe to call on any
// suite obtained from NewSuite.
func (s *Suite) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}
