package vctest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FixtureSet holds seed data for a check run, loaded from a YAML file of
// key/value pairs. Suites that declare a fixture file via FixtureProvider
// get a fresh FixtureSet loaded during setup, available to checks through
// T.Fixtures.
type FixtureSet struct {
	values map[string]interface{}
}

// LoadFixtures reads a YAML fixture file into a FixtureSet.
func LoadFixtures(path string) (*FixtureSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture file: %w", err)
	}
	values := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing fixture file %s: %w", path, err)
	}
	return &FixtureSet{values: values}, nil
}

// Value returns the raw fixture value for a key.
func (f *FixtureSet) Value(key string) (interface{}, bool) {
	if f == nil {
		return nil, false
	}
	v, ok := f.values[key]
	return v, ok
}

// String returns the fixture value for a key if it is a string, or ""
// otherwise.
func (f *FixtureSet) String(key string) string {
	if v, ok := f.Value(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Len returns the number of top-level fixture values.
func (f *FixtureSet) Len() int {
	if f == nil {
		return 0
	}
	return len(f.values)
}
