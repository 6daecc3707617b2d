package vctest

import "sync"

var (
	suitesLock       sync.Mutex
	registeredSuites []SuiteDefinition
)

// RegisterSuite adds a suite definition to the global list that the
// harness command runs. Concrete suites normally call this from an init
// function in their own package.
func RegisterSuite(def SuiteDefinition) {
	suitesLock.Lock()
	registeredSuites = append(registeredSuites, def)
	suitesLock.Unlock()
}

// RegisteredSuites returns the registered suite definitions in
// registration order.
func RegisteredSuites() []SuiteDefinition {
	suitesLock.Lock()
	defer suitesLock.Unlock()
	return append([]SuiteDefinition(nil), registeredSuites...)
}
