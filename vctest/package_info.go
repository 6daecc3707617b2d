// Package vctest implements lifecycle test suites for view-controller-like
// screens.
//
// A concrete suite only has to say which screen type it tests, by
// implementing SuiteDefinition. Constructing the suite synthesizes its
// test entries: uniquely named checks such as testLoginScreenCreation,
// derived from the screen type's name and bound to shared validation
// logic, so failures name the screen directly and suite authors write no
// test bodies.
//
// Harness infrastructure that is not specific to screen testing, such as
// result aggregation, filtering, and reporting, is in the lower-level
// framework package.
package vctest
