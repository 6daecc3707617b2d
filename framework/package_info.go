// Package framework contains the low-level implementation of test harness
// infrastructure that is not specific to screen lifecycle testing.
//
// The general model is:
//
// 1. There is a general notion of a test context which is similar to Go's
// *testing.T, allowing pieces of test logic to be associated with a test
// identifier and to accumulate success/failure results.
//
// 2. Tests are identified by slash-delimited paths and can be included or
// excluded with regular expression filters.
//
// 3. Progress is reported through a TestLogger; per-test debug output is
// captured and can be dumped for failed tests. At the end of a run the
// accumulated results can be printed to the console and exported as a
// machine-readable report.
//
// The domain-specific code that knows what is being tested is responsible
// for constructing the test entries and running them through a Context;
// see the vctest package.
package framework
