// Package screens contains the reference screens that the harness command
// runs its lifecycle suites against. Each screen is a minimal
// view-controller-like component: it creates its view lazily on first
// access and releases it on unload, which is exactly the behavior the
// vctest suites validate.
package screens
