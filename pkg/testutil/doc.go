// Package testutil provides fixtures shared by invtweaks tests: a sample
// category tree, temp file helpers and an isolated config environment.
//
// It must not be imported by tests of pkg/tree or pkg/paths, which it
// depends on.
package testutil
