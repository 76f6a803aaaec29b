// Package assert provides debug-build assertions for the bounded containers.
//
// Overview:
//
//   - Precondition violations on the containers (index out of the domain,
//     duplicate add, missing remove/update target, pop on empty) are
//     programmer errors, not runtime conditions. They are never returned as
//     errors.
//   - In a release build the checks are compiled out: every call site is
//     guarded by the constant Enabled, which is false unless the module is
//     built with the lvdebug tag.
//   - In a debug build (go test -tags lvdebug ./...) a failed check logs the
//     condition through zerolog and panics with a *Failure.
//
// Usage:
//
//	if assert.Enabled {
//	    assert.Less(int(value), len(index), "value < capacity")
//	}
//
// The helper functions themselves always check; only the guard decides
// whether they are reached. This keeps them testable in every build.
package assert
