//go:build !lvdebug

package assert

// Enabled reports whether precondition checks are compiled in.
const Enabled = false
