// Package timer measures accumulated wall-clock time across start/stop
// intervals.
//
// A Timer sums the length of every [Start, Stop] interval. Poll reports the
// sum so far, including the interval in progress. Scope starts the timer
// and returns a handle whose Close stops it, for use with defer:
//
//	sc, _ := t.Scope()
//	defer sc.Close()
//
// Starting a running timer or stopping an idle one is an error
// (ErrAlreadyRunning, ErrNotRunning; both wrap ErrInvalidState).
// A Timer is not safe for concurrent use.
package timer
