// Package estimation implements the racking time estimation engine.
//
// The engine validates a batch of raw server records and converts each one into
// a time estimate via a static factor table lookup. A batch is all-or-nothing:
// the first invalid record aborts the whole computation.
package estimation
