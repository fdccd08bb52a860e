// Package core contains the plumbing behind WaitAll: the deadline that
// settles exactly once, the sealed result buffer, per-call options carried
// through the context, and the observer hook. It does not spawn work itself;
// package waitall drives these pieces and package executor runs the tasks.
package core
