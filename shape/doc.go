// Package shape holds the in-memory model produced by the shapes reader:
// shapes, their targets, and the closed set of constraint parameters the
// engine knows how to validate.
//
// Shapes are treated as immutable once the reader returns them. That is the
// property the engine relies on to fan validation units out across
// goroutines without locking.
package shape
