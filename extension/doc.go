// Package extension provides the run-time registry that maps extension
// points to the handlers plugins contribute to them.
//
// A Point is a typed identity: Point[H] only accepts handlers of shape H, so
// a checker can never be registered where a renderer is expected.  Handlers
// are kept in registration order, which is the order folds apply them in.
// The registry is populated during setup, frozen before a run starts and
// only read afterwards.
package extension
