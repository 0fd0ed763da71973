// Package pipeline drives a documentation run through its fixed sequence of
// stages:
//
//	validityCheck → translate → preMergeTransform → merge →
//	postMergeTransform → createPages → transformPages → render → report
//
// Each stage resolves its handlers from an extension.Registry and runs them as
// a single call, an ordered fold, or (translate only) a concurrent fan-out
// over the configured source sets.  Every stage yields an explicit Result that
// the driver switches on, so the abort points are plain control flow rather
// than unwinding.
package pipeline
