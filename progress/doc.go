// Package progress records the per-stage progress messages of a pipeline
// run.  Messages are for observability only; the engine never consults them
// to make control-flow decisions.
package progress
