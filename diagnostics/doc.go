// Package diagnostics counts the warnings and errors emitted while a
// pipeline runs and exposes the Logger plugins report them through.
//
// The Logger travels in the run context, so handlers executing inside any
// stage, including concurrent translation tasks, can record diagnostics
// without holding a reference to the engine.
package diagnostics
