// Package model contains the contracts shared between the docflow engine and
// its plugins.
//
// The payloads flowing through a pipeline (source sets, documentable models,
// page trees) are opaque to the engine and are expressed as type parameters.
// The `types` sub-package defines one capability interface per pipeline stage
// so that every extension point has a statically checked handler shape.
package model
