// Package meta loads YAML documents (run configuration, plugin settings)
// from any storage supported by github.com/viant/afs, expanding
// ${env.KEY} expressions before decoding.
package meta
