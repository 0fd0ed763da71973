// Package docflow provides an extensible documentation generation pipeline.
//
// A run validates its inputs, translates every source set into a
// documentable model concurrently, merges and transforms the models, builds
// a page tree and renders it.  Every stage is backed by handlers registered
// on named extension points:
//
//   - preGenerationCheck      – validity checks (all, AND-combined)
//   - sourceToDocumentable    – exactly one translator, fanned out per source set
//   - pre/post merge transforms and page transforms – folded in registration order
//   - documentableMerger, documentableToPageTranslator, renderer – exactly one each
//
// Host applications typically interact with the engine via the Service
// façade exposed by the root package:
//
//	cfg, _ := docflow.LoadConfig[SourceSet](ctx, "docflow.yaml")
//	srv, _ := docflow.New[SourceSet, Module, *Page](cfg)
//	_ = srv.RegisterTranslator(myTranslator)
//	...
//	err := srv.Generate(ctx)
//
// For more details see the individual sub-packages.
package docflow
