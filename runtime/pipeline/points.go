package pipeline

import (
	"github.com/viant/docflow/extension"
	"github.com/viant/docflow/model/types"
)

// Point names shared by every pipeline instantiation.
const (
	PreGenerationCheckPoint           = "docflow.preGenerationCheck"
	SourceTranslatorPoint             = "docflow.sourceToDocumentableTranslator"
	PreMergeTransformerPoint          = "docflow.preMergeDocumentableTransformer"
	DocumentableMergerPoint           = "docflow.documentableMerger"
	DocumentableTransformerPoint      = "docflow.documentableTransformer"
	DocumentableToPageTranslatorPoint = "docflow.documentableToPageTranslator"
	PageTransformerPoint              = "docflow.pageTransformer"
	RendererPoint                     = "docflow.renderer"
)

// Points groups the extension points of a pipeline over source sets U,
// documentables D and page trees P.
type Points[U, D, P any] struct {
	PreGenerationCheck      extension.Point[types.Checker]
	SourceTranslator        extension.Point[types.Translator[U, D]]
	PreMergeTransformer     extension.Point[types.Transformer[[]D]]
	DocumentableMerger      extension.Point[types.Merger[D]]
	DocumentableTransformer extension.Point[types.Transformer[D]]
	PageCreator             extension.Point[types.PageCreator[D, P]]
	PageTransformer         extension.Point[types.Transformer[P]]
	Renderer                extension.Point[types.Renderer[P]]
}

// CorePoints returns the core extension points.
func CorePoints[U, D, P any]() Points[U, D, P] {
	return Points[U, D, P]{
		PreGenerationCheck:      extension.NewPoint[types.Checker](PreGenerationCheckPoint),
		SourceTranslator:        extension.NewSinglePoint[types.Translator[U, D]](SourceTranslatorPoint),
		PreMergeTransformer:     extension.NewPoint[types.Transformer[[]D]](PreMergeTransformerPoint),
		DocumentableMerger:      extension.NewSinglePoint[types.Merger[D]](DocumentableMergerPoint),
		DocumentableTransformer: extension.NewPoint[types.Transformer[D]](DocumentableTransformerPoint),
		PageCreator:             extension.NewSinglePoint[types.PageCreator[D, P]](DocumentableToPageTranslatorPoint),
		PageTransformer:         extension.NewPoint[types.Transformer[P]](PageTransformerPoint),
		Renderer:                extension.NewSinglePoint[types.Renderer[P]](RendererPoint),
	}
}
