// Package cardform turns designer-authored card templates into dynamic data
// entry forms. It extracts smart fields from a template document's front and
// back canvases, infers an input type for each, and renders the resulting form
// through pluggable renderers.
package cardform

import (
	"context"

	internalLoader "github.com/goliatone/go-cardform/internal/template/loader"
	"github.com/goliatone/go-cardform/pkg/model"
	"github.com/goliatone/go-cardform/pkg/orchestrator"
	"github.com/goliatone/go-cardform/pkg/render"
	pkgtemplate "github.com/goliatone/go-cardform/pkg/template"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// SmartField aliases the extracted field description for convenience.
type SmartField = model.SmartField

// FormModel aliases the extracted form model for convenience.
type FormModel = model.FormModel

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgtemplate.LoaderOption) pkgtemplate.Loader {
	cfg := pkgtemplate.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewExtractor constructs a smart field extractor backed by the internal
// implementation.
func NewExtractor(options ...model.ExtractorOption) model.Extractor {
	return model.NewExtractor(options...)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the template source, extracts its smart fields, and
// renders the form using the named renderer. It is the simplest entry point
// for callers that just want HTML output.
func GenerateHTML(ctx context.Context, source pkgtemplate.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromDocument renders a form using a pre-loaded document,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateHTMLFromDocument(ctx context.Context, doc pkgtemplate.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}
