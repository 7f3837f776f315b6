package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	internalLoader "github.com/goliatone/go-cardform/internal/template/loader"
	"github.com/goliatone/go-cardform/pkg/model"
	"github.com/goliatone/go-cardform/pkg/render"
	"github.com/goliatone/go-cardform/pkg/renderers/vanilla"
	pkgtemplate "github.com/goliatone/go-cardform/pkg/template"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom template document loader.
func WithLoader(loader pkgtemplate.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithExtractor injects a custom smart field extractor.
func WithExtractor(extractor model.Extractor) Option {
	return func(o *Orchestrator) {
		o.extractor = extractor
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDecorators registers decorators that run against the extracted form
// model before rendering.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// Orchestrator coordinates the full pipeline from template document to
// rendered output. It applies sensible defaults (vanilla renderer, embedded
// templates) while remaining open to dependency injection for advanced
// callers.
type Orchestrator struct {
	loader          pkgtemplate.Loader
	extractor       model.Extractor
	registry        *render.Registry
	defaultRenderer string
	decorators      []model.Decorator
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a form from a template
// document.
type Request struct {
	// Source identifies where the template document lives. Optional when
	// Document is supplied.
	Source pkgtemplate.Source

	// Document allows callers to bypass the loader when they already have a
	// loaded payload.
	Document *pkgtemplate.Document

	// TemplateID labels the generated form model. Falls back to the document
	// location when empty.
	TemplateID string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as prefilled values
	// or server-side errors that renderers can surface. When omitted,
	// renderers receive the zero-value struct.
	RenderOptions render.RenderOptions
}

// Generate executes the loader → scene decode → extractor → renderer sequence
// and returns the rendered bytes (HTML for the default vanilla renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	scene := pkgtemplate.DecodeDocument(doc)

	form, err := o.extractor.Extract(scene)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: extract fields: %w", err)
	}
	form.TemplateID = templateID(req, doc)

	if err := o.applyDecorators(&form); err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgtemplate.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgtemplate.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgtemplate.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(form *model.FormModel) error {
	if len(o.decorators) == 0 || form == nil {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return fmt.Errorf("orchestrator: decorate form: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(pkgtemplate.NewLoaderOptions())
	}
	if o.extractor == nil {
		o.extractor = model.NewExtractor()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}

func templateID(req Request, doc pkgtemplate.Document) string {
	if id := strings.TrimSpace(req.TemplateID); id != "" {
		return id
	}
	return doc.Location()
}
