package issuance

import (
	"net/http"

	"github.com/rs/zerolog"

	internalLoader "github.com/goliatone/go-cardform/internal/template/loader"
	"github.com/goliatone/go-cardform/pkg/model"
	"github.com/goliatone/go-cardform/pkg/orchestrator"
	pkgtemplate "github.com/goliatone/go-cardform/pkg/template"
)

// Capability names checked before serving or accepting the form.
const (
	CapabilityView  = "card.view"
	CapabilityIssue = "card.issue"
)

// GuardFunc can reject a request before any processing happens.
type GuardFunc func(r *http.Request) error

// CapabilityFunc reports whether the current deployment grants a named
// capability. A nil function grants everything.
type CapabilityFunc func(capability string) bool

type Options struct {
	RoutePath string

	// Source locates the template document rendered by this component.
	Source pkgtemplate.Source

	// TemplateID labels the generated form. Falls back to the source location.
	TemplateID string

	// Orchestrator runs the template-to-HTML pipeline for GET requests.
	Orchestrator *orchestrator.Orchestrator

	// Loader and Extractor rebuild the field list on POST so submissions are
	// matched against the current template.
	Loader    pkgtemplate.Loader
	Extractor model.Extractor

	// Sink receives completed submissions.
	Sink Sink

	Guard      GuardFunc
	Capability CapabilityFunc
	Logger     zerolog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath: "/cards/issue",
		Logger:    zerolog.Nop(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/cards/issue"
	}
	if opts.Orchestrator == nil {
		opts.Orchestrator = orchestrator.New()
	}
	if opts.Loader == nil {
		opts.Loader = internalLoader.New(pkgtemplate.NewLoaderOptions())
	}
	if opts.Extractor == nil {
		opts.Extractor = model.NewExtractor()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithSource(src pkgtemplate.Source) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Source = src
	}
}

func WithTemplateID(id string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.TemplateID = id
	}
}

func WithOrchestrator(orc *orchestrator.Orchestrator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Orchestrator = orc
	}
}

func WithLoader(loader pkgtemplate.Loader) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Loader = loader
	}
}

func WithExtractor(extractor model.Extractor) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Extractor = extractor
	}
}

func WithSink(sink Sink) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Sink = sink
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithCapability(capability CapabilityFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Capability = capability
	}
}

func WithLogger(logger zerolog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
