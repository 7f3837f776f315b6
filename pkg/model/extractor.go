package model

import (
	"github.com/goliatone/go-cardform/internal/model"
	pkgtemplate "github.com/goliatone/go-cardform/pkg/template"
)

// Extractor converts decoded template scenes into form models.
type Extractor interface {
	Extract(scene pkgtemplate.Scene) (FormModel, error)
}

// ExtractorOption configures the extractor behaviour.
type ExtractorOption func(*extractorOptions)

type extractorOptions struct {
	labeler      func(text, fieldID string) string
	placeholders map[FieldType]string
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(text, fieldID string) string) ExtractorOption {
	return func(opts *extractorOptions) {
		opts.labeler = labeler
	}
}

// WithPlaceholderTemplates overrides placeholder templates per field type.
// Entries merge over the defaults; the literal "{field}" is replaced with the
// field identifier.
func WithPlaceholderTemplates(templates map[FieldType]string) ExtractorOption {
	return func(opts *extractorOptions) {
		opts.placeholders = templates
	}
}

// NewExtractor returns an Extractor backed by the internal implementation.
func NewExtractor(options ...ExtractorOption) Extractor {
	cfg := extractorOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := model.Options{}
	if cfg.labeler != nil {
		internalOpts.Labeler = cfg.labeler
	}
	if cfg.placeholders != nil {
		internalOpts.Placeholders = cfg.placeholders
	}

	return model.New(internalOpts)
}
