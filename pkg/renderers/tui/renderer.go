package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-cardform/pkg/model"
	"github.com/goliatone/go-cardform/pkg/render"
	"github.com/goliatone/go-cardform/pkg/values"
)

const dateLayout = "2006-01-02"

var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// Renderer implements render.Renderer for terminal-driven sessions. It walks
// the form front side first, then back, prompting once per smart field and
// serializing the collected record.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (render.Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:       driver,
		outputFormat: OutputFormatJSON,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Render prompts for every smart field and returns the serialized record.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	render.LocalizeFormModel(&form, opts)
	sections := render.SplitSides(form)

	record := values.NewRecord(form.Fields)
	record.Set(opts.Values)

	if !sections.Empty() {
		if err := r.promptSide(ctx, "Front side", sections.Front, record); err != nil {
			return nil, err
		}
		if err := r.promptSide(ctx, "Back side", sections.Back, record); err != nil {
			return nil, err
		}
	} else if err := r.driver.Info(ctx, "Template has no smart fields; nothing to collect."); err != nil {
		return nil, err
	}

	collected := record.Snapshot()
	if r.submitTransformer != nil {
		var err error
		collected, err = r.submitTransformer(collected)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	return r.serialize(collected)
}

func (r *Renderer) promptSide(ctx context.Context, banner string, fields []model.SmartField, record *values.Record) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.driver.Info(ctx, "== "+banner+" =="); err != nil {
		return err
	}
	for _, field := range fields {
		answer, err := r.promptField(ctx, field, record)
		if err != nil {
			return err
		}
		record.Set(map[string]any{field.ID: answer})
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, field model.SmartField, record *values.Record) (any, error) {
	current := ""
	if raw, ok := record.Get(field.ID); ok {
		if s, isString := raw.(string); isString {
			current = s
		}
	}

	switch field.Type {
	case model.FieldTypeTextarea:
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message: field.Label,
			Default: current,
			Help:    field.Placeholder,
		})
	case model.FieldTypeDate:
		return r.driver.Input(ctx, InputConfig{
			Message:   field.Label + " (" + dateLayout + ")",
			Default:   current,
			Help:      field.Placeholder,
			Validator: validateDate,
		})
	case model.FieldTypeFile:
		return r.driver.Input(ctx, InputConfig{
			Message:   field.Label + " (path to image)",
			Default:   current,
			Help:      field.Placeholder,
			Validator: validateImagePath,
		})
	default:
		return r.driver.Input(ctx, InputConfig{
			Message: field.Label,
			Default: current,
			Help:    field.Placeholder,
		})
	}
}

func (r *Renderer) serialize(collected map[string]any) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		keys := make([]string, 0, len(collected))
		for key := range collected {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var b strings.Builder
		for _, key := range keys {
			fmt.Fprintf(&b, "%s: %v\n", key, collected[key])
		}
		return []byte(b.String()), nil
	}

	payload, err := json.MarshalIndent(collected, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: serialize values: %w", err)
	}
	return payload, nil
}

func validateDate(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errors.New("a date is required")
	}
	if _, err := time.Parse(dateLayout, trimmed); err != nil {
		return fmt.Errorf("enter a date as %s", dateLayout)
	}
	return nil
}

func validateImagePath(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errors.New("a file path is required")
	}
	ext := strings.ToLower(filepath.Ext(trimmed))
	if _, ok := imageExtensions[ext]; !ok {
		return fmt.Errorf("unsupported image type %q", ext)
	}
	return nil
}
