package model

import (
	"strings"

	pkgtemplate "github.com/goliatone/go-cardform/pkg/template"
)

// Extractor walks a decoded template scene and derives the ordered smart
// field list.
type Extractor struct {
	opts Options
}

// New creates an Extractor with the supplied options.
func New(options Options) *Extractor {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	if len(options.Placeholders) > 0 {
		for fieldType, tpl := range options.Placeholders {
			opts.Placeholders[fieldType] = tpl
		}
	}
	return &Extractor{opts: opts}
}

// Extract derives the smart field list from a scene. Fields keep the order
// they were first encountered: front canvas before back, array order within a
// side. That ordering drives the form's visual grouping and tab order, so it
// is part of the contract. Extraction never fails; malformed input degrades
// to a partial or empty list.
func (e *Extractor) Extract(scene pkgtemplate.Scene) (FormModel, error) {
	form := FormModel{}

	seen := make(map[string]struct{})
	form.Fields = e.collect(form.Fields, scene.Front, SideFront, seen)
	form.Fields = e.collect(form.Fields, scene.Back, SideBack, seen)

	return form, nil
}

func (e *Extractor) collect(fields []SmartField, objects []pkgtemplate.Object, side Side, seen map[string]struct{}) []SmartField {
	for _, obj := range objects {
		if !obj.IsSmartField {
			continue
		}
		id := strings.TrimSpace(obj.SmartFieldType)
		if id == "" {
			continue
		}
		// First occurrence wins across both sides; later duplicates are
		// ignored rather than merged.
		if _, exists := seen[id]; exists {
			continue
		}
		seen[id] = struct{}{}

		fieldType := inferFieldType(obj.DataType, id)
		fields = append(fields, SmartField{
			ID:          id,
			Label:       e.opts.Labeler(obj.Text, id),
			Type:        fieldType,
			Placeholder: e.placeholderFor(fieldType, id),
			Side:        side,
			Required:    true,
		})
	}
	return fields
}

func (e *Extractor) placeholderFor(fieldType FieldType, id string) string {
	tpl, ok := e.opts.Placeholders[fieldType]
	if !ok {
		tpl = DefaultPlaceholders()[FieldTypeText]
	}
	return strings.ReplaceAll(tpl, "{field}", id)
}

// inferFieldType resolves the input type for a smart field. An explicit
// dataType hint wins when it maps to a known type; otherwise the identifier
// string is inspected. Precedence for identifiers carrying several trigger
// substrings is date, then file, then textarea, then text, first match wins.
func inferFieldType(dataType, id string) FieldType {
	switch strings.TrimSpace(strings.ToLower(dataType)) {
	case "date":
		return FieldTypeDate
	case "file":
		return FieldTypeFile
	case "textarea":
		return FieldTypeTextarea
	}

	lowered := strings.ToLower(id)
	switch {
	case strings.Contains(lowered, "date"):
		return FieldTypeDate
	case strings.Contains(lowered, "photo"), strings.Contains(lowered, "signature"):
		return FieldTypeFile
	case strings.Contains(lowered, "text") && strings.Contains(lowered, "back"):
		return FieldTypeTextarea
	default:
		return FieldTypeText
	}
}
