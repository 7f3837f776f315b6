package template

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Object kinds produced by the card designer. The scene is an opaque export
// from a third-party canvas engine; anything beyond these discriminants and
// the smart-field marker is carried but not interpreted.
const (
	ObjectKindRect  = "rect"
	ObjectKindText  = "text"
	ObjectKindImage = "image"
)

// Object is one positioned drawable in a canvas. Geometry and styling are
// pass-through; IsSmartField, SmartFieldType, and DataType form the marker
// contract the extractor depends on.
type Object struct {
	Kind string `json:"type" yaml:"type"`

	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Angle  float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	ScaleX float64 `json:"scaleX,omitempty" yaml:"scaleX,omitempty"`
	ScaleY float64 `json:"scaleY,omitempty" yaml:"scaleY,omitempty"`

	Text       string  `json:"text,omitempty" yaml:"text,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Src        string  `json:"src,omitempty" yaml:"src,omitempty"`
	Fill       string  `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke     string  `json:"stroke,omitempty" yaml:"stroke,omitempty"`

	IsSmartField   bool   `json:"isSmartField,omitempty" yaml:"isSmartField,omitempty"`
	SmartFieldType string `json:"smartFieldType,omitempty" yaml:"smartFieldType,omitempty"`
	DataType       string `json:"dataType,omitempty" yaml:"dataType,omitempty"`
}

// Scene is the decoded template: two optional canvases, each an ordered
// object list. A missing canvas is an empty list, never nil-vs-present
// semantics.
type Scene struct {
	Front []Object
	Back  []Object
}

// Empty reports whether neither canvas carries objects.
func (s Scene) Empty() bool {
	return len(s.Front) == 0 && len(s.Back) == 0
}

// DecodeScene parses a raw template payload into a Scene. Decoding is
// tolerant by contract: malformed or absent canvas data degrades to empty
// object lists so downstream extraction sees zero fields instead of an
// error. JSON is the primary encoding; YAML exports are accepted as well.
func DecodeScene(raw []byte) Scene {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return Scene{}
	}

	payload := []byte(trimmed)
	if !looksLikeJSON(trimmed) {
		converted, ok := yamlToJSON(payload)
		if !ok {
			return Scene{}
		}
		payload = converted
	}

	var envelope struct {
		Front json.RawMessage `json:"front"`
		Back  json.RawMessage `json:"back"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return Scene{}
	}

	return Scene{
		Front: decodeCanvas(envelope.Front),
		Back:  decodeCanvas(envelope.Back),
	}
}

// DecodeDocument decodes the scene carried by a loaded document.
func DecodeDocument(doc Document) Scene {
	return DecodeScene(doc.raw)
}

// decodeCanvas accepts either the canvas-engine envelope {"objects": [...]}
// or a bare object array. Anything else decodes to an empty list.
func decodeCanvas(raw json.RawMessage) []Object {
	if len(raw) == 0 {
		return nil
	}

	var envelope struct {
		Objects []json.RawMessage `json:"objects"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Objects != nil {
		return decodeObjects(envelope.Objects)
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		return decodeObjects(list)
	}

	return nil
}

// decodeObjects skips entries that do not decode rather than dropping the
// whole canvas: one corrupt shape must not hide the remaining fields.
func decodeObjects(raw []json.RawMessage) []Object {
	if len(raw) == 0 {
		return nil
	}
	out := make([]Object, 0, len(raw))
	for _, entry := range raw {
		var obj Object
		if err := json.Unmarshal(entry, &obj); err != nil {
			continue
		}
		out = append(out, obj)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func looksLikeJSON(trimmed string) bool {
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

func yamlToJSON(raw []byte) ([]byte, bool) {
	var decoded map[string]any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, false
	}
	payload, err := json.Marshal(decoded)
	if err != nil {
		return nil, false
	}
	return payload, true
}
