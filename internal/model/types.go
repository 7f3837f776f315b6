package model

// FieldType is the simplified enum of data-entry input kinds a smart field
// can resolve to. Unknown hints always degrade to FieldTypeText.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeDate     FieldType = "date"
	FieldTypeFile     FieldType = "file"
	FieldTypeTextarea FieldType = "textarea"
)

// Side identifies which card canvas a field was first encountered on.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// SmartField models an individual input derived from a template object.
// Struct fields are annotated so renderers can serialise them directly when
// needed.
type SmartField struct {
	// ID is the smartFieldType identifier; unique across the whole template.
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Placeholder string    `json:"placeholder,omitempty"`
	Side        Side      `json:"side"`
	Required    bool      `json:"required"`
}

// FormModel is the top-level representation renderers consume: the ordered
// field list derived from one template document.
type FormModel struct {
	TemplateID string            `json:"templateId,omitempty"`
	Fields     []SmartField      `json:"fields"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// FieldsOn returns the fields attributed to one side, preserving relative
// order.
func (m FormModel) FieldsOn(side Side) []SmartField {
	var out []SmartField
	for _, field := range m.Fields {
		if field.Side == side {
			out = append(out, field)
		}
	}
	return out
}

// Empty reports whether the template yielded no smart fields. Callers treat
// this as a distinct UI state, not merely an empty list.
func (m FormModel) Empty() bool {
	return len(m.Fields) == 0
}
