package vanilla

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-cardform/pkg/model"
	"github.com/goliatone/go-cardform/pkg/render"
)

type fieldRenderer struct {
	values map[string]any
	errors map[string][]string
}

func newFieldRenderer(options render.RenderOptions) *fieldRenderer {
	return &fieldRenderer{
		values: options.Values,
		errors: options.Errors,
	}
}

// render produces the full markup for one smart field: wrapper, label,
// control, and any validation messages. Control markup is assembled here and
// handed to the page template pre-rendered, so the template stays a pure
// layout concern.
func (r *fieldRenderer) render(field model.SmartField) string {
	id := controlID(field.ID)
	messages := r.errors[field.ID]

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="cf-field cf-field--%s" data-field-id=%q>`, html.EscapeString(string(field.Type)), html.EscapeString(field.ID))
	fmt.Fprintf(&b, `<label class="cf-field__label" for=%q><span class="cf-field__icon" aria-hidden="true">%s</span>%s`,
		id, fieldIcon(field.Type), html.EscapeString(sanitizeText(field.Label)))
	if field.Required {
		b.WriteString(`<span class="cf-field__required" aria-hidden="true">*</span>`)
	}
	b.WriteString(`</label>`)
	b.WriteString(r.control(field, id, len(messages) > 0))
	for _, message := range messages {
		fmt.Fprintf(&b, `<p class="cf-field__error" role="alert">%s</p>`, html.EscapeString(message))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func (r *fieldRenderer) control(field model.SmartField, id string, invalid bool) string {
	name := html.EscapeString(field.ID)
	placeholder := html.EscapeString(sanitizeText(field.Placeholder))
	value := html.EscapeString(r.stringValue(field.ID))

	attrs := fmt.Sprintf(`id=%q name=%q class="cf-field__control"`, id, name)
	if field.Required {
		attrs += ` required`
	}
	if invalid {
		attrs += ` aria-invalid="true"`
	}

	switch field.Type {
	case model.FieldTypeTextarea:
		return fmt.Sprintf(`<textarea %s rows="3" placeholder=%q>%s</textarea>`, attrs, placeholder, value)
	case model.FieldTypeDate:
		return fmt.Sprintf(`<input type="date" %s value=%q>`, attrs, value)
	case model.FieldTypeFile:
		// File inputs cannot be pre-populated; an existing attachment is
		// surfaced as a data attribute for the surrounding page to display.
		markup := fmt.Sprintf(`<input type="file" %s accept="image/*"`, attrs)
		if value != "" {
			markup += fmt.Sprintf(` data-current=%q`, value)
		}
		return markup + `>`
	default:
		return fmt.Sprintf(`<input type="text" %s placeholder=%q value=%q>`, attrs, placeholder, value)
	}
}

func (r *fieldRenderer) stringValue(id string) string {
	raw, ok := r.values[id]
	if !ok || raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprint(raw)
}

func fieldIcon(fieldType model.FieldType) string {
	switch fieldType {
	case model.FieldTypeDate:
		return "&#128197;"
	case model.FieldTypeFile:
		return "&#128247;"
	case model.FieldTypeTextarea:
		return "&#128221;"
	default:
		return "&#9998;"
	}
}
