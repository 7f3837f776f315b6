package model

// Options configures the extractor behaviour.
type Options struct {
	// Labeler turns an object's visible text (or the raw field identifier)
	// into the label shown next to the input.
	Labeler func(text, fieldID string) string

	// Placeholders maps a field type to its placeholder template. The literal
	// "{field}" is replaced with the field identifier. Wording is a
	// localization concern; only the type-to-template mapping is contract.
	Placeholders map[FieldType]string
}

func defaultOptions() Options {
	return Options{
		Labeler:      DefaultLabeler,
		Placeholders: DefaultPlaceholders(),
	}
}

// DefaultPlaceholders returns the built-in per-type placeholder templates.
func DefaultPlaceholders() map[FieldType]string {
	return map[FieldType]string{
		FieldTypeText:     "Enter {field}",
		FieldTypeDate:     "Choose {field}",
		FieldTypeFile:     "Upload {field}",
		FieldTypeTextarea: "Enter {field} details",
	}
}
