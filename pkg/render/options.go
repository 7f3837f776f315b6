package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form model pipeline.
type RenderOptions struct {
	// Title overrides the heading renderers derive from the template
	// identifier.
	Title string
	// Action sets the submission target for HTML output. Renderers default to
	// posting back to the current URL when empty.
	Action string
	// Values pre-populates rendered controls keyed by field identifier,
	// typically a values.Record snapshot.
	Values map[string]any
	// Errors surfaces server-side validation feedback keyed by field
	// identifier. Renderers map these into inline chrome next to the control.
	Errors map[string][]string
	// Locale selects the translation locale when a Translator is configured.
	Locale string
	// Translator localises placeholder and chrome strings. Nil leaves the
	// extractor-provided wording untouched.
	Translator Translator
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
}
