package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-cardform/pkg/model"
)

// ErrMissingTranslator is reported to OnMissing handlers when localisation is
// requested without a configured Translator.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a translation key for a locale. Implementations return
// an error (or an empty string) when the key is unknown so the caller can fall
// back to the extractor-provided wording.
type Translator interface {
	Translate(locale, key string) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string) (string, error)

// Translate calls the underlying function.
func (fn TranslatorFunc) Translate(locale, key string) (string, error) {
	return fn(locale, key)
}

// MissingTranslationHandler decides the string rendered when a translation
// lookup fails. The fallback is the untranslated string already on the model.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

func missingTranslationDefault(_ string, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

const placeholderKeyPrefix = "placeholder."

// LocalizeFormModel mutates the supplied form model in place, translating the
// per-type placeholder strings through the configured Translator. Keys follow
// the "placeholder.<type>" convention ("placeholder.date", "placeholder.file"
// and so on); the translated template may carry the "{field}" token, which is
// substituted with the field identifier.
//
// This is best-effort: a nil translator or a failed lookup routes through
// opts.OnMissing and otherwise leaves the extractor wording untouched.
func LocalizeFormModel(form *model.FormModel, opts RenderOptions) {
	if form == nil || opts.Translator == nil {
		return
	}

	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	for i := range form.Fields {
		field := &form.Fields[i]
		key := placeholderKeyPrefix + string(field.Type)

		translated, err := opts.Translator.Translate(opts.Locale, key)
		if err != nil || strings.TrimSpace(translated) == "" {
			field.Placeholder = onMissing(opts.Locale, key, field.Placeholder, err)
			continue
		}
		field.Placeholder = strings.ReplaceAll(translated, "{field}", field.ID)
	}
}
