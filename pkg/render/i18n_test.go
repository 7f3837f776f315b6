package render

import (
	"errors"
	"testing"

	"github.com/goliatone/go-cardform/pkg/model"
)

type mapTranslator map[string]string

func (m mapTranslator) Translate(locale, key string) (string, error) {
	if value, ok := m[locale+"|"+key]; ok {
		return value, nil
	}
	return "", errors.New("missing translation")
}

func TestLocalizeFormModelTranslatesPlaceholders(t *testing.T) {
	form := model.FormModel{
		Fields: []model.SmartField{
			{ID: "dob", Type: model.FieldTypeDate, Placeholder: "Choose dob"},
			{ID: "photo", Type: model.FieldTypeFile, Placeholder: "Upload photo"},
		},
	}

	translator := mapTranslator{
		"es|placeholder.date": "Elige {field}",
		"es|placeholder.file": "Sube {field}",
	}

	LocalizeFormModel(&form, RenderOptions{Locale: "es", Translator: translator})

	if form.Fields[0].Placeholder != "Elige dob" {
		t.Fatalf("date placeholder = %q", form.Fields[0].Placeholder)
	}
	if form.Fields[1].Placeholder != "Sube photo" {
		t.Fatalf("file placeholder = %q", form.Fields[1].Placeholder)
	}
}

func TestLocalizeFormModelFallsBackOnMissingKey(t *testing.T) {
	form := model.FormModel{
		Fields: []model.SmartField{
			{ID: "name", Type: model.FieldTypeText, Placeholder: "Enter name"},
		},
	}

	LocalizeFormModel(&form, RenderOptions{Locale: "es", Translator: mapTranslator{}})

	if form.Fields[0].Placeholder != "Enter name" {
		t.Fatalf("expected fallback wording, got %q", form.Fields[0].Placeholder)
	}
}

func TestLocalizeFormModelCustomMissingHandler(t *testing.T) {
	form := model.FormModel{
		Fields: []model.SmartField{
			{ID: "name", Type: model.FieldTypeText, Placeholder: "Enter name"},
		},
	}

	var capturedKey string
	LocalizeFormModel(&form, RenderOptions{
		Locale:     "fr",
		Translator: mapTranslator{},
		OnMissing: func(_ string, key, _ string, _ error) string {
			capturedKey = key
			return "<missing>"
		},
	})

	if capturedKey != "placeholder.text" {
		t.Fatalf("unexpected missing key %q", capturedKey)
	}
	if form.Fields[0].Placeholder != "<missing>" {
		t.Fatalf("missing handler result not applied: %q", form.Fields[0].Placeholder)
	}
}

func TestLocalizeFormModelNoTranslatorIsNoop(t *testing.T) {
	form := model.FormModel{
		Fields: []model.SmartField{
			{ID: "name", Type: model.FieldTypeText, Placeholder: "Enter name"},
		},
	}

	LocalizeFormModel(&form, RenderOptions{Locale: "es"})

	if form.Fields[0].Placeholder != "Enter name" {
		t.Fatalf("placeholder should be untouched, got %q", form.Fields[0].Placeholder)
	}
	LocalizeFormModel(nil, RenderOptions{})
}
