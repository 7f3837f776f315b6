package cardform_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	cardform "github.com/goliatone/go-cardform"
	"github.com/goliatone/go-cardform/pkg/orchestrator"
	pkgtemplate "github.com/goliatone/go-cardform/pkg/template"
)

const badgeTemplate = `{
  "front": {"objects": [
    {"type": "text", "text": "Full Name:", "isSmartField": true, "smartFieldType": "name"},
    {"type": "image", "isSmartField": true, "smartFieldType": "photo"}
  ]},
  "back": {"objects": [
    {"type": "text", "text": "Notes:", "isSmartField": true, "smartFieldType": "back_text"}
  ]}
}`

func TestGenerateHTMLEndToEnd(t *testing.T) {
	templates := fstest.MapFS{
		"badge.json": &fstest.MapFile{Data: []byte(badgeTemplate)},
	}
	loader := cardform.NewLoader(pkgtemplate.WithFileSystem(templates))

	out, err := cardform.GenerateHTML(
		context.Background(),
		pkgtemplate.SourceFromFS("badge.json"),
		"vanilla",
		orchestrator.WithLoader(loader),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	html := string(out)
	for _, want := range []string{
		`data-field-id="name"`,
		`accept="image/*"`,
		"<textarea",
		"cf-side--front",
		"cf-side--back",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("missing %q:\n%s", want, html)
		}
	}
}

func TestGenerateHTMLFromDocument(t *testing.T) {
	doc, err := pkgtemplate.NewDocument(pkgtemplate.SourceFromFile("badge.json"), []byte(badgeTemplate))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	out, err := cardform.GenerateHTMLFromDocument(context.Background(), doc, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `data-field-id="photo"`) {
		t.Fatalf("photo field missing:\n%s", out)
	}
}

func TestNewExtractorExposedAtRoot(t *testing.T) {
	extractor := cardform.NewExtractor()
	form, err := extractor.Extract(pkgtemplate.DecodeScene([]byte(badgeTemplate)))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(form.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(form.Fields))
	}
}

func TestEmbeddedTemplatesAvailable(t *testing.T) {
	fsys := cardform.EmbeddedTemplates()
	if _, err := fsys.Open("templates/form.tmpl"); err != nil {
		t.Fatalf("embedded template missing: %v", err)
	}
}
