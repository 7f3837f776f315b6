package render

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-cardform/pkg/model"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, model.FormModel, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "vanilla"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("vanilla")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(stubRenderer{name: "vanilla"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := registry.Register(stubRenderer{name: "vanilla"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestRegistryRejectsNilAndUnnamed(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "tui"})
	registry.MustRegister(stubRenderer{name: "vanilla"})
	registry.MustRegister(stubRenderer{name: "json"})

	got := registry.List()
	want := []string{"json", "tui", "vanilla"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("list not sorted: %v", got)
		}
	}
}

func TestRegistryHasAndMissing(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "vanilla"})

	if !registry.Has("vanilla") {
		t.Fatalf("expected Has to report registered renderer")
	}
	if registry.Has("preact") {
		t.Fatalf("unexpected renderer reported")
	}
	if _, err := registry.Get("preact"); err == nil {
		t.Fatalf("expected not-found error")
	}
}
