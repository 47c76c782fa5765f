package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/html; charset=utf-8" }
func (s stubRenderer) Render(context.Context, Request, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(stubRenderer{name: "document"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("document")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "document" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(stubRenderer{name: "document"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "document"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRegistryRejectsNilAndUnnamed(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for unnamed renderer")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := registry.Register(stubRenderer{name: name}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}

	if !registry.Has("mid") {
		t.Fatal("expected Has(mid)")
	}
	if registry.Has("missing") {
		t.Fatal("unexpected Has(missing)")
	}
}
