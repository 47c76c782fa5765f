package quotegen

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestGenerateHTMLWithDefaults(t *testing.T) {
	width, height := 1200, 2100
	req := Request{
		Order: Order{Items: []Item{{
			Width: &width, Height: &height,
			Fabric:    "Vibe",
			Color:     "White",
			LinePrice: decimal.NewFromInt(120),
		}}},
		Meta: Metadata{
			QuoteNumber:  "Q-7",
			CustomerName: "Jane Doe",
		},
	}

	out, err := GenerateHTML(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	html := string(out)
	for _, want := range []string{"<title>Q-7 Jane Doe</title>", "Roller Blinds", "quote-action-bar", "<script>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestDefaultRegistryHasDocumentRenderer(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if !registry.Has("document") {
		t.Fatalf("expected document renderer, got %v", registry.List())
	}
}

func TestDefaultTemplatesReady(t *testing.T) {
	if !DefaultTemplates().Ready() {
		t.Fatal("embedded templates should be ready")
	}
}
