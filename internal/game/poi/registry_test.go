package poi

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRegistryOrderAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Add("Library", Payload{Title: "Library", Body: "Books"})
	r.Add("Cafe", Payload{Title: "Cafe", Body: "Coffee"})
	r.Add("Atrium", Payload{Title: "Atrium", Body: "Light"})
	r.Add("Library", Payload{Title: "Library", Body: "More books"})

	if r.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", r.Len())
	}
	want := []string{"Library", "Cafe", "Atrium"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected order %v, got %v", want, got)
	}
	p, ok := r.Get("Library")
	if !ok || p.Body != "More books" {
		t.Errorf("expected replaced payload, got %+v (ok=%v)", p, ok)
	}
	if _, ok := r.Get("Gym"); ok {
		t.Error("expected missing POI lookup to fail")
	}
}

func TestNilRegistryIsEmpty(t *testing.T) {
	var r *Registry
	if r.Len() != 0 {
		t.Errorf("expected nil registry to be empty, got %d", r.Len())
	}
	if _, ok := r.Get("anything"); ok {
		t.Error("expected nil registry lookup to fail")
	}
	r.Each(func(string, Payload) bool {
		t.Error("expected no iteration over nil registry")
		return true
	})
}

func TestParseJSONLegacyFields(t *testing.T) {
	doc := `{
  "LobbyShop": {"name": "Lobby Shop", "info": "Snacks and stationery"},
  "Library": {"name": "Library", "info": "Open 8am to 10pm"}
}`
	r, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"LobbyShop", "Library"}) {
		t.Errorf("expected document order, got %v", got)
	}
	p, _ := r.Get("LobbyShop")
	if p.Title != "Lobby Shop" || p.Body != "Snacks and stationery" {
		t.Errorf("unexpected payload %+v", p)
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
Atrium:
  title: The Atrium
  body: Three storeys of glass.
Cafe:
  title: Cafe
  body: Coffee.
`
	r, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	p, ok := r.Get("Atrium")
	if !ok || p.Title != "The Atrium" || p.Body != "Three storeys of glass." {
		t.Errorf("unexpected payload %+v (ok=%v)", p, ok)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"list instead of mapping", "- a\n- b\n"},
		{"broken syntax", "{\"a\": {\"name\": }"},
		{"entry is a list", "Library:\n  - one\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	r, err := Parse(nil)
	if err != nil {
		t.Fatalf("expected empty document to parse, got %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d", r.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "college.json")
	if err := os.WriteFile(path, []byte(`{"Cafe": {"title": "Cafe", "body": "Coffee"}}`), 0644); err != nil {
		t.Fatalf("failed to write registry: %v", err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", r.Len())
	}
}
