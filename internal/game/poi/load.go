package poi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// entry accepts both the {title, body} and the legacy {name, info} field names.
type entry struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Name  string `yaml:"name"`
	Info  string `yaml:"info"`
}

func (e entry) payload() Payload {
	p := Payload{Title: e.Title, Body: e.Body}
	if p.Title == "" {
		p.Title = e.Name
	}
	if p.Body == "" {
		p.Body = e.Info
	}
	return p
}

// Load reads a registry file. The document is a flat mapping from POI name to
// {title, body}; JSON documents are accepted as YAML.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	reg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return reg, nil
}

// Parse decodes a registry document, keeping the document's key order.
func Parse(data []byte) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	reg := NewRegistry()
	if len(doc.Content) == 0 {
		return reg, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of POI names", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		var e entry
		if err := value.Decode(&e); err != nil {
			return nil, fmt.Errorf("POI %q: %w", key.Value, err)
		}
		reg.Add(key.Value, e.payload())
	}
	return reg, nil
}
