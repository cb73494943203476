package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/xrtour/internal/engine/collision"
	"github.com/Faultbox/xrtour/internal/logger"
)

// File is the on-disk scene description.
type File struct {
	Name     string       `yaml:"name"`
	Nodes    []NodeFile   `yaml:"nodes"`
	Anchors  []AnchorFile `yaml:"anchors"`
	Blockers []BoxFile    `yaml:"blockers"`
}

// NodeFile describes one node. Geometry is relative to Position.
type NodeFile struct {
	Name      string          `yaml:"name"`
	Material  string          `yaml:"material"`
	Kind      string          `yaml:"kind"` // overrides the naming convention
	Position  mgl64.Vec3      `yaml:"position"`
	Boxes     []BoxFile       `yaml:"boxes"`
	Triangles [][3]mgl64.Vec3 `yaml:"triangles"`
}

// BoxFile is an axis-aligned box given by two corners.
type BoxFile struct {
	Name string     `yaml:"name"`
	Min  mgl64.Vec3 `yaml:"min"`
	Max  mgl64.Vec3 `yaml:"max"`
}

// AnchorFile places a marker halfway between two nodes.
type AnchorFile struct {
	Name    string    `yaml:"name"`
	Between [2]string `yaml:"between"`
}

// Load reads and builds a scene file.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return g, nil
}

// Parse decodes a scene document and builds its graph.
func Parse(data []byte) (*Graph, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return Build(f)
}

// Build turns a scene description into a graph, classifying every node.
// Anchors are placed after all nodes; blockers last. An anchor whose
// endpoints are not both present is skipped.
func Build(f File) (*Graph, error) {
	g := NewGraph(f.Name)

	for _, nf := range f.Nodes {
		n, err := buildNode(nf)
		if err != nil {
			return nil, err
		}
		if err := g.Add(n); err != nil {
			return nil, err
		}
	}

	for _, a := range f.Anchors {
		err := g.AddMidpoint(a.Name, a.Between[0], a.Between[1])
		if errors.Is(err, ErrNodeNotFound) {
			logger.Warn("anchor skipped", zap.String("anchor", a.Name), zap.Error(err))
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	for i, b := range f.Blockers {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("blocker_%d", i)
		}
		if err := g.AddBlocker(name, collision.NewAABB(b.Min, b.Max)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func buildNode(nf NodeFile) (*Node, error) {
	kind := Classify(nf.Name, nf.Material)
	if nf.Kind != "" {
		k, ok := ParseKind(nf.Kind)
		if !ok {
			return nil, fmt.Errorf("node %q: unknown kind %q", nf.Name, nf.Kind)
		}
		kind = k
	}

	n := &Node{
		Name:     nf.Name,
		Kind:     kind,
		Material: nf.Material,
		Position: nf.Position,
	}

	if len(nf.Boxes) == 0 && len(nf.Triangles) == 0 {
		return n, nil
	}

	mesh := collision.NewMesh(nf.Name, nil)
	for _, b := range nf.Boxes {
		mesh.Append(collision.BoxMesh(nf.Name, collision.NewAABB(b.Min.Add(nf.Position), b.Max.Add(nf.Position))))
	}
	tris := make([]collision.Triangle, 0, len(nf.Triangles))
	for _, t := range nf.Triangles {
		tris = append(tris, collision.Triangle{
			t[0].Add(nf.Position),
			t[1].Add(nf.Position),
			t[2].Add(nf.Position),
		})
	}
	mesh.Append(collision.NewMesh(nf.Name, tris))
	n.Mesh = mesh
	return n, nil
}
