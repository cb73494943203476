// Package scene holds the tour's scene graph: named nodes with world
// positions, classified once at load, plus the collision surface derived from them.
package scene

import (
	"errors"
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/xrtour/internal/engine/collision"
	"github.com/Faultbox/xrtour/pkg/math"
)

// ErrNodeNotFound is returned when an operation names a node the graph lacks.
var ErrNodeNotFound = errors.New("node not found")

// Graph is a flat scene graph with O(1) lookup by node name.
type Graph struct {
	Name  string
	nodes *orderedmap.OrderedMap[string, *Node]
}

// NewGraph creates an empty graph.
func NewGraph(name string) *Graph {
	return &Graph{Name: name, nodes: orderedmap.NewOrderedMap[string, *Node]()}
}

// Add inserts a node. Node names are unique.
func (g *Graph) Add(n *Node) error {
	if n.Name == "" {
		return fmt.Errorf("node has no name")
	}
	if _, exists := g.nodes.Get(n.Name); exists {
		return fmt.Errorf("duplicate node %q", n.Name)
	}
	g.nodes.Set(n.Name, n)
	return nil
}

// Lookup returns the node called name.
func (g *Graph) Lookup(name string) (*Node, bool) {
	if g == nil {
		return nil, false
	}
	return g.nodes.Get(name)
}

// Position returns the world position of the node called name.
func (g *Graph) Position(name string) (mgl64.Vec3, bool) {
	n, ok := g.Lookup(name)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return n.Position, true
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return g.nodes.Len()
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, g.Len())
	if g == nil {
		return out
	}
	for el := g.nodes.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// NodesOfKind returns the nodes classified as k, in insertion order.
func (g *Graph) NodesOfKind(k Kind) []*Node {
	var out []*Node
	for _, n := range g.Nodes() {
		if n.Kind == k {
			out = append(out, n)
		}
	}
	return out
}

// AddMidpoint places an empty marker node halfway between two existing nodes.
func (g *Graph) AddMidpoint(name, a, b string) error {
	pa, ok := g.Position(a)
	if !ok {
		return fmt.Errorf("anchor %q: node %q: %w", name, a, ErrNodeNotFound)
	}
	pb, ok := g.Position(b)
	if !ok {
		return fmt.Errorf("anchor %q: node %q: %w", name, b, ErrNodeNotFound)
	}
	return g.Add(&Node{Name: name, Position: math.Midpoint(pa, pb), Synthetic: true})
}

// AddBlocker places a synthetic blocking volume.
func (g *Graph) AddBlocker(name string, box collision.AABB) error {
	return g.Add(&Node{
		Name:      name,
		Kind:      KindCollision,
		Position:  box.Min.Add(box.Max).Mul(0.5),
		Mesh:      collision.BoxMesh(name, box),
		Synthetic: true,
	})
}

// CollisionSurface returns the single surface locomotion probes against.
// Synthetic blocking volumes supersede loaded proxy geometry; otherwise the
// first loaded proxy is used. Returns nil when the scene has neither.
func (g *Graph) CollisionSurface() *collision.Mesh {
	var proxy *collision.Mesh
	var blockers *collision.Mesh
	for _, n := range g.NodesOfKind(KindCollision) {
		if n.Mesh.Empty() {
			continue
		}
		if n.Synthetic {
			if blockers == nil {
				blockers = collision.NewMesh("blockers", nil)
			}
			blockers.Append(n.Mesh)
			continue
		}
		if proxy == nil {
			proxy = n.Mesh
		}
	}
	if blockers != nil {
		return blockers
	}
	return proxy
}
