package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/xrtour/internal/engine/collision"
)

const collegeScene = `
name: college
nodes:
  - name: College_PROXY
    material: Proxy
    boxes:
      - {min: [-20, -0.1, -20], max: [20, 0, 20]}
      - {min: [-20, 0, -20.5], max: [20, 3, -20]}
  - name: Lobby_Window
    material: Window_Glass
    position: [0, 1, -20]
  - name: Sky
    material: SkyBox_Mat
  - name: LobbyShop_Door__1_
    position: [4, 0, -6]
  - name: LobbyShop_Door__2_
    position: [6, 0, -6]
  - name: Ramp
    kind: collision
    triangles:
      - [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
anchors:
  - name: LobbyShop
    between: [LobbyShop_Door__1_, LobbyShop_Door__2_]
`

func TestClassify(t *testing.T) {
	tests := []struct {
		name, material string
		want           Kind
	}{
		{"College_PROXY", "", KindCollision},
		{"Window", "Lobby_Glass", KindGlass},
		{"Dome", "SkyBox", KindSkyDecoration},
		{"Chair", "Wood", KindPlain},
		{"Glass_PROXY", "Glass", KindCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.name, tt.material); got != tt.want {
				t.Errorf("Classify(%q, %q) = %v, want %v", tt.name, tt.material, got, tt.want)
			}
		})
	}
}

func TestParseScene(t *testing.T) {
	g, err := Parse([]byte(collegeScene))
	if err != nil {
		t.Fatalf("failed to parse scene: %v", err)
	}

	if g.Name != "college" {
		t.Errorf("expected name college, got %q", g.Name)
	}
	if g.Len() != 7 {
		t.Errorf("expected 7 nodes, got %d", g.Len())
	}

	kinds := map[string]Kind{
		"College_PROXY": KindCollision,
		"Lobby_Window":  KindGlass,
		"Sky":           KindSkyDecoration,
		"Ramp":          KindCollision,
		"LobbyShop":     KindPlain,
	}
	for name, want := range kinds {
		n, ok := g.Lookup(name)
		if !ok {
			t.Errorf("node %q missing", name)
			continue
		}
		if n.Kind != want {
			t.Errorf("node %q: expected kind %v, got %v", name, want, n.Kind)
		}
	}

	shop, _ := g.Position("LobbyShop")
	if shop != (mgl64.Vec3{5, 0, -6}) {
		t.Errorf("expected LobbyShop between the doors at (5,0,-6), got %v", shop)
	}

	proxy, _ := g.Lookup("College_PROXY")
	if proxy.Visible() {
		t.Error("expected proxy geometry to be hidden")
	}
	if len(proxy.Mesh.Triangles) != 24 {
		t.Errorf("expected 24 proxy triangles, got %d", len(proxy.Mesh.Triangles))
	}
}

func TestCollisionSurfacePrefersFirstProxy(t *testing.T) {
	g, err := Parse([]byte(collegeScene))
	if err != nil {
		t.Fatalf("failed to parse scene: %v", err)
	}
	surface := g.CollisionSurface()
	if surface == nil || surface.Name != "College_PROXY" {
		t.Fatalf("expected College_PROXY surface, got %v", surface)
	}

	r, _ := collision.NewRay(mgl64.Vec3{0.3, 1.5, 0.2}, mgl64.Vec3{0, -1, 0})
	if d, ok := surface.Raycast(r); !ok || d < 1.499 || d > 1.501 {
		t.Errorf("expected floor 1.5 below, got %v (hit=%v)", d, ok)
	}
}

func TestCollisionSurfaceBlockersSupersede(t *testing.T) {
	doc := collegeScene + `
blockers:
  - name: StairBlock
    min: [-1, 0, -3]
    max: [1, 3, -2]
  - min: [5, 0, 5]
    max: [6, 3, 6]
`
	g, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("failed to parse scene: %v", err)
	}
	if _, ok := g.Lookup("blocker_1"); !ok {
		t.Error("expected unnamed blocker to get a generated name")
	}

	surface := g.CollisionSurface()
	if surface == nil || surface.Name != "blockers" {
		t.Fatalf("expected blockers surface, got %v", surface)
	}
	if len(surface.Triangles) != 24 {
		t.Errorf("expected 24 blocker triangles, got %d", len(surface.Triangles))
	}
}

func TestCollisionSurfaceAbsent(t *testing.T) {
	g := NewGraph("empty")
	if err := g.Add(&Node{Name: "Marker"}); err != nil {
		t.Fatalf("failed to add node: %v", err)
	}
	if s := g.CollisionSurface(); s != nil {
		t.Errorf("expected no surface, got %v", s.Name)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"duplicate node", "nodes:\n  - name: A\n  - name: A\n"},
		{"unnamed node", "nodes:\n  - material: Wood\n"},
		{"unknown kind", "nodes:\n  - name: A\n    kind: lava\n"},
		{"anchor clashing with node", "nodes:\n  - name: A\n  - name: B\nanchors:\n  - name: A\n    between: [A, B]\n"},
		{"bad vector", "nodes:\n  - name: A\n    position: [1, 2]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestBuildSkipsAnchorWithMissingNode(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"second door missing", "nodes:\n  - name: LobbyShop_Door__1_\nanchors:\n  - name: LobbyShop\n    between: [LobbyShop_Door__1_, LobbyShop_Door__2_]\n"},
		{"first door missing", "nodes:\n  - name: LobbyShop_Door__2_\nanchors:\n  - name: LobbyShop\n    between: [LobbyShop_Door__1_, LobbyShop_Door__2_]\n"},
		{"both doors missing", "nodes:\n  - name: Hall\nanchors:\n  - name: LobbyShop\n    between: [LobbyShop_Door__1_, LobbyShop_Door__2_]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if _, ok := g.Lookup("LobbyShop"); ok {
				t.Error("expected no LobbyShop node, got one")
			}
			if g.Len() != 1 {
				t.Errorf("expected 1 node, got %d", g.Len())
			}
		})
	}
}

func TestAddMidpointMissingNode(t *testing.T) {
	g := NewGraph("test")
	if err := g.Add(&Node{Name: "A"}); err != nil {
		t.Fatalf("failed to add node: %v", err)
	}
	err := g.AddMidpoint("M", "A", "B")
	if !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.yaml")
	if err := os.WriteFile(path, []byte(collegeScene), 0644); err != nil {
		t.Fatalf("failed to write scene: %v", err)
	}
	g, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load scene: %v", err)
	}
	if len(g.NodesOfKind(KindCollision)) != 2 {
		t.Errorf("expected 2 collision nodes, got %d", len(g.NodesOfKind(KindCollision)))
	}
}
