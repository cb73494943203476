package scene

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/xrtour/internal/engine/collision"
)

// Kind classifies a scene node once, at load time.
type Kind uint8

const (
	KindPlain Kind = iota
	KindCollision
	KindGlass
	KindSkyDecoration
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCollision:
		return "collision"
	case KindGlass:
		return "glass"
	case KindSkyDecoration:
		return "sky"
	default:
		return "plain"
	}
}

// ParseKind converts a kind name back to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "plain":
		return KindPlain, true
	case "collision":
		return KindCollision, true
	case "glass":
		return KindGlass, true
	case "sky":
		return KindSkyDecoration, true
	}
	return KindPlain, false
}

// Classify applies the asset naming convention: proxy geometry (node name
// containing "PROXY") is collision-only, materials named "Glass" are
// see-through, materials named "SkyBox" are unlit decoration.
func Classify(name, material string) Kind {
	switch {
	case strings.Contains(name, "PROXY"):
		return KindCollision
	case strings.Contains(material, "Glass"):
		return KindGlass
	case strings.Contains(material, "SkyBox"):
		return KindSkyDecoration
	default:
		return KindPlain
	}
}

// Node is a named object in the scene with a world position and optional geometry.
type Node struct {
	Name      string
	Kind      Kind
	Material  string
	Position  mgl64.Vec3
	Mesh      *collision.Mesh // world-space geometry, nil for markers
	Synthetic bool            // created by the tour rather than loaded
}

// Visible reports whether the node is drawn. Collision proxies are hidden.
func (n *Node) Visible() bool {
	return n.Kind != KindCollision
}
