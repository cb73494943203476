package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Surface is static geometry that can answer nearest-hit ray queries.
type Surface interface {
	// Raycast returns the distance to the nearest intersection along r.
	Raycast(r Ray) (float64, bool)
}

// Mesh is a triangle soup with a bounding box used as a broad phase.
type Mesh struct {
	Name      string
	Triangles []Triangle
	Bounds    AABB
}

// NewMesh creates a mesh and computes its bounds.
func NewMesh(name string, triangles []Triangle) *Mesh {
	m := &Mesh{Name: name, Triangles: triangles}
	m.computeBounds()
	return m
}

// Append adds the triangles of other to m.
func (m *Mesh) Append(other *Mesh) {
	if other == nil || len(other.Triangles) == 0 {
		return
	}
	m.Triangles = append(m.Triangles, other.Triangles...)
	m.computeBounds()
}

// Empty reports whether the mesh has no faces.
func (m *Mesh) Empty() bool {
	return m == nil || len(m.Triangles) == 0
}

func (m *Mesh) computeBounds() {
	if len(m.Triangles) == 0 {
		m.Bounds = AABB{}
		return
	}
	b := AABB{Min: m.Triangles[0][0], Max: m.Triangles[0][0]}
	for _, tri := range m.Triangles {
		for _, v := range tri {
			b = b.Extend(v)
		}
	}
	m.Bounds = b
}

// Raycast implements Surface.
func (m *Mesh) Raycast(r Ray) (float64, bool) {
	if m.Empty() {
		return 0, false
	}
	if _, ok := r.IntersectAABB(m.Bounds); !ok {
		return 0, false
	}

	nearest := math.Inf(1)
	for _, tri := range m.Triangles {
		if t, ok := r.IntersectTriangle(tri); ok && t < nearest {
			nearest = t
		}
	}
	if math.IsInf(nearest, 1) {
		return 0, false
	}
	return nearest, true
}

// BoxMesh builds the 12 faces of an axis-aligned box.
func BoxMesh(name string, box AABB) *Mesh {
	lo, hi := box.Min, box.Max
	c := [8]mgl64.Vec3{
		{lo.X(), lo.Y(), lo.Z()}, // 0
		{hi.X(), lo.Y(), lo.Z()}, // 1
		{hi.X(), hi.Y(), lo.Z()}, // 2
		{lo.X(), hi.Y(), lo.Z()}, // 3
		{lo.X(), lo.Y(), hi.Z()}, // 4
		{hi.X(), lo.Y(), hi.Z()}, // 5
		{hi.X(), hi.Y(), hi.Z()}, // 6
		{lo.X(), hi.Y(), hi.Z()}, // 7
	}
	quads := [6][4]int{
		{0, 1, 2, 3}, // -Z
		{5, 4, 7, 6}, // +Z
		{4, 0, 3, 7}, // -X
		{1, 5, 6, 2}, // +X
		{3, 2, 6, 7}, // +Y
		{4, 5, 1, 0}, // -Y
	}
	tris := make([]Triangle, 0, 12)
	for _, q := range quads {
		tris = append(tris,
			Triangle{c[q[0]], c[q[1]], c[q[2]]},
			Triangle{c[q[0]], c[q[2]], c[q[3]]},
		)
	}
	return NewMesh(name, tris)
}

// QuadMesh builds a two-triangle planar quad from four corners in order.
func QuadMesh(name string, a, b, c, d mgl64.Vec3) *Mesh {
	return NewMesh(name, []Triangle{{a, b, c}, {a, c, d}})
}
