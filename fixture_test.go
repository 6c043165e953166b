package hedge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// meshFixture describes a polygon soup. Faces list point indices in
// counter-clockwise order; when Boundary is set, every half-edge left without
// a twin gets a faceless one.
type meshFixture struct {
	Name     string       `yaml:"name"`
	Boundary bool         `yaml:"boundary"`
	Points   []mgl64.Vec3 `yaml:"points"`
	Faces    [][]int      `yaml:"faces"`
}

// builtMesh keeps the handles a fixture produced, indexed the way the fixture
// lists them.
type builtMesh struct {
	mesh     *Mesh
	vertices []VertexHandle
	faces    []FaceHandle
	edges    map[[2]int]EdgeHandle
}

func (b *builtMesh) edge(from, to int) EdgeHandle {
	return b.edges[[2]int{from, to}]
}

func loadFixture(t *testing.T, name string) *builtMesh {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name+".yaml"))
	require.NoError(t, err)

	var fx meshFixture
	require.NoError(t, yaml.Unmarshal(data, &fx))
	require.Equal(t, name, fx.Name)

	return buildPolygons(t, fx)
}

func buildPolygons(t *testing.T, fx meshFixture) *builtMesh {
	t.Helper()

	m := NewMesh()
	b := &builtMesh{mesh: m, edges: make(map[[2]int]EdgeHandle)}

	for _, pos := range fx.Points {
		p := m.AddPointUnique(pos)
		b.vertices = append(b.vertices, m.AddVertex(NewVertex(p)))
	}

	for _, poly := range fx.Faces {
		require.GreaterOrEqual(t, len(poly), 3)
		loop := make([]EdgeHandle, len(poly))
		for i, from := range poly {
			to := poly[(i+1)%len(poly)]
			loop[i] = m.AddEdge(NewEdge(b.vertices[from]))
			b.edges[[2]int{from, to}] = loop[i]
		}
		f := m.AddFace(NewFace(loop[0]))
		b.faces = append(b.faces, f)
		for i, h := range loop {
			m.ConnectEdges(h, loop[(i+1)%len(loop)])
			e, ok := m.GetEdgeMut(h)
			require.True(t, ok)
			e.Face = f
			setVertexEdge(m, e.Vertex, h)
		}
	}

	keys := make([][2]int, 0, len(b.edges))
	for key := range b.edges {
		keys = append(keys, key)
	}
	for _, key := range keys {
		h := b.edges[key]
		twin, found := b.edges[[2]int{key[1], key[0]}]
		if !found {
			if !fx.Boundary {
				continue
			}
			twin = m.AddEdge(NewEdge(b.vertices[key[1]]))
			b.edges[[2]int{key[1], key[0]}] = twin
			setVertexEdge(m, b.vertices[key[1]], twin)
		}
		linkTwins(m, h, twin)
	}
	return b
}

func setVertexEdge(m *Mesh, v VertexHandle, e EdgeHandle) {
	if vertex, ok := m.GetVertexMut(v); ok && vertex.Edge.IsSentinel() {
		vertex.Edge = e
	}
}

func linkTwins(m *Mesh, a, b EdgeHandle) {
	if e, ok := m.GetEdgeMut(a); ok {
		e.Twin = b
	}
	if e, ok := m.GetEdgeMut(b); ok {
		e.Twin = a
	}
}

// triangle wires one face from three fresh vertices and three half-edges
// without twins.
func triangle(m *Mesh) (FaceHandle, [3]VertexHandle, [3]EdgeHandle) {
	var verts [3]VertexHandle
	var edges [3]EdgeHandle
	for i := range verts {
		p := m.AddPoint(NewPoint(float64(i), 0, 0))
		verts[i] = m.AddVertex(NewVertex(p))
	}
	for i := range edges {
		edges[i] = m.AddEdge(NewEdge(verts[i]))
	}
	f := m.AddFace(NewFace(edges[0]))
	for i := range edges {
		m.ConnectEdges(edges[i], edges[(i+1)%3])
		e, _ := m.GetEdgeMut(edges[i])
		e.Face = f
		v, _ := m.GetVertexMut(verts[i])
		v.Edge = edges[i]
	}
	return f, verts, edges
}
