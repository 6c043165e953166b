package hedge

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh owns the element buffers of a half-edge mesh and hands out cursors
// for walking them.
//
// Connectivity is wired by the caller: add the elements, then set their
// handle fields through the GetXMut lookups or ConnectEdges. Pointers
// returned by GetXMut and Point stay usable only until the next Add of the
// same kind, which may grow the buffer.
//
// Structural changes need exclusive access to the whole Mesh. Read-only walks
// may overlap; each draws its own tag from an atomic counter.
type Mesh struct {
	points   *buffer[Point, *Point]
	vertices *buffer[Vertex, *Vertex]
	edges    *buffer[Edge, *Edge]
	faces    *buffer[Face, *Face]

	pointIndex map[mgl64.Vec3]PointHandle
	tag        atomic.Uint64
}

// NewMesh returns a mesh whose buffers hold only their sentinels.
func NewMesh() *Mesh {
	return &Mesh{
		points:     newBuffer[Point](),
		vertices:   newBuffer[Vertex](),
		edges:      newBuffer[Edge](),
		faces:      newBuffer[Face](),
		pointIndex: make(map[mgl64.Vec3]PointHandle),
	}
}

// nextTag issues a fresh pass tag. A nil mesh has nothing to stamp and
// hands out 0.
func (m *Mesh) nextTag() Tag {
	if m == nil {
		return 0
	}
	return Tag(m.tag.Add(1))
}

func (m *Mesh) String() string {
	return fmt.Sprintf("Half-Edge Mesh { %d points, %d vertices, %d edges, %d faces }",
		m.PointCount(), m.VertexCount(), m.EdgeCount(), m.FaceCount())
}

// Copy returns an independent mesh with the same slots, generations and free
// lists, so handles issued by m resolve the same way in the copy. Copy is
// read-only and may overlap other read-only walks.
func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		points:     m.points.clone(),
		vertices:   m.vertices.clone(),
		edges:      m.edges.clone(),
		faces:      m.faces.clone(),
		pointIndex: make(map[mgl64.Vec3]PointHandle, len(m.pointIndex)),
	}
	for key, value := range m.pointIndex {
		c.pointIndex[key] = value
	}
	c.tag.Store(m.tag.Load())
	return c
}

////////////////////////////////////////////////////////////////////////////////
// Counts

func (m *Mesh) PointCount() int {
	return m.points.len()
}

func (m *Mesh) VertexCount() int {
	return m.vertices.len()
}

func (m *Mesh) EdgeCount() int {
	return m.edges.len()
}

func (m *Mesh) FaceCount() int {
	return m.faces.len()
}

////////////////////////////////////////////////////////////////////////////////
// Adding elements

// AddPoint stores p and indexes its position for AddPointUnique.
func (m *Mesh) AddPoint(p Point) PointHandle {
	h := m.points.add(p)
	if _, found := m.pointIndex[p.Position]; !found {
		m.pointIndex[p.Position] = h
	}
	return h
}

// AddPointUnique returns the handle of a live point already sitting at pos,
// or adds a new one.
func (m *Mesh) AddPointUnique(pos mgl64.Vec3) PointHandle {
	if h, found := m.pointIndex[pos]; found {
		if p, ok := m.points.getMut(h); ok && p.Position == pos {
			return h
		}
	}
	h := m.points.add(Point{Position: pos})
	m.pointIndex[pos] = h
	return h
}

func (m *Mesh) AddVertex(v Vertex) VertexHandle {
	return m.vertices.add(v)
}

func (m *Mesh) AddEdge(e Edge) EdgeHandle {
	return m.edges.add(e)
}

func (m *Mesh) AddFace(f Face) FaceHandle {
	return m.faces.add(f)
}

////////////////////////////////////////////////////////////////////////////////
// Removing elements
//
// Removal only retires the slot. Elements still referring to it keep their
// handles, which simply stop resolving.

func (m *Mesh) RemovePoint(h PointHandle) bool {
	if p, ok := m.points.getMut(h); ok {
		if m.pointIndex[p.Position] == h {
			delete(m.pointIndex, p.Position)
		}
	}
	return m.traceRemove(h, m.points.remove(h))
}

func (m *Mesh) RemoveVertex(h VertexHandle) bool {
	return m.traceRemove(h, m.vertices.remove(h))
}

func (m *Mesh) RemoveEdge(h EdgeHandle) bool {
	return m.traceRemove(h, m.edges.remove(h))
}

func (m *Mesh) RemoveFace(h FaceHandle) bool {
	return m.traceRemove(h, m.faces.remove(h))
}

func (m *Mesh) traceRemove(what fmt.Stringer, removed bool) bool {
	if removed {
		logger.Printf("removed %v", what)
	}
	return removed
}

////////////////////////////////////////////////////////////////////////////////
// Lookups
//
// GetX returns a copy of the element, or of the sentinel when h does not
// resolve. GetXMut returns nil, false in that case.

func (m *Mesh) GetPoint(h PointHandle) Point {
	return m.points.load(h)
}

func (m *Mesh) GetVertex(h VertexHandle) Vertex {
	return m.vertices.load(h)
}

func (m *Mesh) GetEdge(h EdgeHandle) Edge {
	return m.edges.load(h)
}

func (m *Mesh) GetFace(h FaceHandle) Face {
	return m.faces.load(h)
}

func (m *Mesh) GetPointMut(h PointHandle) (*Point, bool) {
	return m.points.getMut(h)
}

func (m *Mesh) GetVertexMut(h VertexHandle) (*Vertex, bool) {
	return m.vertices.getMut(h)
}

func (m *Mesh) GetEdgeMut(h EdgeHandle) (*Edge, bool) {
	return m.edges.getMut(h)
}

func (m *Mesh) GetFaceMut(h FaceHandle) (*Face, bool) {
	return m.faces.getMut(h)
}

// Point returns the payload h names. For an invalid handle it returns a
// detached copy of the sentinel, so writes through it go nowhere.
func (m *Mesh) Point(h PointHandle) *Point {
	if p, ok := m.points.getMut(h); ok {
		return p
	}
	sentinel := m.points.load(PointHandle{})
	return &sentinel
}

////////////////////////////////////////////////////////////////////////////////
// Cursors

func (m *Mesh) Vertex(h VertexHandle) VertexCursor {
	return VertexCursor{handle: h, mesh: m}
}

func (m *Mesh) Edge(h EdgeHandle) EdgeCursor {
	return EdgeCursor{handle: h, mesh: m}
}

func (m *Mesh) Face(h FaceHandle) FaceCursor {
	return FaceCursor{handle: h, mesh: m}
}

////////////////////////////////////////////////////////////////////////////////
// Connectivity

// ConnectEdges makes next follow prev in a face loop. Both handles must be
// valid; debug builds panic otherwise, release builds skip the side that does
// not resolve.
func (m *Mesh) ConnectEdges(prev, next EdgeHandle) {
	debugAssert(m.edges.valid(prev), "ConnectEdges: invalid prev %v", prev)
	debugAssert(m.edges.valid(next), "ConnectEdges: invalid next %v", next)

	if p, ok := m.edges.getMut(prev); ok {
		p.Next = next
	} else {
		logger.Printf("ConnectEdges: skipping invalid prev %v", prev)
	}
	if n, ok := m.edges.getMut(next); ok {
		n.Prev = prev
	} else {
		logger.Printf("ConnectEdges: skipping invalid next %v", next)
	}
	logger.Printf("connected %v -> %v", prev, next)
}

// IsBoundaryEdge reports whether h or its twin lacks a face.
func (m *Mesh) IsBoundaryEdge(h EdgeHandle) bool {
	debugAssert(m.edges.valid(h), "IsBoundaryEdge: invalid edge %v", h)
	return m.Edge(h).IsBoundary()
}

// ForEachFaceEdgeMut calls fn with every half-edge of the face's loop. The
// loop is collected before fn runs, so fn may rewire Next freely.
func (m *Mesh) ForEachFaceEdgeMut(face FaceHandle, fn func(EdgeHandle, *Edge)) {
	var handles []EdgeHandle
	for e := range m.FaceEdges(face).All() {
		handles = append(handles, e.Handle())
	}
	for _, h := range handles {
		if e, ok := m.edges.getMut(h); ok {
			fn(h, e)
		}
	}
}

////////////////////////////////////////////////////////////////////////////////
// Iteration

func (m *Mesh) Vertices() *VertexIterator {
	return &VertexIterator{enum: m.vertices.enumerate(m.nextTag()), mesh: m}
}

func (m *Mesh) Edges() *EdgeIterator {
	return &EdgeIterator{enum: m.edges.enumerate(m.nextTag()), mesh: m}
}

func (m *Mesh) Faces() *FaceIterator {
	return &FaceIterator{enum: m.faces.enumerate(m.nextTag()), mesh: m}
}

func (m *Mesh) Points() *PointIterator {
	return &PointIterator{enum: m.points.enumerate(m.nextTag())}
}

// FaceEdges walks the edge loop of the face h names.
func (m *Mesh) FaceEdges(h FaceHandle) *FaceEdges {
	return newFaceEdges(m.nextTag(), m.Face(h).Edge())
}

// FaceVertices walks the origin vertices of the face's edge loop.
func (m *Mesh) FaceVertices(h FaceHandle) *FaceVertices {
	return &FaceVertices{edges: m.FaceEdges(h)}
}

// VertexRing circulates the half-edges leaving the vertex h names.
func (m *Mesh) VertexRing(h VertexHandle) *VertexCirculator {
	return newVertexCirculator(m.nextTag(), m.Vertex(h))
}
