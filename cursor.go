package hedge

// Cursors pair a handle with the mesh it belongs to. They are plain values,
// cheap to copy, and every navigation step is total: stepping from an invalid
// cursor lands on another invalid cursor, so a chain like
// e.Next().Twin().Vertex() never panics. Check IsValid on the result. The
// zero cursor belongs to no mesh and behaves like a sentinel.

////////////////////////////////////////////////////////////////////////////////

type EdgeCursor struct {
	handle EdgeHandle
	mesh   *Mesh
}

func (c EdgeCursor) Handle() EdgeHandle {
	return c.handle
}

func (c EdgeCursor) element() *Edge {
	if c.mesh == nil {
		return &Edge{}
	}
	return c.mesh.edges.get(c.handle)
}

// Element returns a copy of the half-edge, or of the sentinel.
func (c EdgeCursor) Element() Edge {
	return c.element().snapshot()
}

func (c EdgeCursor) IsValid() bool {
	return c.resolves() && c.element().IsValid()
}

func (c EdgeCursor) resolves() bool {
	return c.mesh != nil && c.mesh.edges.valid(c.handle)
}

func (c EdgeCursor) Next() EdgeCursor {
	return c.mesh.Edge(c.element().Next)
}

func (c EdgeCursor) Prev() EdgeCursor {
	return c.mesh.Edge(c.element().Prev)
}

func (c EdgeCursor) Twin() EdgeCursor {
	return c.mesh.Edge(c.element().Twin)
}

// Vertex is the origin of the half-edge.
func (c EdgeCursor) Vertex() VertexCursor {
	return c.mesh.Vertex(c.element().Vertex)
}

// Dest is the vertex the half-edge points at, the origin of its twin.
func (c EdgeCursor) Dest() VertexCursor {
	return c.Twin().Vertex()
}

func (c EdgeCursor) Face() FaceCursor {
	return c.mesh.Face(c.element().Face)
}

// IsBoundary reports whether the half-edge or its twin has no face.
func (c EdgeCursor) IsBoundary() bool {
	return !c.Face().IsValid() || !c.Twin().Face().IsValid()
}

////////////////////////////////////////////////////////////////////////////////

type VertexCursor struct {
	handle VertexHandle
	mesh   *Mesh
}

func (c VertexCursor) Handle() VertexHandle {
	return c.handle
}

func (c VertexCursor) element() *Vertex {
	if c.mesh == nil {
		return &Vertex{}
	}
	return c.mesh.vertices.get(c.handle)
}

func (c VertexCursor) Element() Vertex {
	return c.element().snapshot()
}

func (c VertexCursor) IsValid() bool {
	return c.mesh != nil && c.mesh.vertices.valid(c.handle) && c.element().IsValid()
}

// Edge is the outgoing half-edge the vertex records.
func (c VertexCursor) Edge() EdgeCursor {
	return c.mesh.Edge(c.element().Edge)
}

// Point returns the vertex position payload, or the sentinel point.
func (c VertexCursor) Point() Point {
	if c.mesh == nil {
		return Point{}
	}
	return c.mesh.GetPoint(c.element().Point)
}

// Ring circulates the half-edges leaving the vertex.
func (c VertexCursor) Ring() *VertexCirculator {
	return newVertexCirculator(c.mesh.nextTag(), c)
}

////////////////////////////////////////////////////////////////////////////////

type FaceCursor struct {
	handle FaceHandle
	mesh   *Mesh
}

func (c FaceCursor) Handle() FaceHandle {
	return c.handle
}

func (c FaceCursor) element() *Face {
	if c.mesh == nil {
		return &Face{}
	}
	return c.mesh.faces.get(c.handle)
}

func (c FaceCursor) Element() Face {
	return c.element().snapshot()
}

func (c FaceCursor) IsValid() bool {
	return c.mesh != nil && c.mesh.faces.valid(c.handle) && c.element().IsValid()
}

// Edge is the root of the face's edge loop.
func (c FaceCursor) Edge() EdgeCursor {
	return c.mesh.Edge(c.element().Root)
}

func (c FaceCursor) Edges() *FaceEdges {
	return newFaceEdges(c.mesh.nextTag(), c.Edge())
}

func (c FaceCursor) Vertices() *FaceVertices {
	return &FaceVertices{edges: c.Edges()}
}

// Sides counts the half-edges in the face's loop.
func (c FaceCursor) Sides() int {
	n := 0
	it := c.Edges()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}
