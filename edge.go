package hedge

// Edge is a directed half-edge. Vertex is its origin and Face the face whose
// loop it belongs to; a half-edge without a face lies on an open boundary.
type Edge struct {
	Props
	Twin   Handle[Edge]
	Next   Handle[Edge]
	Prev   Handle[Edge]
	Vertex Handle[Vertex]
	Face   Handle[Face]
}

func NewEdge(origin VertexHandle) Edge {
	return Edge{Vertex: origin}
}

func (e *Edge) props() *Props {
	return &e.Props
}

func (e *Edge) snapshot() Edge {
	return Edge{
		Props:  e.Props.snapshot(),
		Twin:   e.Twin,
		Next:   e.Next,
		Prev:   e.Prev,
		Vertex: e.Vertex,
		Face:   e.Face,
	}
}

// IsValid reports whether the half-edge is live, paired with a twin and
// anchored at an origin vertex.
func (e Edge) IsValid() bool {
	return e.Status == Active && !e.Twin.IsSentinel() && !e.Vertex.IsSentinel()
}
