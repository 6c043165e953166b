package hedge

// Vertex is a mesh vertex. Edge is one of the half-edges leaving it; which one
// is left to whoever builds the connectivity.
type Vertex struct {
	Props
	Edge  Handle[Edge]
	Point Handle[Point]
}

func NewVertex(point PointHandle) Vertex {
	return Vertex{Point: point}
}

func (v *Vertex) props() *Props {
	return &v.Props
}

func (v *Vertex) snapshot() Vertex {
	return Vertex{Props: v.Props.snapshot(), Edge: v.Edge, Point: v.Point}
}

// IsValid reports whether the vertex is live and has an outgoing half-edge.
func (v Vertex) IsValid() bool {
	return v.Status == Active && !v.Edge.IsSentinel()
}
