package hedge

import "iter"

// Whole-mesh iterators visit the elements that are active when they are
// created, in slot order. Elements removed along the way are skipped;
// elements added along the way may not show up.

type VertexIterator struct {
	enum *enumerator[Vertex, *Vertex]
	mesh *Mesh
}

func (it *VertexIterator) Next() (VertexCursor, bool) {
	h, _, ok := it.enum.next()
	if !ok {
		return it.mesh.Vertex(VertexHandle{}), false
	}
	return it.mesh.Vertex(h), true
}

func (it *VertexIterator) All() iter.Seq[VertexCursor] {
	return seq(it.Next)
}

type EdgeIterator struct {
	enum *enumerator[Edge, *Edge]
	mesh *Mesh
}

func (it *EdgeIterator) Next() (EdgeCursor, bool) {
	h, _, ok := it.enum.next()
	if !ok {
		return it.mesh.Edge(EdgeHandle{}), false
	}
	return it.mesh.Edge(h), true
}

func (it *EdgeIterator) All() iter.Seq[EdgeCursor] {
	return seq(it.Next)
}

type FaceIterator struct {
	enum *enumerator[Face, *Face]
	mesh *Mesh
}

func (it *FaceIterator) Next() (FaceCursor, bool) {
	h, _, ok := it.enum.next()
	if !ok {
		return it.mesh.Face(FaceHandle{}), false
	}
	return it.mesh.Face(h), true
}

func (it *FaceIterator) All() iter.Seq[FaceCursor] {
	return seq(it.Next)
}

type PointIterator struct {
	enum *enumerator[Point, *Point]
}

func (it *PointIterator) Next() (PointHandle, Point, bool) {
	h, p, ok := it.enum.next()
	if !ok {
		return PointHandle{}, Point{}, false
	}
	return h, p.snapshot(), true
}

func (it *PointIterator) All() iter.Seq2[PointHandle, Point] {
	return func(yield func(PointHandle, Point) bool) {
		for h, p, ok := it.Next(); ok; h, p, ok = it.Next() {
			if !yield(h, p) {
				return
			}
		}
	}
}

func seq[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := next(); ok; v, ok = next() {
			if !yield(v) {
				return
			}
		}
	}
}

////////////////////////////////////////////////////////////////////////////////

// FaceEdges walks a face loop from its root along Next. Each half-edge is
// stamped with the pass tag as it is visited and the walk ends at the first
// half-edge already carrying the tag, at the root, or at a handle that does
// not resolve.
type FaceEdges struct {
	tag     Tag
	root    EdgeHandle
	edge    EdgeCursor
	started bool
}

func newFaceEdges(tag Tag, root EdgeCursor) *FaceEdges {
	return &FaceEdges{tag: tag, root: root.handle, edge: root}
}

func (it *FaceEdges) Next() (EdgeCursor, bool) {
	cur := it.edge
	end := cur.mesh.Edge(EdgeHandle{})
	if !cur.resolves() {
		return end, false
	}
	if it.started && cur.handle == it.root {
		return end, false
	}
	p := cur.element().props()
	if p.Tag() == it.tag {
		return end, false
	}
	p.stamp(it.tag)
	it.started = true
	it.edge = cur.Next()
	return cur, true
}

func (it *FaceEdges) All() iter.Seq[EdgeCursor] {
	return seq(it.Next)
}

// FaceVertices is FaceEdges projected onto each half-edge's origin.
type FaceVertices struct {
	edges *FaceEdges
}

func (it *FaceVertices) Next() (VertexCursor, bool) {
	e, ok := it.edges.Next()
	if !ok {
		return e.mesh.Vertex(VertexHandle{}), false
	}
	return e.Vertex(), true
}

func (it *FaceVertices) All() iter.Seq[VertexCursor] {
	return seq(it.Next)
}

////////////////////////////////////////////////////////////////////////////////

type circulatorDirection int

const (
	// Rotate through Prev().Twin() while the current half-edge has a face.
	rotatePrev circulatorDirection = iota
	// Rotate through Twin().Next() starting from the other side of the
	// vertex's own edge.
	rotateNext
	circulatorDone
)

// VertexCirculator visits the half-edges leaving a vertex.
//
// Around an interior vertex the first rotation closes on itself. Around a
// vertex on an open boundary it runs into a half-edge without a face instead;
// the circulator then pivots to the far side of the vertex's own edge and
// rotates the other way until it hits the boundary again. On a well-formed
// mesh neither rotation depends on tags, so overlapping passes over the same
// vertex do not disturb each other; stamping only keeps a malformed ring from
// returning a half-edge twice.
type VertexCirculator struct {
	tag       Tag
	vertex    VertexCursor
	start     EdgeHandle
	current   EdgeCursor
	direction circulatorDirection
	visited   int
}

func newVertexCirculator(tag Tag, vertex VertexCursor) *VertexCirculator {
	start := vertex.Edge()
	return &VertexCirculator{
		tag:     tag,
		vertex:  vertex,
		start:   start.handle,
		current: start,
	}
}

func (it *VertexCirculator) Next() (EdgeCursor, bool) {
	for {
		switch it.direction {
		case rotatePrev:
			cur := it.current
			if it.visited > 0 && cur.handle == it.start {
				// Closed around the vertex; nothing lies on the other side.
				it.direction = circulatorDone
				continue
			}
			if !it.claim(cur) {
				it.pivot()
				continue
			}
			if cur.Face().IsValid() {
				it.current = cur.Prev().Twin()
			} else {
				it.pivot()
			}
			return cur, true
		case rotateNext:
			cur := it.current
			if !it.claim(cur) {
				it.direction = circulatorDone
				continue
			}
			twin := cur.Twin()
			if twin.Face().IsValid() {
				it.current = twin.Next()
			} else {
				it.direction = circulatorDone
			}
			return cur, true
		default:
			return it.vertex.mesh.Edge(EdgeHandle{}), false
		}
	}
}

func (it *VertexCirculator) pivot() {
	twin := it.vertex.Edge().Twin()
	if !twin.Face().IsValid() {
		it.direction = circulatorDone
		return
	}
	it.direction = rotateNext
	it.current = twin.Next()
}

// claim stamps e if it is a live half-edge leaving the vertex that this pass
// has not seen yet.
func (it *VertexCirculator) claim(e EdgeCursor) bool {
	if !e.resolves() || e.element().Vertex != it.vertex.handle {
		return false
	}
	if it.visited > 0 && e.handle == it.start {
		return false
	}
	p := e.element().props()
	if p.Tag() == it.tag {
		return false
	}
	p.stamp(it.tag)
	it.visited++
	return true
}

func (it *VertexCirculator) All() iter.Seq[EdgeCursor] {
	return seq(it.Next)
}
