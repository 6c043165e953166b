package hedge

import "fmt"

// Index is a slot position inside an element buffer. Index 0 is the sentinel.
type Index uint32

// Generation counts how many times a slot has been handed out.
type Generation uint32

// Handle refers to one slot of the buffer holding elements of kind E.
// The zero value is the sentinel handle and never resolves to a live element.
// E is left unconstrained because the records themselves hold handles.
type Handle[E any] struct {
	index      Index
	generation Generation
}

type (
	PointHandle  = Handle[Point]
	VertexHandle = Handle[Vertex]
	EdgeHandle   = Handle[Edge]
	FaceHandle   = Handle[Face]
)

func makeHandle[E any](index Index, generation Generation) Handle[E] {
	return Handle[E]{index: index, generation: generation}
}

func (h Handle[E]) Index() Index {
	return h.index
}

func (h Handle[E]) Generation() Generation {
	return h.generation
}

// IsSentinel reports whether h names slot 0.
func (h Handle[E]) IsSentinel() bool {
	return h.index == 0
}

func (h Handle[E]) String() string {
	var e E
	return fmt.Sprintf("%s(%d@%d)", kindName(e), h.index, h.generation)
}

func kindName(e any) string {
	switch e.(type) {
	case Point:
		return "Point"
	case Vertex:
		return "Vertex"
	case Edge:
		return "Edge"
	case Face:
		return "Face"
	}
	return "Element"
}
