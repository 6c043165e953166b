package hedge

import (
	"errors"
	"fmt"
)

// Errors reported by Check. Traversal itself never returns them; a mesh that
// fails Check still walks without panicking, just not meaningfully.
var (
	ErrTwinMismatch     = errors.New("twin of twin is not the edge itself")
	ErrNextPrevMismatch = errors.New("next and prev are not inverse")
	ErrDanglingHandle   = errors.New("reference does not resolve")
	ErrFaceMismatch     = errors.New("loop edge belongs to another face")
	ErrOpenLoop         = errors.New("edge loop does not return to its root")
	ErrVertexOrigin     = errors.New("vertex edge does not leave the vertex")
)

// TopologyError ties a broken invariant to the element it was found on.
type TopologyError struct {
	Element string
	Err     error
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Element, e.Err)
}

func (e *TopologyError) Unwrap() error {
	return e.Err
}

// Check walks every live element and verifies the connectivity invariants:
// twins pair up, next and prev are inverse, vertex edges leave their vertex,
// and face loops close on their root with every edge owned by the face.
// Unset (sentinel) references are allowed; references to dead slots are not.
// All problems found are joined into the returned error.
func (m *Mesh) Check() error {
	var errs []error
	report := func(at fmt.Stringer, err error) {
		errs = append(errs, &TopologyError{Element: at.String(), Err: err})
	}

	edges := m.Edges()
	for e, ok := edges.Next(); ok; e, ok = edges.Next() {
		edge := e.Element()
		if !edge.Twin.IsSentinel() {
			if !m.edges.valid(edge.Twin) {
				report(e.handle, ErrDanglingHandle)
			} else if m.GetEdge(edge.Twin).Twin != e.handle {
				report(e.handle, ErrTwinMismatch)
			}
		}
		if !edge.Next.IsSentinel() {
			if !m.edges.valid(edge.Next) {
				report(e.handle, ErrDanglingHandle)
			} else if m.GetEdge(edge.Next).Prev != e.handle {
				report(e.handle, ErrNextPrevMismatch)
			}
		}
		if !edge.Prev.IsSentinel() && !m.edges.valid(edge.Prev) {
			report(e.handle, ErrDanglingHandle)
		}
		if !edge.Vertex.IsSentinel() && !m.vertices.valid(edge.Vertex) {
			report(e.handle, ErrDanglingHandle)
		}
		if !edge.Face.IsSentinel() && !m.faces.valid(edge.Face) {
			report(e.handle, ErrDanglingHandle)
		}
	}

	vertices := m.Vertices()
	for v, ok := vertices.Next(); ok; v, ok = vertices.Next() {
		vertex := v.Element()
		if vertex.Edge.IsSentinel() {
			continue
		}
		if !m.edges.valid(vertex.Edge) {
			report(v.handle, ErrDanglingHandle)
		} else if m.GetEdge(vertex.Edge).Vertex != v.handle {
			report(v.handle, ErrVertexOrigin)
		}
	}

	faces := m.Faces()
	for f, ok := faces.Next(); ok; f, ok = faces.Next() {
		if err := m.checkLoop(f); err != nil {
			report(f.handle, err)
		}
	}

	return errors.Join(errs...)
}

// checkLoop follows Next from the face root without stamping, giving up once
// it has taken more steps than there are edges.
func (m *Mesh) checkLoop(f FaceCursor) error {
	root := f.Element().Root
	if root.IsSentinel() {
		return nil
	}
	if !m.edges.valid(root) {
		return ErrDanglingHandle
	}
	e := root
	for steps := 0; steps <= m.EdgeCount(); steps++ {
		if !m.edges.valid(e) {
			return ErrOpenLoop
		}
		edge := m.GetEdge(e)
		if edge.Face != f.handle {
			return ErrFaceMismatch
		}
		e = edge.Next
		if e == root {
			return nil
		}
	}
	return ErrOpenLoop
}
