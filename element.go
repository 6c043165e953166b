package hedge

import "sync/atomic"

// Status records whether an element slot currently holds a live element.
// The zero value is Removed, which is what the sentinel slot carries forever.
type Status uint8

const (
	Removed Status = iota
	Active
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Removed:
		return "removed"
	}
	return "unknown"
}

// Tag identifies one traversal pass. Tag 0 is never issued by a Mesh.
type Tag uint64

// Props is the bookkeeping every element carries.
//
// The tag is kept apart from the other fields: traversals stamp it through
// shared pointers while other cursors may be reading the same element, so it
// is only ever touched with atomic loads and stores.
type Props struct {
	Status     Status
	Generation Generation
	tag        uint64
}

func (p *Props) Tag() Tag {
	return Tag(atomic.LoadUint64(&p.tag))
}

func (p *Props) stamp(t Tag) {
	atomic.StoreUint64(&p.tag, uint64(t))
}

// snapshot copies the props, reading the tag atomically so that a copy can
// be taken while a walk is stamping the element.
func (p *Props) snapshot() Props {
	return Props{Status: p.Status, Generation: p.Generation, tag: atomic.LoadUint64(&p.tag)}
}

func (p *Props) isActive() bool {
	return p.Status == Active
}

// element is the set of record kinds a Mesh stores.
type element interface {
	Point | Vertex | Edge | Face
}

// elementPtr lets generic buffer code reach the Props of a stored record and
// copy the record out without a plain read of its tag.
type elementPtr[E element] interface {
	*E
	props() *Props
	snapshot() E
}
