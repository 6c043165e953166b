package hedge

// buffer is a growable arena of elements. Slot 0 holds the sentinel, which is
// never active. Removed slots stay in place and are recycled through a free
// list; every recycle bumps the slot generation so stale handles stop
// resolving.
type buffer[E element, P elementPtr[E]] struct {
	slots []E
	free  []Index
	live  int
}

func newBuffer[E element, P elementPtr[E]]() *buffer[E, P] {
	return &buffer[E, P]{
		slots: make([]E, 1, 16),
		free:  make([]Index, 0, 16),
	}
}

func (b *buffer[E, P]) props(i Index) *Props {
	return P(&b.slots[i]).props()
}

func (b *buffer[E, P]) add(e E) Handle[E] {
	var index Index
	var generation Generation
	if n := len(b.free); n > 0 {
		index = b.free[n-1]
		b.free = b.free[:n-1]
		generation = b.props(index).Generation + 1
		if generation == 0 {
			generation = 1
		}
		b.slots[index] = e
		logger.Printf("reusing %T slot %d at generation %d", e, index, generation)
	} else {
		index = Index(len(b.slots))
		generation = 1
		b.slots = append(b.slots, e)
	}

	p := b.props(index)
	p.Status = Active
	p.Generation = generation
	p.stamp(0)
	b.live++
	return makeHandle[E](index, generation)
}

// remove deactivates the slot h names. Stale, sentinel or already removed
// handles are ignored and false is returned.
func (b *buffer[E, P]) remove(h Handle[E]) bool {
	if !b.valid(h) {
		return false
	}
	b.props(h.index).Status = Removed
	b.free = append(b.free, h.index)
	b.live--
	return true
}

func (b *buffer[E, P]) valid(h Handle[E]) bool {
	if h.index == 0 || int(h.index) >= len(b.slots) {
		return false
	}
	p := b.props(h.index)
	return p.isActive() && p.Generation == h.generation
}

// get returns the element h names, or the sentinel. Callers must not write
// through the sentinel.
func (b *buffer[E, P]) get(h Handle[E]) *E {
	if !b.valid(h) {
		return &b.slots[0]
	}
	return &b.slots[h.index]
}

// load returns a copy of the element h names, or of the sentinel.
func (b *buffer[E, P]) load(h Handle[E]) E {
	return P(b.get(h)).snapshot()
}

func (b *buffer[E, P]) getMut(h Handle[E]) (*E, bool) {
	if !b.valid(h) {
		return nil, false
	}
	return &b.slots[h.index], true
}

func (b *buffer[E, P]) len() int {
	return b.live
}

// cap is the number of slots, including the sentinel and removed slots.
func (b *buffer[E, P]) cap() int {
	return len(b.slots)
}

// clone copies the buffer slot by slot. It only reads, so it may run while
// walks are stamping tags.
func (b *buffer[E, P]) clone() *buffer[E, P] {
	slots := make([]E, len(b.slots))
	for i := range b.slots {
		slots[i] = P(&b.slots[i]).snapshot()
	}
	return &buffer[E, P]{
		slots: slots,
		free:  append(make([]Index, 0, len(b.free)), b.free...),
		live:  b.live,
	}
}

func (b *buffer[E, P]) enumerate(tag Tag) *enumerator[E, P] {
	return &enumerator[E, P]{
		buf: b,
		tag: tag,
		end: Index(len(b.slots)),
	}
}

// enumerator walks the active slots of a buffer once, in ascending order.
// Slots appended after the enumerator was created are not visited.
type enumerator[E element, P elementPtr[E]] struct {
	buf *buffer[E, P]
	tag Tag
	pos Index
	end Index
}

func (it *enumerator[E, P]) next() (Handle[E], *E, bool) {
	for it.pos+1 < it.end {
		it.pos++
		p := it.buf.props(it.pos)
		if !p.isActive() {
			continue
		}
		p.stamp(it.tag)
		return makeHandle[E](it.pos, p.Generation), &it.buf.slots[it.pos], true
	}
	return Handle[E]{}, nil, false
}
