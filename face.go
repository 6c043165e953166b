package hedge

// Face is bounded by the loop of half-edges reached by following Next from
// Root until it comes back around.
type Face struct {
	Props
	Root Handle[Edge]
}

func NewFace(root EdgeHandle) Face {
	return Face{Root: root}
}

func (f *Face) props() *Props {
	return &f.Props
}

func (f *Face) snapshot() Face {
	return Face{Props: f.Props.snapshot(), Root: f.Root}
}

// IsValid reports whether the face is live and has a root half-edge.
func (f Face) IsValid() bool {
	return f.Status == Active && !f.Root.IsSentinel()
}
