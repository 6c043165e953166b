package hedge

import "github.com/go-gl/mathgl/mgl64"

// Point is the positional payload a Vertex refers to. The mesh never looks
// inside Position.
type Point struct {
	Props
	Position mgl64.Vec3
}

func NewPoint(x, y, z float64) Point {
	return Point{
		Position: mgl64.Vec3{x, y, z},
	}
}

func (p *Point) props() *Props {
	return &p.Props
}

func (p *Point) snapshot() Point {
	return Point{Props: p.Props.snapshot(), Position: p.Position}
}

func (p Point) IsValid() bool {
	return p.Status == Active
}
