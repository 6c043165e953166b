//go:build hedgedebug

package hedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectEdges_InvalidHandlePanics(t *testing.T) {
	m := NewMesh()
	a := m.AddEdge(Edge{})

	assert.PanicsWithValue(t, "hedge: assertion error: ConnectEdges: invalid next Edge(0@0)", func() {
		m.ConnectEdges(a, EdgeHandle{})
	})
	assert.Panics(t, func() { m.ConnectEdges(EdgeHandle{}, a) })
	assert.Panics(t, func() { m.IsBoundaryEdge(EdgeHandle{}) })
	assert.NotPanics(t, func() { m.ConnectEdges(a, a) })
}
