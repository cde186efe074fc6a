package draw

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSplitsQuads(t *testing.T) {
	l := NewList()
	red := Color{1, 0, 0, 1}
	quad := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}

	l.DrawQuads(quad, red)
	tris, spans := l.AppendVertices(nil, nil)
	require.Equal(t, []Span{{Lines: false, First: 0, Count: 6}}, spans)

	require.Len(t, tris, 6)
	assert.Equal(t, [3]float32{0, 0, 0}, tris[0].Pos)
	assert.Equal(t, [3]float32{1, 1, 0}, tris[2].Pos)
	assert.Equal(t, [3]float32{0, 1, 0}, tris[5].Pos)
	for _, v := range tris {
		assert.Equal(t, [4]float32(red), v.Color)
	}
}

func TestListCopiesAndTrims(t *testing.T) {
	l := NewList()
	verts := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {9, 9, 9}}

	l.DrawTriangles(verts, Color{0, 1, 0, 1})
	verts[0] = mgl32.Vec3{5, 5, 5}

	require.Len(t, l.Batches, 1)
	assert.Len(t, l.Batches[0].Verts, 3, "incomplete trailing primitive is dropped")
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, l.Batches[0].Verts[0], "list keeps its own copy")

	l.DrawLines(nil, Color{})
	assert.Len(t, l.Batches, 1, "empty calls are ignored")
}

func TestListKeepsSubmissionOrder(t *testing.T) {
	l := NewList()
	white := Color{1, 1, 1, 1}
	l.DrawLines([]mgl32.Vec3{{0, 0, 0}, {1, 1, 1}}, white)
	l.DrawQuads([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}, white)
	l.DrawTriangles([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, white)
	l.DrawLines([]mgl32.Vec3{{2, 2, 2}, {3, 3, 3}}, white)

	verts, spans := l.AppendVertices(nil, nil)
	require.Len(t, verts, 2+6+3+2)
	assert.Equal(t, []Span{
		{Lines: true, First: 0, Count: 2},
		{Lines: false, First: 2, Count: 9},
		{Lines: true, First: 11, Count: 2},
	}, spans)
	assert.Equal(t, [3]float32{2, 2, 2}, verts[11].Pos, "the last line stays last")

	l.Reset()
	verts, spans = l.AppendVertices(verts[:0], spans[:0])
	assert.Empty(t, verts)
	assert.Empty(t, spans)
}
