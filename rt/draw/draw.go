package draw

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Color [4]float32

type Primitive int

const (
	Lines Primitive = iota
	Triangles
	Quads
)

// VertsPer is the number of vertices one primitive consumes.
func (p Primitive) VertsPer() int {
	switch p {
	case Lines:
		return 2
	case Triangles:
		return 3
	default:
		return 4
	}
}

// Renderer accepts immediate-mode geometry in world space. Vertex slices are
// only valid for the duration of the call.
type Renderer interface {
	DrawLines(verts []mgl32.Vec3, color Color)
	DrawTriangles(verts []mgl32.Vec3, color Color)
	DrawQuads(verts []mgl32.Vec3, color Color)
}

type Batch struct {
	Primitive Primitive
	Color     Color
	Verts     []mgl32.Vec3
}

// Vertex matches the layout of the gizmo shader's vertex input.
type Vertex struct {
	Pos   [3]float32
	Color [4]float32
}

// List records draw calls for one frame.
type List struct {
	Batches []Batch
}

func NewList() *List {
	return &List{}
}

func (l *List) Reset() {
	l.Batches = l.Batches[:0]
}

func (l *List) DrawLines(verts []mgl32.Vec3, color Color)     { l.add(Lines, verts, color) }
func (l *List) DrawTriangles(verts []mgl32.Vec3, color Color) { l.add(Triangles, verts, color) }
func (l *List) DrawQuads(verts []mgl32.Vec3, color Color)     { l.add(Quads, verts, color) }

func (l *List) add(p Primitive, verts []mgl32.Vec3, color Color) {
	n := len(verts) - len(verts)%p.VertsPer()
	if n == 0 {
		return
	}
	l.Batches = append(l.Batches, Batch{
		Primitive: p,
		Color:     color,
		Verts:     append([]mgl32.Vec3(nil), verts[:n]...),
	})
}

// Span is a run of consecutive flattened vertices drawn with one topology.
type Span struct {
	Lines bool
	First uint32
	Count uint32
}

// AppendVertices flattens the list in submission order, splitting each quad
// along its 0-2 diagonal. Adjacent batches of the same topology share a span,
// so drawing the spans in order keeps later calls over earlier ones.
func (l *List) AppendVertices(dst []Vertex, spans []Span) ([]Vertex, []Span) {
	for _, b := range l.Batches {
		first := uint32(len(dst))
		switch b.Primitive {
		case Lines, Triangles:
			for _, v := range b.Verts {
				dst = append(dst, Vertex{Pos: v, Color: b.Color})
			}
		case Quads:
			for i := 0; i+3 < len(b.Verts); i += 4 {
				q := b.Verts[i : i+4]
				for _, k := range [6]int{0, 1, 2, 0, 2, 3} {
					dst = append(dst, Vertex{Pos: q[k], Color: b.Color})
				}
			}
		}
		count := uint32(len(dst)) - first
		lines := b.Primitive == Lines
		if n := len(spans); n > 0 && spans[n-1].Lines == lines && spans[n-1].First+spans[n-1].Count == first {
			spans[n-1].Count += count
			continue
		}
		spans = append(spans, Span{Lines: lines, First: first, Count: count})
	}
	return dst, spans
}
