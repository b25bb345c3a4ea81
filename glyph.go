package atelier

import (
	"github.com/go-gl/mathgl/mgl32"
)

type GlyphType int

const (
	GlyphLine GlyphType = iota
	GlyphArrow
	GlyphCube
	GlyphWireCube
	GlyphSphere
	GlyphCircle
	GlyphLabel
)

// Glyph is the built-in geometry the engine itself needs to display: gizmo
// handles, selection outlines, measurement markers, lines and labels. It
// implements Surface so any Renderer can display it like host geometry.
type Glyph struct {
	Type  GlyphType
	Color [4]float32

	Start, End mgl32.Vec3 // line, arrow
	Center     mgl32.Vec3 // cube, sphere, circle, label anchor
	Size       mgl32.Vec3 // cube extents
	Radius     float32    // sphere, circle
	Normal     mgl32.Vec3 // circle plane normal

	Text      string // label
	TextScale float32
}

func NewLineGlyph(start, end mgl32.Vec3, color [4]float32) Glyph {
	return Glyph{Type: GlyphLine, Start: start, End: end, Color: color}
}

func NewArrowGlyph(start, end mgl32.Vec3, color [4]float32) Glyph {
	return Glyph{Type: GlyphArrow, Start: start, End: end, Color: color}
}

func NewCubeGlyph(center, size mgl32.Vec3, color [4]float32) Glyph {
	return Glyph{Type: GlyphCube, Center: center, Size: size, Color: color}
}

func NewWireCubeGlyph(center, size mgl32.Vec3, color [4]float32) Glyph {
	return Glyph{Type: GlyphWireCube, Center: center, Size: size, Color: color}
}

func NewSphereGlyph(center mgl32.Vec3, radius float32, color [4]float32) Glyph {
	return Glyph{Type: GlyphSphere, Center: center, Radius: radius, Color: color}
}

func NewCircleGlyph(normal, center mgl32.Vec3, radius float32, color [4]float32) Glyph {
	return Glyph{Type: GlyphCircle, Normal: normal, Center: center, Radius: radius, Color: color}
}

func NewLabelGlyph(text string, center mgl32.Vec3, scale float32, color [4]float32) Glyph {
	return Glyph{Type: GlyphLabel, Text: text, Center: center, TextScale: scale, Color: color}
}

func (g Glyph) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	switch g.Type {
	case GlyphLine, GlyphArrow:
		return vecMin(g.Start, g.End), vecMax(g.Start, g.End)
	case GlyphCube, GlyphWireCube:
		half := g.Size.Mul(0.5)
		return g.Center.Sub(half), g.Center.Add(half)
	case GlyphSphere:
		r := mgl32.Vec3{g.Radius, g.Radius, g.Radius}
		return g.Center.Sub(r), g.Center.Add(r)
	case GlyphCircle:
		r := mgl32.Vec3{g.Radius, g.Radius, g.Radius}
		return g.Center.Sub(r), g.Center.Add(r)
	default:
		return g.Center, g.Center
	}
}

func (g Glyph) Counts() (int, int, int) { return 0, 0, 0 }

func vecMin(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		min(a.X(), b.X()),
		min(a.Y(), b.Y()),
		min(a.Z(), b.Z()),
	}
}

func vecMax(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		max(a.X(), b.X()),
		max(a.Y(), b.Y()),
		max(a.Z(), b.Z()),
	}
}
