package atelier

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FormatDistance renders a measured distance the way the measurement label
// shows it.
func FormatDistance(d float32) string {
	return fmt.Sprintf("%.2f", d)
}

type LabelVertex struct {
	Pos   mgl32.Vec3
	UV    [2]float32
	Color [4]float32
}

type labelGlyphInfo struct {
	uvMin [2]float32
	uvMax [2]float32
	size  [2]float32
	off   [2]float32
	adv   float32
}

// LabelAtlas rasterizes the printable ASCII range into a single alpha atlas
// and builds world-space billboard quads for measurement labels.
type LabelAtlas struct {
	AtlasImage *image.Alpha
	glyphs     map[rune]labelGlyphInfo
	face       font.Face
}

func NewLabelAtlas(fontBytes []byte, fontSize float64) (*LabelAtlas, error) {
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}

	const atlasSize = 512
	atlas := image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize))
	glyphs := make(map[rune]labelGlyphInfo)

	x, y := 2, 2
	rowHeight := 0

	for r := rune(32); r < 127; r++ {
		bounds, mask, _, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}

		w := mask.Bounds().Dx()
		h := mask.Bounds().Dy()

		if x+w >= atlasSize {
			x = 2
			y += rowHeight + 4
			rowHeight = 0
		}

		if y+h >= atlasSize {
			break
		}

		draw.Draw(atlas, image.Rect(x, y, x+w, y+h), mask, mask.Bounds().Min, draw.Src)

		glyphs[r] = labelGlyphInfo{
			uvMin: [2]float32{float32(x) / atlasSize, float32(y) / atlasSize},
			uvMax: [2]float32{float32(x+w) / atlasSize, float32(y+h) / atlasSize},
			size:  [2]float32{float32(w), float32(h)},
			off:   [2]float32{float32(bounds.Min.X), float32(bounds.Min.Y)},
			adv:   float32(adv) / 64.0, // fixed 26.6 to float
		}

		x += w + 4
		if h > rowHeight {
			rowHeight = h
		}
	}

	return &LabelAtlas{
		AtlasImage: atlas,
		glyphs:     glyphs,
		face:       face,
	}, nil
}

// BuildBillboard lays the text out in the plane spanned by right and up,
// centered on the given world point, with scale in world units per font
// pixel. Two triangles per glyph.
func (a *LabelAtlas) BuildBillboard(text string, center, right, up mgl32.Vec3, scale float32, color [4]float32) []LabelVertex {
	width, height := a.MeasureText(text, scale)
	origin := center.
		Sub(right.Mul(width / 2)).
		Add(up.Mul(height / 2))

	vertices := make([]LabelVertex, 0, len(text)*6)
	penX := float32(0)

	at := func(px, py float32) mgl32.Vec3 {
		return origin.Add(right.Mul(px)).Sub(up.Mul(py))
	}

	for _, r := range text {
		g, ok := a.glyphs[r]
		if !ok {
			continue
		}

		px0 := penX + g.off[0]*scale
		py0 := g.off[1]*scale + height/2
		px1 := px0 + g.size[0]*scale
		py1 := py0 + g.size[1]*scale

		v00 := LabelVertex{Pos: at(px0, py0), UV: [2]float32{g.uvMin[0], g.uvMin[1]}, Color: color}
		v10 := LabelVertex{Pos: at(px1, py0), UV: [2]float32{g.uvMax[0], g.uvMin[1]}, Color: color}
		v01 := LabelVertex{Pos: at(px0, py1), UV: [2]float32{g.uvMin[0], g.uvMax[1]}, Color: color}
		v11 := LabelVertex{Pos: at(px1, py1), UV: [2]float32{g.uvMax[0], g.uvMax[1]}, Color: color}

		vertices = append(vertices, v00, v10, v01, v10, v11, v01)

		penX += g.adv * scale
	}

	return vertices
}

// MeasureText returns the laid-out size of a single-line text in world
// units.
func (a *LabelAtlas) MeasureText(text string, scale float32) (float32, float32) {
	if a == nil {
		return 0, 0
	}
	metrics := a.face.Metrics()
	height := float32(metrics.Height.Ceil()) * scale

	width := float32(0)
	for _, r := range text {
		g, ok := a.glyphs[r]
		if !ok {
			continue
		}
		width += g.adv * scale
	}
	return width, height
}
