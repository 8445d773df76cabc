package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"studio-site/internal/sprite"
	"studio-site/internal/starfield"
)

const dotSize = 32

// StarfieldRenderer draws a starfield.Field: stars as additive soft dots,
// then the ridge silhouettes back to front.
type StarfieldRenderer struct {
	dot     *ebiten.Image
	fillImg *ebiten.Image
	points  []starfield.Point
	fillVs  []ebiten.Vertex
	fillIs  []uint16
}

func NewStarfieldRenderer() *StarfieldRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(whiteColor)
	return &StarfieldRenderer{
		dot:     ebiten.NewImageFromImage(sprite.Dot(dotSize)),
		fillImg: fillImg,
		points:  make([]starfield.Point, 0, 4096),
		fillVs:  make([]ebiten.Vertex, 0, 256),
		fillIs:  make([]uint16, 0, 512),
	}
}

// Draw renders field at t seconds over the whole of screen.
func (r *StarfieldRenderer) Draw(screen *ebiten.Image, field *starfield.Field, t float64) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	r.points = field.Project(t, w, h, r.points[:0])
	op := &ebiten.DrawImageOptions{}
	for _, p := range r.points {
		op.GeoM.Reset()
		s := p.Radius * 2 / dotSize
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(p.X-p.Radius, p.Y-p.Radius)
		op.ColorScale = tint(p.Color, 1)
		op.Blend = ebiten.BlendLighter
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(r.dot, op)
	}

	ridges := field.Ridges()
	for i := len(ridges) - 1; i >= 0; i-- {
		r.drawRidge(screen, ridges[i], t, w, h)
	}
}

func (r *StarfieldRenderer) drawRidge(target *ebiten.Image, ridge starfield.Ridge, t, w, h float64) {
	outline := ridge.Outline(t, w, h)
	if len(outline) == 0 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(outline[0].X-w), float32(h))
	path.LineTo(float32(outline[0].X-w), float32(outline[0].Y))
	for _, p := range outline {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	last := outline[len(outline)-1]
	path.LineTo(float32(last.X+w), float32(last.Y))
	path.LineTo(float32(last.X+w), float32(h))
	path.Close()

	fill := WithAlpha(color.RGBA{ridge.Color.R, ridge.Color.G, ridge.Color.B, 255}, ridge.Opacity)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fill.R) / 255
		r.fillVs[i].ColorG = float32(fill.G) / 255
		r.fillVs[i].ColorB = float32(fill.B) / 255
		r.fillVs[i].ColorA = float32(fill.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.NonZero,
		AntiAlias: true,
	})
}
