package render

import (
	_ "embed"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/cursor"
	"studio-site/internal/sprite"
)

//go:embed shaders/splat.kage
var splatShaderSrc []byte

const brushSize = 128

// Overlay is the offscreen trail image the fluid cursor paints on. It is
// sized in device pixels and composited over the page with additive
// blending, so it never hides or intercepts the content below.
type Overlay struct {
	img    *ebiten.Image
	pixel  *ebiten.Image
	shader *ebiten.Shader
	brush  *ebiten.Image // used when the shader does not compile
	w, h   int
}

func NewOverlay() *Overlay {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(whiteColor)

	o := &Overlay{pixel: pixel}
	shader, err := ebiten.NewShader(splatShaderSrc)
	if err != nil {
		log.Printf("render: splat shader unavailable, using brush: %v", err)
		o.brush = ebiten.NewImageFromImage(sprite.Falloff(brushSize))
	} else {
		o.shader = shader
	}
	return o
}

func (o *Overlay) Ready() bool      { return o.img != nil }
func (o *Overlay) Size() (int, int) { return o.w, o.h }

// Resize reallocates the trail image. The trail is lost, as it is when a
// canvas is resized.
func (o *Overlay) Resize(w, h int) {
	if w == o.w && h == o.h && o.img != nil {
		return
	}
	if o.img != nil {
		o.img.Deallocate()
		o.img = nil
	}
	o.w, o.h = w, h
	if w > 0 && h > 0 {
		o.img = ebiten.NewImage(w, h)
	}
}

// Fade scales everything drawn so far by 1-alpha.
func (o *Overlay) Fade(alpha float64) {
	if o.img == nil || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.w), float64(o.h))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Blend = ebiten.BlendDestinationOut
	o.img.DrawImage(o.pixel, op)
}

func (o *Overlay) Splat(l cursor.Layer) {
	if o.img == nil || l.Radius <= 0 {
		return
	}
	x0 := math.Floor(l.X - l.Radius)
	y0 := math.Floor(l.Y - l.Radius)
	size := int(math.Ceil(l.Radius*2)) + 2
	colors, offsets := l.Gradient()

	if o.shader == nil {
		o.splatBrush(l, colors[0])
		return
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(x0, y0)
	op.Uniforms = map[string]any{
		"Center":  []float32{float32(l.X), float32(l.Y)},
		"Radius":  float32(l.Radius),
		"Color0":  colors[0][:],
		"Color1":  colors[1][:],
		"Color2":  colors[2][:],
		"Offsets": offsets[:],
	}
	o.img.DrawRectShader(size, size, o.shader, op)
}

// splatBrush approximates a layer with the baked falloff tinted by its
// center color.
func (o *Overlay) splatBrush(l cursor.Layer, c [4]float32) {
	op := &ebiten.DrawImageOptions{}
	s := l.Radius * 2 / brushSize
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(l.X-l.Radius, l.Y-l.Radius)
	op.ColorScale.Scale(c[0], c[1], c[2], c[3])
	op.Filter = ebiten.FilterLinear
	o.img.DrawImage(o.brush, op)
}

func (o *Overlay) Clear() {
	if o.img != nil {
		o.img.Clear()
	}
}

// Draw composites the trail onto screen, scaled from device to logical
// pixels.
func (o *Overlay) Draw(screen *ebiten.Image, scale, opacity float64) {
	if o.img == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1/scale, 1/scale)
	op.ColorScale.ScaleAlpha(float32(opacity))
	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(o.img, op)
}

var _ cursor.Surface = (*Overlay)(nil)
