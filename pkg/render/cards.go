package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/sprite"
)

// CardCache bakes each card once and keeps the GPU image.
type CardCache struct {
	faces  *sprite.Faces
	style  sprite.CardStyle
	images map[string]*ebiten.Image
}

func NewCardCache(faces *sprite.Faces) *CardCache {
	return &CardCache{
		faces: faces,
		style: sprite.CardStyle{
			Fill:   config.SurfaceColor,
			Border: config.BorderColor,
			Accent: config.AccentColor,
			Text:   config.TextLightColor,
			Muted:  config.TextMutedColor,
		},
		images: make(map[string]*ebiten.Image),
	}
}

// Get returns the baked image for key, baking c on first use.
func (cc *CardCache) Get(key string, c sprite.Card) *ebiten.Image {
	if img, ok := cc.images[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(sprite.BakeCard(c, config.CardWidth, config.CardHeight, cc.style, cc.faces))
	cc.images[key] = img
	return img
}

// Len returns the number of baked cards.
func (cc *CardCache) Len() int { return len(cc.images) }
