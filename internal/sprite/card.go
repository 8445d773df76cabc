package sprite

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces are the TrueType faces used on baked cards.
type Faces struct {
	Title font.Face
	Body  font.Face
	Small font.Face
}

// LoadFaces parses the bundled Go fonts at the given point sizes.
func LoadFaces(title, body, small float64) (*Faces, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	face := func(f *truetype.Font, size float64) font.Face {
		return truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	return &Faces{
		Title: face(bold, title),
		Body:  face(regular, body),
		Small: face(regular, small),
	}, nil
}

// Card is the content of one grid card.
type Card struct {
	Title    string
	Category string
	Summary  string
	Tags     []string
}

// CardStyle holds the colors of a baked card.
type CardStyle struct {
	Fill   color.Color
	Border color.Color
	Accent color.Color
	Text   color.Color
	Muted  color.Color
}

const cardPadding = 16

// BakeCard renders a rounded card of w×h pixels with the category, title,
// wrapped summary and tags.
func BakeCard(c Card, w, h int, style CardStyle, faces *Faces) *image.RGBA {
	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)

	dc.DrawRoundedRectangle(1, 1, fw-2, fh-2, 12)
	dc.SetColor(style.Fill)
	dc.FillPreserve()
	dc.SetColor(style.Border)
	dc.SetLineWidth(1)
	dc.Stroke()

	// accent strip along the top edge
	g := gg.NewLinearGradient(0, 0, fw, 0)
	g.AddColorStop(0, style.Accent)
	g.AddColorStop(1, color.RGBA{0, 0, 0, 0})
	dc.SetFillStyle(g)
	dc.DrawRectangle(12, 1, fw-24, 3)
	dc.Fill()

	y := float64(cardPadding)
	if c.Category != "" {
		dc.SetFontFace(faces.Small)
		dc.SetColor(style.Accent)
		dc.DrawStringAnchored(strings.ToUpper(c.Category), cardPadding, y, 0, 1)
		y += lineHeight(faces.Small) + 6
	}

	dc.SetFontFace(faces.Title)
	dc.SetColor(style.Text)
	dc.DrawStringAnchored(c.Title, cardPadding, y, 0, 1)
	y += lineHeight(faces.Title) + 6

	dc.SetFontFace(faces.Body)
	dc.SetColor(style.Muted)
	lh := lineHeight(faces.Body)
	tagsTop := fh - cardPadding - lineHeight(faces.Small)
	for _, line := range dc.WordWrap(c.Summary, fw-2*cardPadding) {
		if y+lh > tagsTop-4 {
			break
		}
		dc.DrawStringAnchored(line, cardPadding, y, 0, 1)
		y += lh
	}

	if len(c.Tags) > 0 {
		dc.SetFontFace(faces.Small)
		dc.SetColor(style.Accent)
		x := float64(cardPadding)
		for _, tag := range c.Tags {
			label := "#" + tag
			tw, _ := dc.MeasureString(label)
			if x+tw > fw-cardPadding {
				break
			}
			dc.DrawStringAnchored(label, x, tagsTop, 0, 1)
			x += tw + 10
		}
	}
	return toRGBA(dc.Image())
}

func lineHeight(f font.Face) float64 {
	return float64(f.Metrics().Height) / 64
}
