package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"studio-site/internal/config"
)

// Fonts holds every face the site draws text with.
type Fonts struct {
	Title   font.Face
	Heading font.Face
	Regular font.Face
	Small   font.Face
}

// LoadFonts parses the bundled Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	f := &Fonts{}
	for _, fd := range []struct {
		dst  *font.Face
		font *opentype.Font
		size float64
	}{
		{&f.Title, bold, config.TitleFontSize},
		{&f.Heading, bold, config.HeadingFontSize},
		{&f.Regular, regular, config.RegularFontSize},
		{&f.Small, regular, config.SmallFontSize},
	} {
		face, err := opentype.NewFace(fd.font, &opentype.FaceOptions{
			Size:    fd.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %gpt face: %w", fd.size, err)
		}
		*fd.dst = face
	}
	return f, nil
}
