// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth       = 1280
	ScreenHeight      = 800
	TPS               = 60
	MaxDeltaTime      = 0.06
	ClickDebounceTime = 100 // ms
	WindowTitle       = "Studio"

	HeaderHeight   = 64
	FooterHeight   = 44
	ContentMarginX = 72
	ContentTopY    = HeaderHeight + 48
	LineHeight     = 22
	ParagraphGap   = 14
	CardWidth      = 260
	CardHeight     = 170
	CardGap        = 24

	FieldWidth   = 460
	FieldHeight  = 36
	FieldGap     = 16
	ButtonWidth  = 160
	ButtonHeight = 40

	TitleFontSize   = 30
	HeadingFontSize = 20
	RegularFontSize = 14
	SmallFontSize   = 12

	ScrollStep = 40.0 // pixels per wheel notch
)

var (
	BackgroundColor = color.RGBA{10, 10, 26, 255}
	SurfaceColor    = color.RGBA{22, 24, 48, 230}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextMutedColor  = color.RGBA{160, 166, 190, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	AccentColor     = color.RGBA{79, 70, 229, 255}
	GoldColor       = color.RGBA{201, 162, 77, 255}
	ErrorColor      = color.RGBA{220, 60, 60, 230}
	SuccessColor    = color.RGBA{50, 170, 100, 230}
	BorderColor     = color.RGBA{90, 96, 140, 255}
	FocusColor      = color.RGBA{255, 215, 0, 255}

	// Background gradient stops (135deg), cycled over BackgroundCycle seconds.
	BackgroundStops = []color.RGBA{
		{10, 10, 26, 255},
		{15, 23, 42, 255},
		{30, 27, 75, 255},
		{49, 46, 129, 255},
		{30, 27, 75, 255},
	}
	BackgroundCycle = 30.0
)
