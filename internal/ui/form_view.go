// internal/ui/form_view.go
package ui

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/config"
	"studio-site/internal/forms"
	"studio-site/pkg/render"
)

// FormView lays out and edits a forms.Form: one TextField per field, a
// submit button and the status banner.
type FormView struct {
	Form   *forms.Form
	Fields []*TextField
	Submit *Button

	bannerY int
	width   int
	x       int
}

func NewFormView(f *forms.Form, submitText string) *FormView {
	v := &FormView{Form: f, Submit: NewButton(image.Rectangle{}, submitText, true)}
	for _, fld := range f.Fields {
		v.Fields = append(v.Fields, &TextField{Field: fld})
	}
	return v
}

// Layout positions the view with its top-left at (x, y) and returns the y
// below it.
func (v *FormView) Layout(fonts *render.Fonts, x, y, width int) int {
	v.x, v.width = x, width
	labelH := render.LineHeight(fonts.Small) + 4
	for _, tf := range v.Fields {
		y += labelH
		tf.Rect = image.Rect(x, y, x+width, y+tf.Height())
		y += tf.Height() + config.FieldGap
	}
	v.Submit.Rect = image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
	y += config.ButtonHeight + config.FieldGap
	v.bannerY = y
	if st := v.Form.Status(); st.Kind != forms.None {
		lines := render.Wrap(fonts.Regular, st.Message, width-24)
		y += len(lines)*render.LineHeight(fonts.Regular) + 16 + config.FieldGap
	}
	return y
}

// Update routes input to the fields and reports whether the form should be
// submitted, by button or by Enter in a single-line field.
func (v *FormView) Update(in *Input) bool {
	if in.Tab {
		v.cycleFocus(in.Shift)
	}
	if in.Pressed {
		for _, tf := range v.Fields {
			tf.Focused = false
		}
	}
	submit := false
	for _, tf := range v.Fields {
		if tf.Update(in) {
			submit = true
		}
	}
	v.Submit.Disabled = v.Form.Submitting()
	if v.Submit.Update(in) {
		submit = true
	}
	return submit && !v.Form.Submitting()
}

func (v *FormView) cycleFocus(back bool) {
	n := len(v.Fields)
	if n == 0 {
		return
	}
	cur := -1
	for i, tf := range v.Fields {
		if tf.Focused {
			cur = i
		}
		tf.Focused = false
	}
	next := cur + 1
	if back {
		next = cur - 1 + n
		if cur < 0 {
			next = n - 1
		}
	}
	v.Fields[next%n].Focused = true
}

// Blur drops keyboard focus from every field.
func (v *FormView) Blur() {
	for _, tf := range v.Fields {
		tf.Focused = false
	}
}

func (v *FormView) Draw(dst *ebiten.Image, fonts *render.Fonts, now time.Time) {
	for _, tf := range v.Fields {
		tf.Draw(dst, fonts, now)
	}
	text := v.Submit.Text
	if v.Form.Submitting() {
		v.Submit.Text = "Sending…"
	}
	v.Submit.Draw(dst, fonts, now)
	v.Submit.Text = text
	DrawBanner(dst, v.Form.Status(), fonts, v.x, v.bannerY, v.width)
}
