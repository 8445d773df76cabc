package cursor

import (
	"image"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"studio-site/internal/config"
	"studio-site/internal/event"
	"studio-site/internal/lifecycle"
	"studio-site/internal/palette"
	"studio-site/internal/pointer"
	"studio-site/internal/utils"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeSurface struct {
	ready  bool
	w, h   int
	fades  int
	splats []Layer
	clears int
}

func (s *fakeSurface) Ready() bool        { return s.ready }
func (s *fakeSurface) Size() (int, int)   { return s.w, s.h }
func (s *fakeSurface) Resize(w, h int)    { s.w, s.h = w, h }
func (s *fakeSurface) Fade(alpha float64) { s.fades++ }
func (s *fakeSurface) Splat(l Layer)      { s.splats = append(s.splats, l) }
func (s *fakeSurface) Clear()             { s.clears++ }

type fixture struct {
	surface    *fakeSurface
	dispatcher *event.Dispatcher
	scheduler  *lifecycle.FrameScheduler
	clock      *utils.MockClock
	cursor     *Component
}

func newFixture(cfg config.RenderConfig) *fixture {
	f := &fixture{
		surface:    &fakeSurface{ready: true},
		dispatcher: event.NewDispatcher(),
		scheduler:  lifecycle.NewFrameScheduler(),
		clock:      utils.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.cursor = NewComponent(cfg, f.surface, f.dispatcher, f.scheduler, f.clock, utils.NewPRNGService(7))
	return f
}

// frame advances the clock by d and runs one display frame.
func (f *fixture) frame(d time.Duration) {
	f.scheduler.Run(f.clock.Advance(d))
}

func (f *fixture) move(x, y float64) {
	f.dispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: event.PointerPayload{X: x, Y: y}})
}

func TestMountUnmountReleasesEverything(t *testing.T) {
	f := newFixture(config.DefaultRender())

	f.cursor.Mount(800, 600, 1)
	if got := f.dispatcher.Total(); got != 3 {
		t.Errorf("listeners while mounted = %d, want 3", got)
	}
	if got := f.scheduler.Pending(); got != 1 {
		t.Errorf("frames while mounted = %d, want 1", got)
	}

	f.cursor.Unmount()
	if got := f.dispatcher.Total(); got != 0 {
		t.Errorf("listeners after unmount = %d, want 0", got)
	}
	if got := f.scheduler.Pending(); got != 0 {
		t.Errorf("frames after unmount = %d, want 0", got)
	}
	if f.surface.clears != 1 {
		t.Errorf("surface cleared %d times, want 1", f.surface.clears)
	}

	// a second unmount must not release anything twice
	f.cursor.Unmount()
	if f.surface.clears != 1 {
		t.Errorf("double unmount cleared the surface again")
	}
}

func TestRemountKeepsOneLoop(t *testing.T) {
	f := newFixture(config.DefaultRender())
	for i := 0; i < 3; i++ {
		f.cursor.Mount(800, 600, 1)
	}
	if got := f.dispatcher.Total(); got != 3 {
		t.Errorf("listeners = %d, want 3", got)
	}
	if got := f.scheduler.Pending(); got != 1 {
		t.Errorf("pending frames = %d, want 1", got)
	}
	for i := 0; i < 5; i++ {
		f.frame(20 * time.Millisecond)
		if got := f.scheduler.Pending(); got != 1 {
			t.Fatalf("pending frames after frame %d = %d, want 1", i, got)
		}
	}
}

func TestNoFramesAfterUnmount(t *testing.T) {
	f := newFixture(config.DefaultRender())
	f.cursor.Mount(800, 600, 1)
	f.frame(20 * time.Millisecond)
	fades := f.surface.fades

	f.cursor.Unmount()
	f.move(100, 100)
	f.frame(20 * time.Millisecond)
	f.frame(20 * time.Millisecond)
	if f.surface.fades != fades || len(f.surface.splats) != 0 {
		t.Errorf("surface drawn after unmount: fades %d -> %d, splats %d",
			fades, f.surface.fades, len(f.surface.splats))
	}
}

func TestSplatOnlyAfterMovement(t *testing.T) {
	f := newFixture(config.DefaultRender())
	f.cursor.Mount(800, 600, 1)

	f.frame(20 * time.Millisecond)
	if f.surface.fades != 1 || len(f.surface.splats) != 0 {
		t.Fatalf("first idle frame: fades %d splats %d, want 1 and 0", f.surface.fades, len(f.surface.splats))
	}

	f.move(400, 300)
	if got := f.cursor.Renderer().State(); got != Painting {
		t.Fatalf("state after move = %v, want painting", got)
	}
	f.frame(20 * time.Millisecond)
	if len(f.surface.splats) != 4 {
		t.Fatalf("splat layers = %d, want 4", len(f.surface.splats))
	}
	if got := f.cursor.Renderer().State(); got != Idle {
		t.Errorf("state after paint = %v, want idle", got)
	}

	f.frame(20 * time.Millisecond)
	if f.surface.fades != 3 {
		t.Errorf("fades = %d, want 3", f.surface.fades)
	}
	if len(f.surface.splats) != 4 {
		t.Errorf("idle frame drew a splat: %d layers", len(f.surface.splats))
	}
	if r := f.cursor.Renderer(); r.Frames() != 3 || r.Splats() != 1 {
		t.Errorf("frames/splats = %d/%d, want 3/1", r.Frames(), r.Splats())
	}
}

func TestSplatAtPointerInDevicePixels(t *testing.T) {
	cfg := config.DefaultRender()
	cfg.RadiusJitter = 0
	cfg.PulseAmount = 0
	cfg.SpeedScaleMax = 1
	f := newFixture(cfg)
	f.cursor.Mount(400, 300, 2)

	if f.surface.w != 800 || f.surface.h != 600 {
		t.Fatalf("surface = %dx%d, want 800x600", f.surface.w, f.surface.h)
	}
	f.move(100, 150)
	f.frame(20 * time.Millisecond)

	var body *Layer
	for i := range f.surface.splats {
		if f.surface.splats[i].Kind == Body {
			body = &f.surface.splats[i]
		}
	}
	if body == nil {
		t.Fatal("no body layer drawn")
	}
	if body.X != 200 || body.Y != 300 {
		t.Errorf("body at (%v, %v), want (200, 300)", body.X, body.Y)
	}
	// 80 * 0.5 logical pixels at scale 2
	if body.Radius != 80 {
		t.Errorf("body radius = %v, want 80", body.Radius)
	}
}

func TestThrottle(t *testing.T) {
	f := newFixture(config.DefaultRender())
	f.cursor.Mount(800, 600, 1)

	f.frame(time.Millisecond)
	for i := 0; i < 3; i++ {
		f.frame(5 * time.Millisecond)
	}
	if f.surface.fades != 1 {
		t.Errorf("fades within one interval = %d, want 1", f.surface.fades)
	}
	// 15ms + 5ms passes the 16.6ms cap
	f.frame(5 * time.Millisecond)
	if f.surface.fades != 2 {
		t.Errorf("fades after the interval = %d, want 2", f.surface.fades)
	}
	if got := f.scheduler.Pending(); got != 1 {
		t.Errorf("throttled frames must keep one request, got %d", got)
	}
}

func TestThrottleCarriesRemainder(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := config.DefaultRender()
	cfg.FPSCap = 50 // 20ms
	r := &Renderer{cfg: cfg}

	if !r.due(start) {
		t.Fatal("first frame not due")
	}
	if !r.due(start.Add(25 * time.Millisecond)) {
		t.Fatal("frame at 25ms not due")
	}
	// last paint is anchored at 20ms, so 40ms is due again
	if !r.due(start.Add(40 * time.Millisecond)) {
		t.Error("remainder was not carried")
	}
	if r.due(start.Add(59 * time.Millisecond)) {
		t.Error("frame at 59ms painted inside the interval")
	}
}

func TestSurfaceUnavailableKeepsScheduling(t *testing.T) {
	f := newFixture(config.DefaultRender())
	f.surface.ready = false
	f.cursor.Mount(800, 600, 1)
	f.move(10, 10)

	for i := 0; i < 3; i++ {
		f.frame(20 * time.Millisecond)
	}
	if f.surface.fades != 0 || len(f.surface.splats) != 0 {
		t.Fatalf("drew on an unavailable surface")
	}
	if got := f.scheduler.Pending(); got != 1 {
		t.Fatalf("pending frames = %d, want 1", got)
	}

	f.surface.ready = true
	f.frame(20 * time.Millisecond)
	if f.surface.fades != 1 || len(f.surface.splats) == 0 {
		t.Errorf("did not recover once ready: fades %d splats %d", f.surface.fades, len(f.surface.splats))
	}
}

func TestPausedDrawsNothing(t *testing.T) {
	cfg := config.DefaultRender()
	cfg.Paused = true
	f := newFixture(cfg)
	f.cursor.Mount(800, 600, 1)
	f.move(10, 10)
	f.frame(20 * time.Millisecond)
	if f.surface.fades != 0 || len(f.surface.splats) != 0 {
		t.Error("paused renderer painted")
	}
	if f.scheduler.Pending() != 1 {
		t.Error("paused renderer stopped scheduling")
	}
}

func (f *fixture) touch(x, y float64) bool {
	consumed := false
	f.dispatcher.Dispatch(event.Event{
		Type: event.TouchMoved,
		Data: event.PointerPayload{X: x, Y: y, Consumed: &consumed},
	})
	return consumed
}

func TestTouchConsumption(t *testing.T) {
	f := newFixture(config.DefaultRender())
	f.cursor.Mount(800, 600, 1)

	for _, p := range [][2]float64{{1, 1}, {400, 300}, {799, 599}} {
		if f.touch(p[0], p[1]) {
			t.Errorf("touch at %v consumed with no capture region", p)
		}
	}

	f.cursor.SetCapture(image.Rect(0, 0, 800, 200))
	if !f.touch(100, 100) {
		t.Error("touch inside the capture region was not consumed")
	}
	if f.touch(100, 400) {
		t.Error("touch below the capture region was consumed")
	}

	f.cursor.Mount(800, 600, 1)
	if !f.touch(100, 100) {
		t.Error("capture region lost on remount")
	}
}

func TestTouchDragScrollsOutsideCapture(t *testing.T) {
	f := newFixture(config.DefaultRender())
	f.cursor.SetCapture(image.Rect(0, 0, 800, 200))
	f.cursor.Mount(800, 600, 1)

	var drag pointer.Drag
	scroll := 0.0
	for _, y := range []float64{550, 500, 450, 420} {
		scroll += drag.Touch(y, f.touch(400, y))
	}
	if scroll != 130 {
		t.Errorf("drag below the hero scrolled %v, want 130", scroll)
	}

	drag.Release()
	scroll = 0
	for _, y := range []float64{180, 120, 60} {
		scroll += drag.Touch(y, f.touch(400, y))
	}
	if scroll != 0 {
		t.Errorf("drag inside the hero scrolled %v", scroll)
	}
}

func TestPausedIgnoresTouches(t *testing.T) {
	cfg := config.DefaultRender()
	cfg.Paused = true
	f := newFixture(cfg)
	f.cursor.SetCapture(image.Rect(0, 0, 800, 600))
	f.cursor.Mount(800, 600, 1)
	if f.touch(100, 100) {
		t.Error("paused cursor consumed a touch")
	}
}

func TestResizeEvent(t *testing.T) {
	f := newFixture(config.DefaultRender())
	f.cursor.Mount(800, 600, 1)
	f.dispatcher.Dispatch(event.Event{Type: event.Resized, Data: event.ResizePayload{Width: 1000, Height: 500, Scale: 1.5}})
	if f.surface.w != 1500 || f.surface.h != 750 {
		t.Errorf("surface = %dx%d, want 1500x750", f.surface.w, f.surface.h)
	}
}

func TestCompose(t *testing.T) {
	cfg := config.DefaultRender()
	cur := palette.RGB{R: 255, G: 10, B: 10}
	prev := palette.RGB{R: 10, G: 10, B: 255}

	layers := Compose(100, 50, 40, cur, prev, cfg)
	var kinds []LayerKind
	var radii []float64
	for _, l := range layers {
		kinds = append(kinds, l.Kind)
		radii = append(radii, l.Radius)
	}
	if diff := cmp.Diff([]LayerKind{Glow, Body, Core, Shine}, kinds); diff != "" {
		t.Errorf("layer order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{60, 40, 28, 12}, radii, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("radii (-want +got):\n%s", diff)
	}

	body := layers[1]
	if body.Stops[0].Color != cur || body.Stops[1].Color != prev || body.Stops[1].Offset != 0.4 {
		t.Errorf("body gradient = %+v", body.Stops)
	}
	if last := body.Stops[len(body.Stops)-1]; last.Alpha != 0 {
		t.Errorf("body does not fade out: %+v", last)
	}
	if shine := layers[3]; shine.X != 96 || shine.Y != 46 {
		t.Errorf("highlight at (%v, %v), want (96, 46)", shine.X, shine.Y)
	}

	cfg.OuterGlow, cfg.InnerGlow, cfg.Highlight = false, false, 0
	if got := Compose(0, 0, 10, cur, prev, cfg); len(got) != 1 || got[0].Kind != Body {
		t.Errorf("disabled extras still drawn: %+v", got)
	}
}

func TestLayerGradient(t *testing.T) {
	red := palette.RGB{R: 255}
	blue := palette.RGB{B: 255}

	three := Layer{Stops: []Stop{
		{Offset: 0, Color: red, Alpha: 1},
		{Offset: 0.4, Color: blue, Alpha: 0.5},
		{Offset: 1, Color: blue, Alpha: 0},
	}}
	colors, offsets := three.Gradient()
	if diff := cmp.Diff([3]float32{0, 0.4, 1}, offsets); diff != "" {
		t.Errorf("offsets (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([4]float32{0, 0, 0.5, 0.5}, colors[1]); diff != "" {
		t.Errorf("middle stop not premultiplied (-want +got):\n%s", diff)
	}

	two := Layer{Stops: []Stop{{Offset: 0, Color: red, Alpha: 1}, {Offset: 1, Color: red, Alpha: 0}}}
	colors, offsets = two.Gradient()
	if offsets != [3]float32{0, 1, 1} || colors[2] != colors[1] {
		t.Errorf("two stops packed as %v %v", colors, offsets)
	}

	if _, offsets := (Layer{}).Gradient(); offsets != [3]float32{0, 1, 1} {
		t.Errorf("empty layer offsets = %v", offsets)
	}
}
