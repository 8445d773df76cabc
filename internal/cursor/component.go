package cursor

import (
	"image"
	"log"
	"math"
	"time"

	"studio-site/internal/config"
	"studio-site/internal/event"
	"studio-site/internal/lifecycle"
	"studio-site/internal/palette"
	"studio-site/internal/pointer"
	"studio-site/internal/utils"
)

// Component is the mountable fluid cursor. All per-mount state (tracker,
// color cycler, renderer, listeners, frame request) is created by Mount and
// released by Unmount.
type Component struct {
	cfg        config.RenderConfig
	surface    Surface
	dispatcher *event.Dispatcher
	scheduler  *lifecycle.FrameScheduler
	clock      utils.Clock
	rng        *utils.PRNGService

	scope    *lifecycle.Scope
	loop     *lifecycle.Loop
	tracker  *pointer.Tracker
	renderer *Renderer
	capture  image.Rectangle
}

func NewComponent(cfg config.RenderConfig, surface Surface, dispatcher *event.Dispatcher,
	scheduler *lifecycle.FrameScheduler, clock utils.Clock, rng *utils.PRNGService) *Component {
	return &Component{
		cfg:        cfg,
		surface:    surface,
		dispatcher: dispatcher,
		scheduler:  scheduler,
		clock:      clock,
		rng:        rng,
	}
}

// Mount sizes the surface to the viewport, registers the pointer, touch and
// resize listeners and starts the render loop. Mounting a mounted component
// unmounts it first.
func (c *Component) Mount(width, height int, scale float64) {
	if c.Mounted() {
		c.Unmount()
	}
	now := c.clock.Now()
	cycler := palette.NewCycler(c.cfg, c.rng, now)
	c.tracker = pointer.NewTracker(cycler.Next(now))
	c.tracker.SetActive(!c.cfg.Paused)
	c.tracker.SetCapture(c.capture)
	c.renderer = NewRenderer(c.cfg, c.surface, c.tracker, cycler, c.rng, now)
	c.scope = lifecycle.NewScope()

	c.resize(width, height, scale)

	c.scope.Subscribe(c.dispatcher, event.PointerMoved, event.ListenerFunc(c.onPointer))
	c.scope.Subscribe(c.dispatcher, event.TouchMoved, event.ListenerFunc(c.onTouch))
	c.scope.Subscribe(c.dispatcher, event.Resized, event.ListenerFunc(c.onResize))

	c.loop = lifecycle.NewLoop(c.scheduler, c.frame)
	c.loop.Start()
	c.scope.Defer(c.loop.Stop)
	c.scope.Defer(c.surface.Clear)

	log.Printf("cursor: mounted %dx%d scale %.2f", width, height, scale)
}

// Unmount cancels the outstanding frame and removes every listener. It is
// safe to call on an unmounted component.
func (c *Component) Unmount() {
	if !c.Mounted() {
		return
	}
	c.scope.Close()
	c.scope = nil
	c.loop = nil
	c.renderer = nil
	c.tracker = nil
	log.Printf("cursor: unmounted")
}

func (c *Component) Mounted() bool { return c.scope != nil }

// SetCapture sets the region, in logical pixels, where touches drive the
// cursor instead of scrolling the page. It survives remounts.
func (c *Component) SetCapture(r image.Rectangle) {
	c.capture = r
	if c.tracker != nil {
		c.tracker.SetCapture(r)
	}
}

// Renderer returns the live renderer, or nil when unmounted.
func (c *Component) Renderer() *Renderer { return c.renderer }

func (c *Component) frame(now time.Time) {
	c.renderer.Tick(now)
}

func (c *Component) onPointer(e event.Event) {
	if p, ok := e.Data.(event.PointerPayload); ok {
		c.tracker.Move(p.X, p.Y)
	}
}

func (c *Component) onTouch(e event.Event) {
	p, ok := e.Data.(event.PointerPayload)
	if !ok {
		return
	}
	if c.tracker.Touch(p.X, p.Y) && p.Consumed != nil {
		*p.Consumed = true
	}
}

func (c *Component) onResize(e event.Event) {
	if p, ok := e.Data.(event.ResizePayload); ok {
		c.resize(p.Width, p.Height, p.Scale)
	}
}

// resize keeps the tracker in logical pixels and the surface in device
// pixels.
func (c *Component) resize(width, height int, scale float64) {
	if scale <= 0 || math.IsNaN(scale) {
		scale = 1
	}
	c.tracker.Resize(0, 0, float64(width), float64(height))
	c.renderer.SetScale(scale)
	c.surface.Resize(int(math.Ceil(float64(width)*scale)), int(math.Ceil(float64(height)*scale)))
}
