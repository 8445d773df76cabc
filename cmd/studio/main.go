// cmd/studio/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"studio-site/internal/auth"
	"studio-site/internal/config"
	"studio-site/internal/content"
	"studio-site/internal/event"
	"studio-site/internal/lifecycle"
	"studio-site/internal/relay"
	"studio-site/internal/router"
	"studio-site/internal/sprite"
	"studio-site/internal/state"
	"studio-site/internal/store"
	"studio-site/internal/utils"
	"studio-site/pkg/render"
)

type AppGame struct {
	shell          *state.Shell
	scheduler      *lifecycle.FrameScheduler
	dispatcher     *event.Dispatcher
	clock          utils.Clock
	lastUpdateTime time.Time
	width, height  int
	mounted        bool
}

func (a *AppGame) Update() error {
	now := a.clock.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.shell.Update(deltaTime)
	return nil
}

// Draw runs the queued frame callbacks, the way a browser does right before
// painting, then draws the site.
func (a *AppGame) Draw(screen *ebiten.Image) {
	a.scheduler.Run(a.clock.Now())
	a.shell.Draw(screen)
}

// Layout keeps the screen at the window's logical size and reports every
// change, with the monitor's scale factor, as a resize.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		scale := ebiten.Monitor().DeviceScaleFactor()
		if !a.mounted {
			a.shell.Mount(outsideWidth, outsideHeight, scale)
			a.mounted = true
		} else {
			a.dispatcher.Dispatch(event.Event{Type: event.Resized, Data: event.ResizePayload{
				Width: outsideWidth, Height: outsideHeight, Scale: scale,
			}})
		}
	}
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	startPath := flag.String("path", "", "page to open, e.g. /portfolio")
	maintenance := flag.Bool("maintenance", false, "show the maintenance page")
	seed := flag.Int64("seed", 0, "random seed, 0 for the current time")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.ApplyEnv(os.LookupEnv)
	if *startPath != "" {
		cfg.Site.StartPath = *startPath
	}
	if *maintenance {
		cfg.Site.Maintenance = true
	}

	site, err := content.Load(cfg.Site.ContentPath)
	if err != nil {
		log.Fatal(err)
	}
	fonts, err := render.LoadFonts()
	if err != nil {
		log.Fatal(err)
	}
	faces, err := sprite.LoadFaces(config.HeadingFontSize-4, config.RegularFontSize-1, config.SmallFontSize-1)
	if err != nil {
		log.Fatal(err)
	}

	clock := utils.SystemClock{}
	dispatcher := event.NewDispatcher()
	scheduler := lifecycle.NewFrameScheduler()
	history := router.NewHistory(dispatcher, cfg.Site.Maintenance)
	history.Navigate(cfg.Site.StartPath)

	var (
		authSvc *auth.Service
		archive relay.Archive
	)
	st, err := store.Open(cfg.Site.StorePath)
	if err != nil {
		log.Printf("studio: accounts and outbox disabled: %v", err)
	} else {
		defer st.Close()
		authSvc = auth.New(st, clock, 0)
		archive = st
	}
	sender := relay.New(cfg.Relay, archive, clock)

	shell := state.NewShell(&state.Services{
		Config:     cfg,
		Content:    site,
		Dispatcher: dispatcher,
		Scheduler:  scheduler,
		Clock:      clock,
		RNG:        utils.NewPRNGService(*seed),
		History:    history,
		Auth:       authSvc,
		Relay:      relay.NewAsync(sender, cfg.Relay.Timeout),
	}, fonts, render.NewCardCache(faces), render.NewOverlay())
	defer shell.Close()

	app := &AppGame{
		shell:          shell,
		scheduler:      scheduler,
		dispatcher:     dispatcher,
		clock:          clock,
		lastUpdateTime: clock.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	title := site.Studio.Name
	if title == "" {
		title = config.WindowTitle
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
