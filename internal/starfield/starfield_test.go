package starfield

import (
	"math"
	"testing"

	"studio-site/internal/config"
	"studio-site/internal/palette"
	"studio-site/internal/utils"
)

func smallConfig() config.StarfieldConfig {
	cfg := config.DefaultStarfield()
	cfg.StarsPerLayer = 400
	cfg.Seed = 3
	return cfg
}

func TestStarsOnShell(t *testing.T) {
	cfg := smallConfig()
	f := New(cfg, 60, utils.NewPRNGService(11))

	if got := len(f.Layers()); got != cfg.Layers {
		t.Fatalf("layers = %d, want %d", got, cfg.Layers)
	}
	for _, l := range f.Layers() {
		if len(l.Stars) != cfg.StarsPerLayer {
			t.Fatalf("layer %d has %d stars", l.Depth, len(l.Stars))
		}
		for _, s := range l.Stars {
			r := math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
			if r < cfg.MinRadius-1e-6 || r > cfg.MaxRadius+1e-6 {
				t.Fatalf("star at radius %v outside [%v,%v]", r, cfg.MinRadius, cfg.MaxRadius)
			}
			if s.Size < 0.5 || s.Size >= 2.5 {
				t.Fatalf("star size %v outside [0.5,2.5)", s.Size)
			}
		}
	}
}

func TestStarTintMix(t *testing.T) {
	rng := utils.NewPRNGService(5)
	const n = 5000
	grey := 0
	for i := 0; i < n; i++ {
		c := starColor(rng)
		if c.R == c.G && c.G == c.B {
			grey++
		}
	}
	ratio := float64(grey) / n
	if ratio < 0.66 || ratio > 0.74 {
		t.Errorf("white share = %.3f, want about 0.7", ratio)
	}
}

func TestDeeperLayersTurnSlower(t *testing.T) {
	near := Layer{Depth: 0}.Angle(10, 0.05, 0.3)
	far := Layer{Depth: 2}.Angle(10, 0.05, 0.3)
	if math.Abs(near-0.5) > 1e-12 {
		t.Errorf("depth 0 angle = %v, want 0.5", near)
	}
	if far >= near {
		t.Errorf("depth 2 angle %v not slower than %v", far, near)
	}
}

func TestProjectStaysOnScreen(t *testing.T) {
	f := New(smallConfig(), 60, utils.NewPRNGService(1))
	const w, h = 1280.0, 800.0
	pts := f.Project(12.5, w, h, nil)
	if len(pts) == 0 {
		t.Fatal("no stars projected")
	}
	for _, p := range pts {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			t.Fatalf("point %+v off screen", p)
		}
		if p.Radius < 0.5 || math.IsNaN(p.Radius) {
			t.Fatalf("bad radius %v", p.Radius)
		}
	}
	// buffers are reused by the renderer
	again := f.Project(12.5, w, h, pts[:0])
	if len(again) != len(pts) {
		t.Errorf("reprojection gave %d points, want %d", len(again), len(pts))
	}
}

func TestNearStarsAreBigger(t *testing.T) {
	cfg := smallConfig()
	cfg.Layers = 1
	cfg.StarsPerLayer = 0
	f := New(cfg, 60, utils.NewPRNGService(1))
	f.layers[0].Stars = []Star{
		{X: 0, Y: 0, Z: 900, Size: 1, Color: palette.RGB{R: 255, G: 255, B: 255}},
		{X: 0, Y: 0, Z: -900, Size: 1, Color: palette.RGB{R: 255, G: 255, B: 255}},
	}
	pts := f.Project(0, 1000, 1000, nil)
	if len(pts) != 2 {
		t.Fatalf("projected %d stars, want 2", len(pts))
	}
	if pts[0].Radius <= pts[1].Radius {
		t.Errorf("near radius %v not above far radius %v", pts[0].Radius, pts[1].Radius)
	}
}

func TestCameraSettlesOnTarget(t *testing.T) {
	c := NewCamera(60, 2, 0.9, 60)
	c.Aim(1, 0)
	for i := 0; i < 600; i++ {
		c.Step()
	}
	tx, ty := c.Target()
	if tx != 30 || ty != -30 {
		t.Fatalf("target = (%v, %v), want (30, -30)", tx, ty)
	}
	if math.Abs(c.x-tx) > 0.01 || math.Abs(c.y-ty) > 0.01 {
		t.Errorf("camera at (%v, %v) did not settle on (%v, %v)", c.x, c.y, tx, ty)
	}
}

func TestRidges(t *testing.T) {
	ridges := newRidges(6, 42)
	if len(ridges) != 6 {
		t.Fatalf("got %d ridges", len(ridges))
	}
	for _, r := range ridges {
		if len(r.Heights) != ridgeSegments+1 {
			t.Fatalf("ridge %d has %d heights", r.Index, len(r.Heights))
		}
		for _, h := range r.Heights {
			if math.IsNaN(h) || math.IsInf(h, 0) {
				t.Fatalf("ridge %d has height %v", r.Index, h)
			}
		}
	}
	// same seed, same silhouette
	again := newRidges(6, 42)
	for i := range ridges {
		for j := range ridges[i].Heights {
			if ridges[i].Heights[j] != again[i].Heights[j] {
				t.Fatalf("ridge %d differs at %d", i, j)
			}
		}
	}

	out := ridges[0].Outline(0, 1000, 800)
	if out[0].X >= out[len(out)-1].X {
		t.Errorf("outline not left to right: %v .. %v", out[0].X, out[len(out)-1].X)
	}

	dx0, _ := ridges[0].Offset(5)
	dx3, _ := ridges[3].Offset(5)
	if math.Abs(dx3) <= math.Abs(dx0) {
		t.Errorf("far ridge drift %v not above near drift %v", dx3, dx0)
	}
}
