package utils

import (
	"math"
	"testing"
	"time"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{720, 0},
		{-90, 270},
		{-360, 0},
		{450, 90},
		{359.5, 359.5},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		got := NormalizeDegrees(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeDegrees(%v) = %v, out of [0,360)", tt.in, got)
		}
	}
}

func TestWrapRange(t *testing.T) {
	if got := WrapRange(61, 60); got != 1 {
		t.Errorf("WrapRange(61, 60) = %v, want 1", got)
	}
	if got := WrapRange(-61, 60); got != -1 {
		t.Errorf("WrapRange(-61, 60) = %v, want -1", got)
	}
	if got := WrapRange(5, 0); got != 0 {
		t.Errorf("WrapRange(5, 0) = %v, want 0", got)
	}
}

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("step %d: %v != %v", i, x, y)
		}
	}
}

func TestPRNGRange(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := s.Range(-30, 30)
		if v < -30 || v >= 30 {
			t.Fatalf("Range(-30, 30) = %v", v)
		}
	}
}

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(1)
	if got := s.ChooseWeighted(nil); got != -1 {
		t.Errorf("ChooseWeighted(nil) = %d, want -1", got)
	}
	if got := s.ChooseWeighted([]float64{0, 0}); got != 0 {
		t.Errorf("ChooseWeighted(zero weights) = %d, want 0", got)
	}
	for i := 0; i < 200; i++ {
		if got := s.ChooseWeighted([]float64{0, 1, 0}); got != 1 {
			t.Fatalf("ChooseWeighted picked zero-weight index %d", got)
		}
	}
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMockClock(start)
	if !c.Now().Equal(start) {
		t.Fatalf("Now = %v, want %v", c.Now(), start)
	}
	got := c.Advance(250 * time.Millisecond)
	if want := start.Add(250 * time.Millisecond); !got.Equal(want) || !c.Now().Equal(want) {
		t.Errorf("Advance = %v, want %v", got, want)
	}
}

func TestLemniscate(t *testing.T) {
	tests := []struct {
		t, wantX, wantY float64
	}{
		{0, 10, 0},
		{math.Pi / 2, 0, 0},
		{math.Pi, -10, 0},
	}
	for _, tt := range tests {
		x, y := Lemniscate(tt.t, 10)
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Errorf("Lemniscate(%g) = (%g, %g), want (%g, %g)", tt.t, x, y, tt.wantX, tt.wantY)
		}
	}
	for i := 0; i < 64; i++ {
		x, y := Lemniscate(float64(i)*0.1, 10)
		if math.Abs(x) > 10 || math.Abs(y) > 10 {
			t.Fatalf("point (%g, %g) outside the curve's box", x, y)
		}
	}
}
