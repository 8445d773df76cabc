package palette

import (
	"time"

	"studio-site/internal/config"
	"studio-site/internal/utils"
)

// BaseHues is the fixed list of hue buckets the cycler rotates through.
var BaseHues = []float64{
	0, 30, 60, 120, 180, 240, 300, 330,
	15, 45, 75, 105, 135, 165, 195, 225, 255, 285, 315, 345,
}

// Cycler produces the evolving trail color. It is owned by one cursor
// instance and is not safe for concurrent use.
type Cycler struct {
	cfg        config.RenderConfig
	rng        *utils.PRNGService
	hueIndex   int
	hueOffset  float64
	lastBucket time.Time
}

// NewCycler starts at a random bucket with a random offset within half the
// configured offset range.
func NewCycler(cfg config.RenderConfig, rng *utils.PRNGService, now time.Time) *Cycler {
	half := cfg.HueOffsetRange / 2
	return &Cycler{
		cfg:        cfg,
		rng:        rng,
		hueIndex:   rng.Intn(len(BaseHues)),
		hueOffset:  rng.Range(-half, half),
		lastBucket: now,
	}
}

// Tick jumps to a new bucket once BucketInterval has elapsed. It reports
// whether the bucket changed.
func (c *Cycler) Tick(now time.Time) bool {
	if now.Sub(c.lastBucket) <= c.cfg.BucketInterval {
		return false
	}
	c.hueIndex = (c.hueIndex + 1 + c.rng.Intn(3)) % len(BaseHues)
	c.lastBucket = now
	return true
}

// Hue returns the current hue in [0,360) after applying a small random
// drift to the offset.
func (c *Cycler) Hue(now time.Time) float64 {
	c.Tick(now)
	j := c.cfg.HueJitter
	c.hueOffset = utils.WrapRange(c.hueOffset+c.rng.Range(-j, j), c.cfg.HueOffsetRange)
	return utils.NormalizeDegrees(BaseHues[c.hueIndex] + c.hueOffset)
}

// Next returns a fresh color from the current bucket.
func (c *Cycler) Next(now time.Time) RGB {
	return HueToRGB(c.Hue(now), c.cfg.Saturation, c.cfg.Value, c.cfg.ColorIntensity)
}

// Advance is called on frames with movement. With probability
// ColorChangeChance it shifts cur into prev and draws a new cur; otherwise
// both are left untouched so the color does not flicker.
func (c *Cycler) Advance(now time.Time, cur, prev *RGB) bool {
	if !c.rng.Chance(c.cfg.ColorChangeChance) {
		return false
	}
	*prev = *cur
	*cur = c.Next(now)
	return true
}

// Bucket returns the index of the current base hue.
func (c *Cycler) Bucket() int { return c.hueIndex }
