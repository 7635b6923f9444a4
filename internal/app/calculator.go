package app

import (
	"fmt"

	"github.com/bft-labs/rainwater/internal/domain"
	"github.com/bft-labs/rainwater/pkg/log"
	"github.com/bft-labs/rainwater/pkg/water"
)

// Result is the outcome of a single calculation.
type Result struct {
	Heights []int
	Volume  int
	Peak    int
	Basins  []water.Basin
}

// Option configures optional behavior of a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithVerify enables cross-checking every result against water.ReferenceVolume.
func WithVerify(verify bool) Option {
	return func(c *Calculator) {
		c.verify = verify
	}
}

// WithBasins enables listing the individual basins of every landscape.
func WithBasins(basins bool) Option {
	return func(c *Calculator) {
		c.basins = basins
	}
}

// Calculator computes trapped water volumes and reports on them.
type Calculator struct {
	logger log.Logger
	verify bool
	basins bool

	reference func([]int) int
}

// NewCalculator creates a Calculator with the given options applied.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		logger:    log.NewNoopLogger(),
		reference: water.ReferenceVolume,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate returns the volume of water trapped by heights.
// With verification enabled it returns domain.ErrVolumeMismatch if the
// reference computation disagrees.
func (c *Calculator) Calculate(heights []int) (Result, error) {
	res := Result{
		Heights: heights,
		Volume:  water.Volume(heights),
		Peak:    water.PeakIndex(heights),
	}
	c.logger.Debug("landscape",
		log.Ints("heights", heights),
		log.Int("peak", res.Peak),
	)

	if c.verify {
		if ref := c.reference(heights); ref != res.Volume {
			err := fmt.Errorf("%w: divide and conquer %d, reference %d", domain.ErrVolumeMismatch, res.Volume, ref)
			c.logger.Error("verification failed", log.Err(err))
			return Result{}, err
		}
		c.logger.Debug("verified against reference", log.Int("volume", res.Volume))
	}

	if c.basins {
		res.Basins = water.Basins(heights)
		for i, b := range res.Basins {
			c.logger.Debug("basin",
				log.Int("index", i),
				log.String("walls", b.Walls.String()),
				log.Int("volume", b.Volume),
			)
		}
		if span, ok := water.UsableSpan(heights); ok {
			c.logger.Debug("usable span", log.String("span", span.String()), log.Int("width", span.Width()))
		}
	}

	c.logger.Info("volume computed", log.Int("volume", res.Volume), log.Int("bars", len(heights)))
	return res, nil
}
