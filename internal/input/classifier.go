package input

import (
	"math"

	"smartcloth/internal/engine"
)

const (
	DefaultThreshold   = 5.0
	DefaultReleaseBand = 20.0
)

// Classifier turns consecutive load-cell samples into scale events.
type Classifier struct {
	threshold float64
	band      float64
	last      float64
}

// NewClassifier ignores changes smaller than threshold grams and reports a
// release when the reading comes within band grams of everything tared away.
// Non-positive values take the defaults.
func NewClassifier(threshold, band float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if band <= 0 {
		band = DefaultReleaseBand
	}
	return &Classifier{threshold: threshold, band: band}
}

// Classify compares s with the previous sample. toRemove is the weight
// whose removal means the scale was cleared.
func (c *Classifier) Classify(s Sample, toRemove float64) (engine.Signal, bool) {
	if s.Tared {
		c.last = 0
		return engine.Signal{Event: engine.EvScaleTare}, true
	}

	last := c.last
	c.last = s.Grams
	if math.Abs(s.Grams-last) < c.threshold {
		return engine.Signal{}, false
	}

	sig := engine.Signal{Weight: s.Grams}
	switch {
	case s.Grams > last:
		sig.Event = engine.EvScaleIncrement
	case math.Abs(math.Abs(s.Grams)-toRemove) < c.band:
		sig.Event = engine.EvScaleRelease
	default:
		sig.Event = engine.EvScaleDecrement
	}
	return sig, true
}
