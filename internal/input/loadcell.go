package input

import (
	"context"
	"math"
	"sync/atomic"
	"time"
)

// LoadCell simulates the scale hardware. The gross load is set from outside
// (the device API), Tare requests are flagged by the engine, and Read takes
// one sample the way the periodic sampling interrupt would.
type LoadCell struct {
	out   *SampleCell
	gross atomic.Uint64
	tare  atomic.Bool

	// offset is only touched by the sampling side.
	offset float64
}

func NewLoadCell(out *SampleCell) *LoadCell {
	return &LoadCell{out: out}
}

// SetGross sets the total load on the plate in grams.
func (l *LoadCell) SetGross(grams float64) {
	l.gross.Store(math.Float64bits(grams))
}

// Gross returns the total load on the plate.
func (l *LoadCell) Gross() float64 {
	return math.Float64frombits(l.gross.Load())
}

// Tare asks the next sample to zero the scale.
func (l *LoadCell) Tare() { l.tare.Store(true) }

// Read samples the cell once and publishes the reading.
func (l *LoadCell) Read() {
	gross := l.Gross()
	if l.tare.Swap(false) {
		l.offset = gross
		l.out.Publish(Sample{Tared: true})
		return
	}
	l.out.Publish(Sample{Grams: gross - l.offset})
}

// Run samples every period until ctx is done.
func (l *LoadCell) Run(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Read()
		}
	}
}
