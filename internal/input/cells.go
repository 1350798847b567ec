package input

import (
	"sync/atomic"
)

// ButtonCell holds the last button pressed until the polling loop takes it.
// Writers overwrite an untaken press.
type ButtonCell struct {
	v atomic.Int32
}

// Press records b. ButtonNone is ignored.
func (c *ButtonCell) Press(b Button) {
	if b == ButtonNone {
		return
	}
	c.v.Store(int32(b))
}

// Take returns the pending press and clears the cell.
func (c *ButtonCell) Take() (Button, bool) {
	b := Button(c.v.Swap(0))
	return b, b != ButtonNone
}

// Pending reports whether a press is waiting, without taking it.
func (c *ButtonCell) Pending() bool { return c.v.Load() != 0 }

// Sample is one reading of the load cell, relative to the last tare.
type Sample struct {
	Grams float64 `json:"grams"`
	// Tared marks the first reading after a tare.
	Tared bool `json:"tared,omitempty"`
}

// SampleCell holds the newest load-cell sample until the loop takes it.
type SampleCell struct {
	v atomic.Pointer[Sample]
}

// Publish replaces the pending sample. A pending tare sample is kept so the
// tare completion is never lost.
func (c *SampleCell) Publish(s Sample) {
	for {
		old := c.v.Load()
		if old != nil && old.Tared && !s.Tared {
			s.Tared = true
		}
		if c.v.CompareAndSwap(old, &s) {
			return
		}
	}
}

// Take returns the pending sample and clears the cell.
func (c *SampleCell) Take() (Sample, bool) {
	p := c.v.Swap(nil)
	if p == nil {
		return Sample{}, false
	}
	return *p, true
}
