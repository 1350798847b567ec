package engine

import "time"

// Config holds the engine's delays and the budgets it grants to blocking
// collaborator calls.
type Config struct {
	ConfirmTimeout        time.Duration // add/delete/save confirmation
	BarcodeConfirmTimeout time.Duration
	ErrorTimeout          time.Duration
	CancelTimeout         time.Duration
	WarningTimeout        time.Duration
	DeleteLogTimeout      time.Duration
	DeleteLogDoneDelay    time.Duration
	SavedReturnDelay      time.Duration
	UploadResultDelay     time.Duration

	ConnectivityTimeout time.Duration
	ReadTimeout         time.Duration
	LookupTimeout       time.Duration
	SaveTimeout         time.Duration
}

// DefaultConfig returns the delays used by the device.
func DefaultConfig() Config {
	return Config{
		ConfirmTimeout:        15 * time.Second,
		BarcodeConfirmTimeout: 20 * time.Second,
		ErrorTimeout:          3 * time.Second,
		CancelTimeout:         1 * time.Second,
		WarningTimeout:        3 * time.Second,
		DeleteLogTimeout:      5 * time.Second,
		DeleteLogDoneDelay:    2 * time.Second,
		SavedReturnDelay:      3 * time.Second,
		UploadResultDelay:     3 * time.Second,

		ConnectivityTimeout: 3 * time.Second,
		ReadTimeout:         5500 * time.Millisecond,
		LookupTimeout:       15 * time.Second,
		SaveTimeout:         30 * time.Second,
	}
}

// withDefaults fills zero durations from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	fill := func(v *time.Duration, def time.Duration) {
		if *v <= 0 {
			*v = def
		}
	}
	fill(&c.ConfirmTimeout, d.ConfirmTimeout)
	fill(&c.BarcodeConfirmTimeout, d.BarcodeConfirmTimeout)
	fill(&c.ErrorTimeout, d.ErrorTimeout)
	fill(&c.CancelTimeout, d.CancelTimeout)
	fill(&c.WarningTimeout, d.WarningTimeout)
	fill(&c.DeleteLogTimeout, d.DeleteLogTimeout)
	fill(&c.DeleteLogDoneDelay, d.DeleteLogDoneDelay)
	fill(&c.SavedReturnDelay, d.SavedReturnDelay)
	fill(&c.UploadResultDelay, d.UploadResultDelay)
	fill(&c.ConnectivityTimeout, d.ConnectivityTimeout)
	fill(&c.ReadTimeout, d.ReadTimeout)
	fill(&c.LookupTimeout, d.LookupTimeout)
	fill(&c.SaveTimeout, d.SaveTimeout)
	return c
}
