package service

import (
	"context"
	"errors"
	"fmt"

	"smartcloth/internal/input"
	"smartcloth/internal/logger"
)

// MaxGrossGrams is the capacity of the load cell.
const MaxGrossGrams = 5000.0

var errInvalidWeight = errors.New("invalid weight: must be between 0 and 5000 g")

// DeviceService feeds API calls into the same cells the hardware would write.
type DeviceService struct {
	buttons *input.ButtonCell
	scale   *input.LoadCell
	log     *logger.Logger
}

func NewDeviceService(buttons *input.ButtonCell, scale *input.LoadCell, log *logger.Logger) *DeviceService {
	return &DeviceService{buttons: buttons, scale: scale, log: logger.OrNop(log)}
}

// Press records a key press. A press that was not consumed yet is replaced.
func (s *DeviceService) Press(_ context.Context, p ButtonParams) error {
	b, err := input.ParseButton(p.Kind, p.ID)
	if err != nil {
		return err
	}
	if s.buttons.Pending() {
		s.log.Debugw("device_press_overwrites_pending", "button", b)
	}
	s.buttons.Press(b)
	s.log.Infow("device_press", "button", b)
	return nil
}

// SetScale sets the gross reading the load cell reports from now on.
func (s *DeviceService) SetScale(_ context.Context, p ScaleParams) error {
	if p.Grams < 0 || p.Grams > MaxGrossGrams {
		return fmt.Errorf("%w: %.1f", errInvalidWeight, p.Grams)
	}
	s.scale.SetGross(p.Grams)
	s.log.Debugw("device_scale", "grams", p.Grams)
	return nil
}

// IsInvalidInput reports whether err was caused by a bad device request.
func IsInvalidInput(err error) bool {
	return errors.Is(err, input.ErrInvalidButton) || errors.Is(err, errInvalidWeight)
}
