package input

import (
	"smartcloth/internal/engine"
	"smartcloth/internal/logger"
)

// Source drains the input cells for the engine, the scale before the
// buttons, one signal per call.
type Source struct {
	buttons    *ButtonCell
	samples    *SampleCell
	classifier *Classifier
	log        *logger.Logger
}

func NewSource(buttons *ButtonCell, samples *SampleCell, classifier *Classifier, log *logger.Logger) *Source {
	return &Source{
		buttons:    buttons,
		samples:    samples,
		classifier: classifier,
		log:        logger.OrNop(log),
	}
}

// Next implements engine.Inputs.
func (s *Source) Next(toRemove float64) (engine.Signal, bool) {
	if smp, ok := s.samples.Take(); ok {
		if sig, ok := s.classifier.Classify(smp, toRemove); ok {
			s.log.Debugw("input_scale_event", "event", sig.Event, "grams", sig.Weight, "to_remove", toRemove)
			return sig, true
		}
	}
	if b, ok := s.buttons.Take(); ok {
		sig, ok := b.Signal()
		if !ok {
			s.log.Warnw("input_unknown_button", "button", int(b))
			return engine.Signal{}, false
		}
		s.log.Debugw("input_button", "button", b.String(), "event", sig.Event)
		return sig, true
	}
	return engine.Signal{}, false
}

// ButtonPending implements engine.Inputs.
func (s *Source) ButtonPending() bool { return s.buttons.Pending() }
