package engine

import (
	"context"
	"errors"
)

// enterBarcodeReading blocks on the reader until a code arrives, the read
// times out or a button is pressed. An interrupting press stays pending and
// is stepped on the next tick.
func (e *Engine) enterBarcodeReading(ctx context.Context) {
	e.show(ScreenBarcodeReading)
	if err := e.checkConnectivity(ctx); err != nil {
		e.raise(EvWarnNoConnectivity)
		return
	}

	rctx, cancel := context.WithTimeout(ctx, e.cfg.ReadTimeout)
	defer cancel()
	code, err := e.network.ReadBarcode(rctx, e.inputs.ButtonPending)
	switch {
	case err == nil:
		e.barcode = code
		e.log.Infow("engine_barcode_read", "barcode", code)
		e.raise(EvBarcodeRead)
	case errors.Is(err, ErrInterrupted):
		e.log.Debugw("engine_barcode_interrupted")
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		e.raise(EvWarnNetworkTimeout)
	case errors.Is(err, ErrNoConnectivity):
		e.raise(EvWarnNoConnectivity)
	default:
		e.raise(EvWarnBarcodeNotRead)
	}
}

func (e *Engine) enterBarcodeSearching(ctx context.Context) {
	e.show(ScreenBarcodeSearching)

	lctx, cancel := context.WithTimeout(ctx, e.cfg.LookupTimeout)
	defer cancel()
	p, err := e.network.LookupProduct(lctx, e.barcode)

	var httpErr *HTTPError
	switch {
	case err == nil:
		e.product = &p
		e.raise(EvProductFound)
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		e.raise(EvWarnNetworkTimeout)
	case errors.Is(err, ErrNoConnectivity):
		e.raise(EvWarnNoConnectivity)
	case errors.Is(err, ErrNotFound), errors.As(err, &httpErr):
		e.raise(EvWarnProductNotFound)
	default:
		e.log.Warnw("engine_lookup_failed", "barcode", e.barcode, "error", err)
		e.raise(EvWarnProductNotFound)
	}
}

func (e *Engine) enterBarcodeConfirm(context.Context) {
	e.show(ScreenProduct)
	e.timers.arm(e.clock.Now(), e.cfg.BarcodeConfirmTimeout, EvCancel)
}
