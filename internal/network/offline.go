package network

import (
	"context"

	"smartcloth/internal/engine"
	"smartcloth/internal/models"
)

// Offline stands in for a device without a network module. Every call
// reports no connectivity, so saves stay local.
type Offline struct{}

var _ engine.Network = Offline{}

func (Offline) Ping(context.Context) error { return engine.ErrNoConnectivity }

func (Offline) CheckConnectivity(context.Context) error { return engine.ErrNoConnectivity }

func (Offline) ReadBarcode(context.Context, func() bool) (string, error) {
	return "", engine.ErrNoConnectivity
}

func (Offline) LookupProduct(context.Context, string) (models.Product, error) {
	return models.Product{}, engine.ErrNoConnectivity
}

func (Offline) UploadMeal(context.Context, models.Meal) error { return engine.ErrNoConnectivity }
