package service

import "time"

// ButtonParams names one key of the device.
type ButtonParams struct {
	Kind string // "group" | "main" | "barcode"
	ID   int    // group 1..20, main 1..5 (raw, cooked, add, delete, save)
}

// ScaleParams is a raw load-cell reading.
type ScaleParams struct {
	Grams float64 // gross weight, before tare
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "TRANSITION", "ERROR", "WARNING", "CANCEL", "SAVE", "MAINTENANCE"
}

// MealFilter selects saved meals by save time.
type MealFilter struct {
	From time.Time
	To   time.Time
}
