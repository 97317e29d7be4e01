package vmath

import (
	"errors"
	"fmt"
)

var (
	ErrNoChoices     = errors.New("weighted choice needs at least one entry")
	ErrInvalidWeight = errors.New("weight must be positive")
)

// Weighted selects entries with probability proportional to their weight
// Selection draws uniformly over [0, total) and returns the first entry whose
// cumulative weight exceeds the draw, so ties resolve in insertion order
// Weighted holds no mutable state and is safe to share
type Weighted[T any] struct {
	items      []T
	cumulative []float64
	total      float64
}

// NewWeighted builds a chooser from items and a weight accessor
func NewWeighted[T any](items []T, weight func(T) float64) (*Weighted[T], error) {
	if len(items) == 0 {
		return nil, ErrNoChoices
	}

	w := &Weighted[T]{
		items:      make([]T, len(items)),
		cumulative: make([]float64, len(items)),
	}
	copy(w.items, items)

	for i, item := range items {
		wt := weight(item)
		if !(wt > 0) {
			return nil, fmt.Errorf("entry %d: %w (got %v)", i, ErrInvalidWeight, wt)
		}
		w.total += wt
		w.cumulative[i] = w.total
	}

	return w, nil
}

// Total returns the sum of all weights
func (w *Weighted[T]) Total() float64 {
	return w.total
}

// Pick draws one entry using src
func (w *Weighted[T]) Pick(src Source) T {
	return w.PickAt(src.Float64() * w.total)
}

// PickAt resolves a raw draw in [0, Total) to an entry
// Draws at or past Total clamp to the last entry
func (w *Weighted[T]) PickAt(draw float64) T {
	for i, c := range w.cumulative {
		if draw < c {
			return w.items[i]
		}
	}
	return w.items[len(w.items)-1]
}
