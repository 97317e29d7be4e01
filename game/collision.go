package game

import "time"

// Overlaps reports whether a falling item's box intersects the basket at now
// Overlap is geometric (position-based), independent of how often it is polled
func Overlaps(it *Item, basket BasketState, now time.Time, pf Playfield) bool {
	return it.Bounds(now, pf).Intersects(basket.Bounds(pf))
}
