package model

import "math"

// Page selects a 1-based page of a listing.
type Page struct {
	Number int
	Size   int
}

// Offset returns number of rows to skip, saturating at math.MaxInt.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}
