package usecase

import (
	"math"

	"github.com/polkiloo/toymix/internal/config"
	"github.com/polkiloo/toymix/internal/domain/model"
)

// Paging turns raw page parameters into a bounded model.Page.
type Paging struct {
	DefaultSize int
	MaxSize     int
}

// NewPaging reads page size limits from configuration.
func NewPaging(cfg *config.Config) Paging {
	return Paging{DefaultSize: cfg.DefaultPageSize, MaxSize: cfg.MaxPageSize}
}

// Normalize replaces non-positive values with defaults, caps the size and
// keeps the page number low enough for its offset to fit in an int.
func (p Paging) Normalize(number, size int) model.Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = p.DefaultSize
	}
	if size < 1 {
		size = 5
	}
	if p.MaxSize > 0 && size > p.MaxSize {
		size = p.MaxSize
	}
	if number-1 > math.MaxInt/size {
		number = math.MaxInt/size + 1
	}
	return model.Page{Number: number, Size: size}
}
