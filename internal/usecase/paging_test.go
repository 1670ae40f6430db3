package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polkiloo/toymix/internal/config"
	"github.com/polkiloo/toymix/internal/domain/model"
)

func TestPagingNormalize(t *testing.T) {
	p := NewPaging(&config.Config{DefaultPageSize: 5, MaxPageSize: 20})

	cases := []struct {
		name         string
		number, size int
		want         model.Page
	}{
		{"defaults", 0, 0, model.Page{Number: 1, Size: 5}},
		{"negative", -3, -1, model.Page{Number: 1, Size: 5}},
		{"explicit", 3, 10, model.Page{Number: 3, Size: 10}},
		{"capped", 2, 500, model.Page{Number: 2, Size: 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Normalize(tc.number, tc.size))
		})
	}
}

func TestPagingNormalizeZeroConfig(t *testing.T) {
	assert.Equal(t, model.Page{Number: 1, Size: 5}, Paging{}.Normalize(0, 0))
	assert.Equal(t, model.Page{Number: 1, Size: 1000}, Paging{}.Normalize(1, 1000))
}

func TestPagingNormalizeHugePageNumber(t *testing.T) {
	p := Paging{DefaultSize: 5, MaxSize: 100}

	page := p.Normalize(math.MaxInt/4, 5)
	assert.Equal(t, math.MaxInt/5+1, page.Number)
	assert.GreaterOrEqual(t, page.Offset(), 0)

	page = p.Normalize(math.MaxInt, 100)
	assert.GreaterOrEqual(t, page.Offset(), 0)
	assert.Equal(t, (math.MaxInt/100)*100, page.Offset())

	page = Paging{MaxSize: 1}.Normalize(math.MaxInt, 1)
	assert.Equal(t, math.MaxInt, page.Number)
	assert.Equal(t, math.MaxInt-1, page.Offset())
}
