package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults when absent", "", "", 1, 10},
		{"explicit values", "3", "25", 3, 25},
		{"non-numeric clamps silently", "abc", "xyz", 1, 10},
		{"zero clamps to minimum", "0", "0", 1, 10},
		{"negative clamps to minimum", "-4", "-1", 1, 10},
		{"float input clamps", "1.5", "2.5", 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseParams(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 3, Params{Page: 4, Limit: 1}.Offset())
}

func TestBuildMeta(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		limit          int
		wantTotalPages int
	}{
		{"empty relation", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"remainder rounds up", 21, 10, 3},
		{"single page", 5, 10, 1},
		{"limit one", 2, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := BuildMeta(tt.total, Params{Page: 1, Limit: tt.limit})
			assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.limit, meta.Limit)
		})
	}
}
