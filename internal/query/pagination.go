package query

import (
	"math"
	"strconv"

	"gorm.io/gorm"
)

const (
	// DefaultPage is used when no page parameter is supplied.
	DefaultPage = 1
	// DefaultLimit is used when no limit parameter is supplied.
	DefaultLimit = 10
)

// Params carries validated pagination inputs. Page and Limit are always
// at least 1: non-numeric or non-positive inputs clamp silently rather
// than erroring.
type Params struct {
	Page  int
	Limit int
}

// ParseParams coerces raw page/limit query strings into Params.
func ParseParams(page, limit string) Params {
	return Params{
		Page:  atoiClamped(page, DefaultPage),
		Limit: atoiClamped(limit, DefaultLimit),
	}
}

func atoiClamped(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Offset is the row offset of the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination block returned alongside every list page.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// BuildMeta derives page-count metadata from a total row count.
func BuildMeta(total int64, p Params) Meta {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Paginate runs the count query and the limited data query against the
// same filtered relation. Both derive from the one db value passed in,
// which is what keeps total consistent with the rows: there is no second
// independently maintained filter expression.
func Paginate(db *gorm.DB, p Params, dest interface{}) (Meta, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return Meta{}, err
	}
	if err := db.Limit(p.Limit).Offset(p.Offset()).Find(dest).Error; err != nil {
		return Meta{}, err
	}
	return BuildMeta(total, p), nil
}
