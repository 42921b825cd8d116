package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	// MaxPage keeps (Page-1)*Limit far from overflow.
	MaxPage = 1_000_000
)

// Pagination represents paging and ordering of a list request.
type Pagination struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// PageMeta represents pagination metadata returned with list responses.
type PageMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// Normalize clamps page/limit into range and defaults the sort order.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	p.SortOrder = strings.ToLower(p.SortOrder)
	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		p.SortOrder = "desc"
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePagination extracts page, limit, sort_by and sort_order from the query string.
func ParsePagination(c *gin.Context) Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	return Pagination{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}.Normalize()
}

// Apply adds ORDER BY, OFFSET and LIMIT. sortBy is resolved through allowed;
// unknown fields fall back to fallbackColumn.
func Apply(db *gorm.DB, p Pagination, allowed map[string]string, fallbackColumn string) *gorm.DB {
	p = p.Normalize()

	column, ok := allowed[p.SortBy]
	if !ok {
		column = fallbackColumn
	}
	if column != "" {
		db = db.Order(fmt.Sprintf("%s %s", column, strings.ToUpper(p.SortOrder)))
	}
	return db.Offset(p.Offset()).Limit(p.Limit)
}

// BuildMeta creates pagination metadata.
func BuildMeta(p Pagination, total int64) PageMeta {
	p = p.Normalize()
	totalPages := (total + int64(p.Limit) - 1) / int64(p.Limit)

	return PageMeta{
		Page:        p.Page,
		Limit:       p.Limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     int64(p.Page) < totalPages,
		HasPrevious: p.Page > 1,
	}
}
