package helper

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Broannn/BookNest-RestAPI/models"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 100
)

// Pagination carries the clamped page/pageSize query parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads the page and pageSize (or its limit alias) query
// parameters. Invalid or out-of-range values fall back to the defaults:
// page is at least 1, pageSize stays within [0, 100].
func ParsePagination(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	raw := c.Query("pageSize")
	if raw == "" {
		raw = c.Query("limit")
	}
	pageSize, err := strconv.Atoi(raw)
	if err != nil || pageSize < 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}

// Skip is the number of documents to pass over for the current page.
func (p Pagination) Skip() int {
	return (p.Page - 1) * p.PageSize
}

// Meta builds the pagination envelope for a collection response.
func (p Pagination) Meta(total int64) models.ListMeta {
	pages := 0
	if p.PageSize > 0 {
		pages = int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	}
	return models.ListMeta{
		Total:    total,
		Page:     p.Page,
		Pages:    pages,
		PageSize: p.PageSize,
	}
}

// Location builds the Location header value for a created resource.
func Location(baseURL, resourcePath, id string) string {
	return fmt.Sprintf("%s%s/%s", baseURL, resourcePath, id)
}
