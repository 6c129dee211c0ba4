package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PaginationMeta defines the structure for pagination metadata.
type PaginationMeta struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// PaginatedResponse defines the structure for a paginated list of any type.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResponse creates a new PaginatedResponse.
func NewPaginatedResponse[T any](data []T, totalItems int64, page, limit int) PaginatedResponse[T] {
	if limit <= 0 {
		limit = 1
	}
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalItems:  totalItems,
			TotalPages:  (int(totalItems) + limit - 1) / limit,
			CurrentPage: page,
			PageSize:    limit,
		},
	}
}

// Paginate cuts one page out of items. Pages past the end are empty.
func Paginate[T any](items []T, page, limit int) PaginatedResponse[T] {
	if limit < 1 {
		limit = defaultPageSize
	}
	if page < 1 {
		page = 1
	}
	// Checked before multiplying so a huge page cannot wrap the offset.
	if page-1 > len(items)/limit {
		return NewPaginatedResponse([]T{}, int64(len(items)), page, limit)
	}

	offset := (page - 1) * limit
	data := lo.Subset(items, offset, uint(limit))
	if data == nil || offset >= len(items) {
		data = []T{}
	}
	return NewPaginatedResponse(data, int64(len(items)), page, limit)
}

// pageParams reads page and limit from the query string.
func pageParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
