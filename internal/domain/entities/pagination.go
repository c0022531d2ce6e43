package entities

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = errors.New("page size out of range")
)

// PageRequest is a validated page/pageSize pair. Build it with NewPageRequest;
// the zero value is not a valid page.
type PageRequest struct {
	page     int
	pageSize int
}

func NewPageRequest(page, pageSize, maxPageSize int) (PageRequest, error) {
	if page < 1 {
		return PageRequest{}, ErrInvalidPage
	}
	if pageSize < 1 || (maxPageSize > 0 && pageSize > maxPageSize) {
		return PageRequest{}, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	return PageRequest{page: page, pageSize: pageSize}, nil
}

func (p PageRequest) Page() int     { return p.page }
func (p PageRequest) PageSize() int { return p.pageSize }
func (p PageRequest) Offset() int   { return (p.page - 1) * p.pageSize }

// TotalPages is ceil(totalCount / pageSize).
func (p PageRequest) TotalPages(totalCount int) int {
	if p.pageSize < 1 || totalCount <= 0 {
		return 0
	}
	return (totalCount + p.pageSize - 1) / p.pageSize
}

type PagedResult[T any] struct {
	List       []T `json:"list"`
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

func NewPagedResult[T any](list []T, totalCount int, p PageRequest) PagedResult[T] {
	if list == nil {
		list = []T{}
	}
	return PagedResult[T]{
		List:       list,
		TotalCount: totalCount,
		Page:       p.Page(),
		PageSize:   p.PageSize(),
		TotalPages: p.TotalPages(totalCount),
	}
}
