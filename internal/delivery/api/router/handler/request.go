package handler

import (
	"strings"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PageQuery holds the paging and sorting parameters shared by listings.
type PageQuery struct {
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1"`
	SortBy string `query:"sort_by" validate:"omitempty,max=32"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc ASC DESC"`
}

func (q PageQuery) pageRequest() entity.PageRequest {
	return entity.PageRequest{Page: q.Page, Limit: q.Limit}
}

func (q PageQuery) sortOrder() entity.SortOrder {
	return entity.SortOrder(strings.ToLower(q.Order))
}

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
