package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/checkmygrade/core"
	"github.com/trezcool/checkmygrade/core/student"
)

var (
	searchParam = "search"
	sortParam   = "sort"
	orderParam  = "order"
)

// StudentQuery holds the search and ordering of a student listing.
type StudentQuery struct {
	Search string
	Sort   student.SortField
	Order  student.Order
}

func (q *StudentQuery) Bind(ctx echo.Context) error {
	q.Search = ctx.QueryParam(searchParam)

	var err error
	if q.Sort, err = student.ParseSortField(ctx.QueryParam(sortParam)); err != nil {
		return core.NewFieldValidationError(sortParam, err.Error())
	}
	if q.Order, err = student.ParseOrder(ctx.QueryParam(orderParam)); err != nil {
		return core.NewFieldValidationError(orderParam, err.Error())
	}
	return nil
}
