package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// QueryParams holds common pagination query parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// FromContext reads page_number/page_size with sane defaults.
func FromContext(c echo.Context) QueryParams {
	p := QueryParams{PageNumber: 1, PageSize: 20}
	if n, err := strconv.Atoi(c.QueryParam("page_number")); err == nil && n > 0 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && n > 0 && n <= 100 {
		p.PageSize = n
	}
	return p
}
