// Package listing extracts optional windowing parameters for list endpoints.
// Catalog lists return every row by default; a caller may narrow the window
// with limit/offset query parameters.
package listing

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

// MaxLimit caps an explicit limit so a bad client cannot request an
// arbitrarily large window. A zero limit means unbounded.
const MaxLimit = 1000

// Params holds the windowing parameters extracted from a request.
type Params struct {
	Limit  int // 0 = no limit
	Offset int
}

// FromContext extracts limit/offset from the echo context. Absent or invalid
// values yield the unbounded default.
func FromContext(c echo.Context) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// SQL renders the LIMIT/OFFSET clause, or an empty string for the unbounded
// default window.
func (p Params) SQL() string {
	switch {
	case p.Limit > 0 && p.Offset > 0:
		return fmt.Sprintf(" LIMIT %d OFFSET %d", p.Limit, p.Offset)
	case p.Limit > 0:
		return fmt.Sprintf(" LIMIT %d", p.Limit)
	case p.Offset > 0:
		return fmt.Sprintf(" OFFSET %d", p.Offset)
	default:
		return ""
	}
}

// Window applies the params to an in-memory slice length, returning the
// [start, end) bounds. Used by in-memory repository fakes in tests.
func (p Params) Window(n int) (int, int) {
	start := p.Offset
	if start > n {
		start = n
	}
	end := n
	if p.Limit > 0 && start+p.Limit < end {
		end = start + p.Limit
	}
	return start, end
}
