package models

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// DefaultPageSize matches the dashboard table, which shows eight rows
// per page.
const DefaultPageSize = 8

const maxPageSize = 100

// ListParams carries the filter and pagination state of an inventory
// list request.
type ListParams struct {
	Statuses   []Status
	Conditions []Condition
	Category   string
	Search     string
	Page       int
	Limit      int
	SortDesc   bool
}

// ParseListParams reads filter and paging query parameters. Unknown sort
// directions and absent paging fall back to defaults; enum values are
// validated later so the caller can reject with a 400.
func ParseListParams(r *http.Request) ListParams {
	q := r.URL.Query()

	p := ListParams{
		Category: q.Get("category"),
		Search:   strings.TrimSpace(q.Get("q")),
		Page:     1,
		Limit:    DefaultPageSize,
		SortDesc: true, // newest first is the dashboard default
	}

	for _, s := range splitList(q.Get("status")) {
		p.Statuses = append(p.Statuses, Status(s))
	}
	for _, c := range splitList(q.Get("condition")) {
		p.Conditions = append(p.Conditions, Condition(c))
	}

	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		p.Limit = v
	}
	if q.Get("sort") == "oldest" {
		p.SortDesc = false
	}

	return p
}

// Validate rejects enum values the store would silently match nothing
// on, so typos surface as 400s instead of empty pages.
func (p ListParams) Validate() error {
	for _, s := range p.Statuses {
		if !s.Valid() {
			return fmt.Errorf("unknown status %q", s)
		}
	}
	for _, c := range p.Conditions {
		if !c.Valid() {
			return fmt.Errorf("unknown condition %q", c)
		}
	}
	if p.Category != "" && !ValidCategory(p.Category) {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	if p.Limit > maxPageSize {
		return fmt.Errorf("limit must be at most %d", maxPageSize)
	}
	return nil
}

// Offset converts page/limit to a row offset.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
