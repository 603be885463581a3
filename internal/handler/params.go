package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
	"github.com/jab1897/LoneStarLedger5/internal/schema"
)

// queryFloat parses an optional numeric query parameter. Currency formatting
// is accepted the same way it is in dataset cells.
func queryFloat(c *app.RequestContext, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, ok := schema.Number(raw)
	if !ok {
		return nil, domain.NewInvalidInputError(name + " must be a number")
	}
	return &n, nil
}

// queryDate parses an optional date query parameter using the same layout
// guessing as dataset cells.
func queryDate(c *app.RequestContext, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, ok := schema.Date(raw)
	if !ok {
		return nil, domain.NewInvalidInputError(name + " must be a date")
	}
	return &t, nil
}

// queryList splits a comma-separated query parameter, dropping empty items.
func queryList(c *app.RequestContext, name string) []string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// queryPage parses the pagination parameters. Invalid values fall back to
// zero and are clamped downstream.
func queryPage(c *app.RequestContext) (page, pageSize int) {
	page, _ = strconv.Atoi(c.Query("page"))
	pageSize, _ = strconv.Atoi(c.Query("page_size"))
	return page, pageSize
}
