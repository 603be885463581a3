package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jab1897/LoneStarLedger5/internal/cli/types"
)

// ListOptions are the shared list query parameters.
type ListOptions struct {
	Search   string
	Category string // county for districts, grade for campuses
	Sort     string
	Dir      string
	Page     int
	PageSize int
}

func (o ListOptions) values(categoryParam string) url.Values {
	q := url.Values{}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Category != "" {
		q.Set(categoryParam, o.Category)
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	if o.Dir != "" {
		q.Set("dir", o.Dir)
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(o.PageSize))
	}
	return q
}

// SpendingOptions extend ListOptions with the spending date range.
type SpendingOptions struct {
	ListOptions
	From string
	To   string
}

func (o SpendingOptions) values() url.Values {
	q := o.ListOptions.values("category")
	if o.From != "" {
		q.Set("from", o.From)
	}
	if o.To != "" {
		q.Set("to", o.To)
	}
	return q
}

// ListDistricts lists districts with search, filter, sort, and pagination.
func (c *APIClient) ListDistricts(ctx context.Context, opts ListOptions) (*types.DistrictList, error) {
	body, err := c.get(ctx, "/districts", opts.values("county"))
	if err != nil {
		return nil, err
	}
	return decode[types.DistrictList](body)
}

// GetDistrict fetches one district by id.
func (c *APIClient) GetDistrict(ctx context.Context, id string) (*types.District, error) {
	body, err := c.get(ctx, "/districts/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return decode[types.District](body)
}

// Counties lists the distinct county names.
func (c *APIClient) Counties(ctx context.Context) (*types.Counties, error) {
	body, err := c.get(ctx, "/districts/counties", nil)
	if err != nil {
		return nil, err
	}
	return decode[types.Counties](body)
}

// DistrictCampuses fetches a district's campus roster, sorted by score.
func (c *APIClient) DistrictCampuses(ctx context.Context, districtID string) (*types.DistrictCampuses, error) {
	body, err := c.get(ctx, "/districts/"+url.PathEscape(districtID)+"/campuses", nil)
	if err != nil {
		return nil, err
	}
	return decode[types.DistrictCampuses](body)
}

// DistrictSpending lists a district's spending line items.
func (c *APIClient) DistrictSpending(ctx context.Context, districtID string, opts SpendingOptions) (*types.SpendingList, error) {
	body, err := c.get(ctx, "/districts/"+url.PathEscape(districtID)+"/spending", opts.values())
	if err != nil {
		return nil, err
	}
	return decode[types.SpendingList](body)
}

// ExportSpending downloads a district's filtered spending as CSV bytes.
func (c *APIClient) ExportSpending(ctx context.Context, districtID string, opts SpendingOptions) ([]byte, error) {
	return c.get(ctx, "/districts/"+url.PathEscape(districtID)+"/spending/export", opts.values())
}

// ListCampuses lists campuses with search, filter, sort, and pagination.
func (c *APIClient) ListCampuses(ctx context.Context, opts ListOptions) (*types.CampusList, error) {
	body, err := c.get(ctx, "/campuses", opts.values("grade"))
	if err != nil {
		return nil, err
	}
	return decode[types.CampusList](body)
}

// GetCampus fetches one campus by id.
func (c *APIClient) GetCampus(ctx context.Context, id string) (*types.Campus, error) {
	body, err := c.get(ctx, "/campuses/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return decode[types.Campus](body)
}

// StateStats fetches the statewide aggregates.
func (c *APIClient) StateStats(ctx context.Context) (*types.StateStats, error) {
	body, err := c.get(ctx, "/stats/state", nil)
	if err != nil {
		return nil, err
	}
	return decode[types.StateStats](body)
}
