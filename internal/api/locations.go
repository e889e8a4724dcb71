// internal/api/locations.go
package api

import (
	"context"
	"net/url"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

// States returns the state list for a country.
func (c *Client) States(ctx context.Context, country string) ([]string, error) {
	q := url.Values{"country": {country}}
	var out []string
	if err := c.get(ctx, "/locations/states", q, &out, "locations"); err != nil {
		return nil, err
	}
	return out, nil
}

// LGAs returns the local-government-area list for a state.
func (c *Client) LGAs(ctx context.Context, country, state string) ([]string, error) {
	q := url.Values{"country": {country}, "state": {state}}
	var out []string
	if err := c.get(ctx, "/locations/lgas", q, &out, "locations"); err != nil {
		return nil, err
	}
	return out, nil
}

// Cities returns the city list for an LGA.
func (c *Client) Cities(ctx context.Context, country, state, lga string) ([]string, error) {
	q := url.Values{"country": {country}, "state": {state}, "lga": {lga}}
	var out []string
	if err := c.get(ctx, "/locations/cities", q, &out, "locations"); err != nil {
		return nil, err
	}
	return out, nil
}

// CityRegions returns the named sub-areas of a city with their fees.
func (c *Client) CityRegions(ctx context.Context, country, state, lga, city string) ([]models.CityRegion, error) {
	q := url.Values{"country": {country}, "state": {state}, "lga": {lga}, "city": {city}}
	var out []models.CityRegion
	if err := c.get(ctx, "/locations/city-regions", q, &out, "locations"); err != nil {
		return nil, err
	}
	return out, nil
}

// CityRegionFee resolves the fee for a fully specified location tuple.
// The backend tags the result with where the amount came from, either the
// region's own fee or a default fallback.
func (c *Client) CityRegionFee(ctx context.Context, country, state, lga, city, cityRegion string) (*models.Fee, error) {
	q := url.Values{
		"country":    {country},
		"state":      {state},
		"lga":        {lga},
		"city":       {city},
		"cityRegion": {cityRegion},
	}
	var out models.Fee
	if err := c.get(ctx, "/locations/fee", q, &out, "locations"); err != nil {
		return nil, err
	}
	return &out, nil
}
