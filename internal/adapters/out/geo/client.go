// Package geo implements the distance lookup port against a distance-matrix
// style HTTP provider. The client reports three distinct outcomes: provider
// failure, no route between the points, or a route with its distance.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// statusOK is the provider's success marker, used both at the response
// level and at the individual route level.
const statusOK = "OK"

const defaultTimeout = 10 * time.Second

// Client calls a distance-matrix HTTP endpoint to resolve travel distances.
// It performs no retries and no coordinate validation; callers pass already
// validated points and decide how to react to each outcome.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a distance lookup client for the given endpoint.
// The API key is optional; when empty it is omitted from requests.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// distanceMatrixResponse mirrors the provider's wire format. Only the
// fields the lookup needs are decoded.
type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// Lookup resolves the travel distance between two points.
//
// A transport or decoding failure is returned as an error. A well-formed
// provider answer never is: provider-level failure yields ProviderOK false,
// a missing route yields RouteFound false, and only a found route carries
// a distance.
func (c *Client) Lookup(ctx context.Context, origin, destination kernel.GeoPoint) (ports.DistanceResult, error) {
	query := url.Values{}
	query.Set("origins", formatPoint(origin))
	query.Set("destinations", formatPoint(destination))
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return ports.DistanceResult{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.DistanceResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.DistanceResult{}, fmt.Errorf("distance provider returned HTTP %d", resp.StatusCode)
	}

	var body distanceMatrixResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.DistanceResult{}, fmt.Errorf("decode distance provider response: %w", err)
	}

	if body.Status != statusOK {
		return ports.DistanceResult{ProviderOK: false}, nil
	}

	if len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return ports.DistanceResult{ProviderOK: true, RouteFound: false}, nil
	}

	element := body.Rows[0].Elements[0]
	if element.Status != statusOK {
		return ports.DistanceResult{ProviderOK: true, RouteFound: false}, nil
	}

	return ports.DistanceResult{
		ProviderOK: true,
		RouteFound: true,
		Meters:     element.Distance.Value,
	}, nil
}

func formatPoint(point kernel.GeoPoint) string {
	return strconv.FormatFloat(point.Lat(), 'f', -1, 64) +
		"," +
		strconv.FormatFloat(point.Lon(), 'f', -1, 64)
}
