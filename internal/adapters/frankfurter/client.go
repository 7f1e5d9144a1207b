package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"fxdash/internal/domain"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Client struct {
	http    *http.Client
	baseURL string
}

type seriesResponse struct {
	Amount    float64                       `json:"amount"`
	Base      string                        `json:"base"`
	StartDate string                        `json:"start_date"`
	EndDate   string                        `json:"end_date"`
	Rates     map[string]map[string]float64 `json:"rates"`
}

// GetSeries fetches the time series {start}..{end} and returns it ordered by date.
func (c *Client) GetSeries(ctx context.Context, base string, quotes []string, start, end time.Time) (domain.RateSeries, error) {
	u, err := c.endpoint(start.Format(DateLayout) + ".." + end.Format(DateLayout))
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("base", base)
	if len(quotes) > 0 {
		q.Set("symbols", strings.Join(quotes, ","))
	}
	u.RawQuery = q.Encode()

	var body seriesResponse
	if err = c.getJSON(ctx, u.String(), &body); err != nil {
		return nil, fmt.Errorf("failed to fetch series for currency %q: %w", base, err)
	}

	seriesBase := body.Base
	if seriesBase == "" {
		seriesBase = base
	}

	// the upstream keys rates by date; the series must be chronological
	dates := slices.Sorted(maps.Keys(body.Rates))
	series := make(domain.RateSeries, 0, len(dates))
	for _, date := range dates {
		series = append(series, domain.RateObservation{
			Date:  date,
			Base:  seriesBase,
			Rates: body.Rates[date],
		})
	}
	return series, nil
}

// GetCurrencies returns all currency codes the upstream knows, with their names.
func (c *Client) GetCurrencies(ctx context.Context) (map[string]string, error) {
	u, err := c.endpoint("currencies")
	if err != nil {
		return nil, err
	}
	var body map[string]string
	if err = c.getJSON(ctx, u.String(), &body); err != nil {
		return nil, fmt.Errorf("failed to fetch currencies: %w", err)
	}
	return body, nil
}

func (c *Client) endpoint(path string) (*url.URL, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + path
	return u, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, resp.Status)
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{http: httpClient, baseURL: baseURL}
}
