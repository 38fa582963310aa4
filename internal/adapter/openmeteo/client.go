// Package openmeteo queries the Open-Meteo marine and forecast APIs for
// current conditions at a coordinate.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.ngs.io/surf-api/internal/domain"
)

const (
	// DefaultMarineURL is the Open-Meteo marine endpoint.
	DefaultMarineURL = "https://marine-api.open-meteo.com/v1/marine"
	// DefaultForecastURL is the Open-Meteo weather forecast endpoint.
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

	marineFields = "wave_height,wave_direction,wave_period"
	windFields   = "wind_speed_10m,wind_direction_10m"
)

// Client fetches current conditions from both Open-Meteo providers.
type Client struct {
	marineURL   string
	forecastURL string
	httpClient  *http.Client
	userAgent   string
}

// NewClient creates a client for the given endpoints.
func NewClient(marineURL, forecastURL string, timeout time.Duration) *Client {
	return &Client{
		marineURL:   marineURL,
		forecastURL: forecastURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "surf-api/1.0",
	}
}

// NewClientWithHTTP creates a client with a custom HTTP client.
func NewClientWithHTTP(marineURL, forecastURL string, httpClient *http.Client) *Client {
	return &Client{
		marineURL:   marineURL,
		forecastURL: forecastURL,
		httpClient:  httpClient,
		userAgent:   "surf-api/1.0",
	}
}

type marineResponse struct {
	Current *struct {
		Time          *string  `json:"time"`
		WaveHeight    *float64 `json:"wave_height"`
		WaveDirection *float64 `json:"wave_direction"`
		WavePeriod    *float64 `json:"wave_period"`
	} `json:"current"`
}

type forecastResponse struct {
	Current *struct {
		WindSpeed10m     *float64 `json:"wind_speed_10m"`
		WindDirection10m *float64 `json:"wind_direction_10m"`
	} `json:"current"`
}

// GetMarineConditions returns current wave height, direction and period.
// Fields the provider omits are nil.
func (c *Client) GetMarineConditions(ctx context.Context, lat, lon float64) (domain.MarineConditions, error) {
	var resp marineResponse
	if err := c.get(ctx, c.marineURL, lat, lon, marineFields, &resp); err != nil {
		return domain.MarineConditions{}, fmt.Errorf("marine conditions: %w", err)
	}

	var mc domain.MarineConditions
	if resp.Current != nil {
		mc.WaveHeightM = resp.Current.WaveHeight
		mc.WaveDirectionDeg = resp.Current.WaveDirection
		mc.WavePeriodS = resp.Current.WavePeriod
		mc.Time = resp.Current.Time
	}
	return mc, nil
}

// GetWindConditions returns current 10 m wind speed and direction.
func (c *Client) GetWindConditions(ctx context.Context, lat, lon float64) (domain.WindConditions, error) {
	var resp forecastResponse
	if err := c.get(ctx, c.forecastURL, lat, lon, windFields, &resp); err != nil {
		return domain.WindConditions{}, fmt.Errorf("wind conditions: %w", err)
	}

	var wc domain.WindConditions
	if resp.Current != nil {
		wc.SpeedKmh = resp.Current.WindSpeed10m
		wc.DirectionDeg = resp.Current.WindDirection10m
	}
	return wc, nil
}

// get issues a GET for the current fields at lat/lon and decodes the JSON body into out.
// Every failure is wrapped in domain.ErrUpstream.
func (c *Client) get(ctx context.Context, baseURL string, lat, lon float64, fields string, out any) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("%w: invalid URL %s: %v", domain.ErrUpstream, baseURL, err)
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", fields)
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: API returned status %d: %s", domain.ErrUpstream, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", domain.ErrUpstream, err)
	}
	return nil
}
