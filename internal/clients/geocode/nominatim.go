package geocode

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/revtext/backend/internal/interfaces"
)

// Client resolves free-text addresses against a Nominatim instance. The
// upstream is rate-limited and unauthenticated, so there is exactly one call
// per Resolve and no retry.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Nominatim returns lon/lat as strings.
type searchResult struct {
	Lon string `json:"lon"`
	Lat string `json:"lat"`
}

// Resolve returns the first match for the address, or nil when there is no
// match or the lookup failed. A nil result is not an error here; callers
// decide whether absent coordinates are fatal.
func (c *Client) Resolve(ctx context.Context, address string) (*interfaces.Coordinates, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "revtext-backend/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("geocode request error: %v", err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("geocode http error: %d", resp.StatusCode)
		return nil, nil
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Printf("geocode decode error: %v", err)
		return nil, nil
	}
	if len(results) == 0 {
		return nil, nil
	}

	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	if errLon != nil || errLat != nil {
		log.Printf("geocode bad coordinates: lon=%q lat=%q", results[0].Lon, results[0].Lat)
		return nil, nil
	}

	return &interfaces.Coordinates{Lon: lon, Lat: lat}, nil
}
