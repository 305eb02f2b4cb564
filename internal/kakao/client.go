package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://dapi.kakao.com"

// Coordinate is a latitude/longitude pair resolved from an address.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves an address to a best-match coordinate pair. The boolean
// result reports whether a match was found.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinate, bool, error)
}

// Client queries the Kakao Local address search API.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient builds a Kakao Local client authenticated with a REST API key.
func NewClient(client *http.Client, apiKey string) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{client: client, baseURL: defaultBaseURL, apiKey: apiKey}
}

// NewClientWithBaseURL overrides the API host, useful for tests.
func NewClientWithBaseURL(client *http.Client, apiKey, baseURL string) *Client {
	c := NewClient(client, apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Geocode looks up the address and returns the first matching document.
func (c *Client) Geocode(ctx context.Context, address string) (Coordinate, bool, error) {
	endpoint := c.baseURL + "/v2/local/search/address.json?query=" + url.QueryEscape(address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Coordinate{}, false, fmt.Errorf("failed to create kakao request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return Coordinate{}, false, fmt.Errorf("kakao request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Coordinate{}, false, fmt.Errorf("kakao error: %s", extractKakaoError(resp.Body))
	}

	var payload struct {
		Documents []struct {
			X string `json:"x"`
			Y string `json:"y"`
		} `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Coordinate{}, false, fmt.Errorf("could not decode kakao response: %w", err)
	}
	if len(payload.Documents) == 0 {
		return Coordinate{}, false, nil
	}

	doc := payload.Documents[0]
	lon, err := strconv.ParseFloat(doc.X, 64)
	if err != nil {
		return Coordinate{}, false, fmt.Errorf("invalid longitude %q in kakao response", doc.X)
	}
	lat, err := strconv.ParseFloat(doc.Y, 64)
	if err != nil {
		return Coordinate{}, false, fmt.Errorf("invalid latitude %q in kakao response", doc.Y)
	}
	return Coordinate{Latitude: lat, Longitude: lon}, true, nil
}

func extractKakaoError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "kakao returned an error"
	}
	var payload struct {
		Message string `json:"msg"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(data)
}

var _ Geocoder = (*Client)(nil)
