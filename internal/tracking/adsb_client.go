package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// adsbAircraft mirrors the wire fields of the adsb.lol v2 response we use.
// Altitude is left raw because the API sends "ground" for parked aircraft.
type adsbAircraft struct {
	Hex      string          `json:"hex"`
	Flight   string          `json:"flight"`
	Lat      float64         `json:"lat"`
	Lon      float64         `json:"lon"`
	AltBaro  json.RawMessage `json:"alt_baro"`
	GS       float64         `json:"gs"`
	Track    float64         `json:"track"`
	Type     string          `json:"t"`
	Squawk   string          `json:"squawk"`
	Category string          `json:"category"`
}

type adsbResponse struct {
	AC []adsbAircraft `json:"ac"`
}

// AltitudeFt resolves alt_baro into feet. "ground" and anything under 100ft
// count as on the ground.
func (a adsbAircraft) AltitudeFt() (int, bool) {
	var s string
	if err := json.Unmarshal(a.AltBaro, &s); err == nil {
		return 0, true
	}
	var ft float64
	if err := json.Unmarshal(a.AltBaro, &ft); err != nil {
		return 0, true
	}
	return int(ft), ft < 100
}

// ADSBClient fetches live positions from the adsb.lol v2 API.
type ADSBClient struct {
	BaseURL string
	Client  *http.Client
	limiter *rate.Limiter
}

// NewADSBClient builds a client against baseURL. The upstream is a free
// community service, so outbound calls are limited to one per second with a
// small burst.
func NewADSBClient(baseURL string) *ADSBClient {
	return &ADSBClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(1, 3),
	}
}

// FetchArea returns all aircraft within radiusNM of the given point.
func (c *ADSBClient) FetchArea(ctx context.Context, lat, lon, radiusNM float64) ([]adsbAircraft, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v2/lat/%f/lon/%f/dist/%f", c.BaseURL, lat, lon, radiusNM)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "towerboard/1.0")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.New("resource not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body adsbResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.AC, nil
}
