package tracking

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"towerboard/internal/common"
	"towerboard/internal/constants"
	"towerboard/internal/logging"
	"towerboard/internal/metrics"
	"towerboard/internal/models/dtos"
)

// ErrUnknownAirport is returned for ICAO codes outside the registry.
var ErrUnknownAirport = fmt.Errorf("unknown airport code")

// DefaultRadiusNM is used when the dashboard does not supply a radius.
const DefaultRadiusNM = 300

// Upstream fetches are capped so the bounding box stays inside what the
// v2 API will serve.
const maxFetchRadiusNM = 250

// geoTolerance widens the bounding-box filter by ~6nm so aircraft on the
// edge are not dropped between polls.
const geoTolerance = 0.1

// Service serves live aircraft positions near monitored airports, caching
// upstream responses briefly and falling back to generated sample traffic
// when the upstream is unreachable.
type Service struct {
	client   *ADSBClient
	cache    common.CacheInterface
	cacheTTL time.Duration
	metrics  *metrics.Registry
}

// NewService builds the lookup service. cacheSeconds controls how long a
// fetched snapshot is served before the upstream is polled again; zero or
// negative falls back to the built-in default.
func NewService(client *ADSBClient, cache common.CacheInterface, reg *metrics.Registry, cacheSeconds int) *Service {
	if cacheSeconds <= 0 {
		cacheSeconds = constants.AircraftCacheSeconds
	}
	return &Service{
		client:   client,
		cache:    cache,
		cacheTTL: time.Duration(cacheSeconds) * time.Second,
		metrics:  reg,
	}
}

// AircraftNearAirport returns the aircraft within radiusNM of the airport.
func (s *Service) AircraftNearAirport(ctx context.Context, code string, radiusNM int) (*dtos.AircraftArea, error) {
	airport, ok := LookupAirport(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, code)
	}
	if radiusNM <= 0 {
		radiusNM = DefaultRadiusNM
	}

	cacheKey := fmt.Sprintf("%s%s_%d", constants.CachePrefixAircraftArea, airport.Code, radiusNM)
	if val, found := s.cache.Get(cacheKey); found {
		if area, ok := val.(*dtos.AircraftArea); ok {
			s.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixAircraftArea)).Inc()
			return area, nil
		}
	}
	s.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixAircraftArea)).Inc()

	area := s.fetch(ctx, airport, radiusNM)
	s.cache.Set(cacheKey, area, s.cacheTTL)
	return area, nil
}

func (s *Service) fetch(ctx context.Context, airport dtos.Airport, radiusNM int) *dtos.AircraftArea {
	// 1 degree of latitude is ~60nm; longitude shrinks with latitude.
	latRange := float64(radiusNM) / 60.0
	lonRange := float64(radiusNM) / (60.0 * math.Max(math.Abs(math.Cos(airport.Latitude*math.Pi/180)), 0.1))

	minLat, maxLat := airport.Latitude-latRange, airport.Latitude+latRange
	minLon, maxLon := airport.Longitude-lonRange, airport.Longitude+lonRange

	fetchRadius := math.Min(math.Max(latRange, lonRange)*60*1.5, maxFetchRadiusNM)

	start := time.Now()
	raw, err := s.client.FetchArea(ctx, airport.Latitude, airport.Longitude, fetchRadius)
	s.metrics.UpstreamFetchSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.UpstreamFetchesTotal.WithLabelValues("error").Inc()
		logging.Warn("upstream fetch failed, serving sample traffic",
			"airport", airport.Code, "error", err)
		return sampleArea(airport, radiusNM, minLat, maxLat, minLon, maxLon)
	}
	s.metrics.UpstreamFetchesTotal.WithLabelValues("success").Inc()

	aircraft := make([]dtos.Aircraft, 0, len(raw))
	for _, ac := range raw {
		if ac.Lat < minLat-geoTolerance || ac.Lat > maxLat+geoTolerance ||
			ac.Lon < minLon-geoTolerance || ac.Lon > maxLon+geoTolerance {
			continue
		}
		aircraft = append(aircraft, toAircraft(ac))
	}

	return &dtos.AircraftArea{
		Airport:   airport.Code,
		RadiusNM:  radiusNM,
		Aircraft:  aircraft,
		Source:    "adsb.lol",
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func toAircraft(ac adsbAircraft) dtos.Aircraft {
	callsign := strings.ToUpper(strings.TrimSpace(ac.Flight))
	if callsign == "" && len(ac.Hex) >= 4 {
		callsign = "AC" + strings.ToUpper(ac.Hex[len(ac.Hex)-4:])
	}

	squawk := ac.Squawk
	if squawk == "0" {
		squawk = ""
	}

	altFt, onGround := ac.AltitudeFt()

	return dtos.Aircraft{
		Hex:          ac.Hex,
		Callsign:     callsign,
		Latitude:     ac.Lat,
		Longitude:    ac.Lon,
		AltitudeFt:   altFt,
		GroundSpeed:  ac.GS,
		Track:        ac.Track,
		AircraftType: ac.Type,
		Squawk:       squawk,
		OnGround:     onGround,
	}
}
