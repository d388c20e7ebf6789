package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

const (
	// CachePrefixAircraftArea keys cached upstream responses by airport code.
	CachePrefixAircraftArea CachePrefix = "aircraft_area_"
)

const (
	// AircraftCacheSeconds is how long a fetched aircraft snapshot stays
	// valid before the upstream is polled again.
	AircraftCacheSeconds = 2
)
