package tracking

import (
	"sort"
	"strings"

	"towerboard/internal/models/dtos"
)

type airportInfo struct {
	Name string
	City string
	Lat  float64
	Lon  float64
}

// airports is the registry of fields selectable on the dashboard dropdown.
var airports = map[string]airportInfo{
	// US majors
	"KJFK": {"John F. Kennedy International Airport", "New York", 40.6413, -73.7781},
	"KLAX": {"Los Angeles International Airport", "Los Angeles", 33.9425, -118.4081},
	"KORD": {"O'Hare International Airport", "Chicago", 41.9786, -87.9048},
	"KDFW": {"Dallas/Fort Worth International Airport", "Dallas", 32.8968, -97.0380},
	"KATL": {"Hartsfield-Jackson Atlanta International Airport", "Atlanta", 33.6407, -84.4277},
	"KDEN": {"Denver International Airport", "Denver", 39.8561, -104.6737},
	"KSEA": {"Seattle-Tacoma International Airport", "Seattle", 47.4502, -122.3088},
	"KMIA": {"Miami International Airport", "Miami", 25.7959, -80.2870},
	"KPHX": {"Phoenix Sky Harbor International Airport", "Phoenix", 33.4342, -112.0116},
	"KCLT": {"Charlotte Douglas International Airport", "Charlotte", 35.2144, -80.9473},
	"KBOS": {"Logan International Airport", "Boston", 42.3656, -71.0096},
	"KLAS": {"McCarran International Airport", "Las Vegas", 36.0840, -115.1537},
	"KIAH": {"George Bush Intercontinental Airport", "Houston", 29.9844, -95.3414},
	"KMSP": {"Minneapolis-Saint Paul International Airport", "Minneapolis", 44.8848, -93.2223},
	"KDTW": {"Detroit Metropolitan Airport", "Detroit", 42.2162, -83.3554},
	"KPHL": {"Philadelphia International Airport", "Philadelphia", 39.8729, -75.2437},
	"KSLC": {"Salt Lake City International Airport", "Salt Lake City", 40.7899, -111.9791},
	"KBWI": {"Baltimore/Washington International Airport", "Baltimore", 39.1774, -76.6684},
	"KSAN": {"San Diego International Airport", "San Diego", 32.7338, -117.1933},
	"KTPA": {"Tampa International Airport", "Tampa", 27.9755, -82.5332},

	// International
	"EGLL": {"London Heathrow Airport", "London", 51.4700, -0.4543},
	"LFPG": {"Charles de Gaulle Airport", "Paris", 49.0097, 2.5479},
	"EDDF": {"Frankfurt Airport", "Frankfurt", 50.0379, 8.5622},
	"EHAM": {"Amsterdam Airport Schiphol", "Amsterdam", 52.3105, 4.7683},
	"LIRF": {"Leonardo da Vinci International Airport", "Rome", 41.8003, 12.2389},
	"LEMD": {"Adolfo Suárez Madrid-Barajas Airport", "Madrid", 40.4839, -3.5680},
	"RJTT": {"Tokyo Haneda Airport", "Tokyo", 35.5494, 139.7798},
	"RJAA": {"Narita International Airport", "Tokyo", 35.7720, 140.3928},
	"ZBAA": {"Beijing Capital International Airport", "Beijing", 40.0799, 116.6031},
	"YSSY": {"Sydney Kingsford Smith Airport", "Sydney", -33.9399, 151.1753},
	"CYYZ": {"Toronto Pearson International Airport", "Toronto", 43.6777, -79.6248},
	"CYVR": {"Vancouver International Airport", "Vancouver", 49.1967, -123.1815},
	"SBGR": {"São Paulo/Guarulhos International Airport", "São Paulo", -23.4356, -46.4731},
	"ZSPD": {"Shanghai Pudong International Airport", "Shanghai", 31.1434, 121.8052},
	"VHHH": {"Hong Kong International Airport", "Hong Kong", 22.3080, 113.9185},
	"WSSS": {"Singapore Changi Airport", "Singapore", 1.3644, 103.9915},
	"YMML": {"Melbourne Airport", "Melbourne", -37.6733, 144.8433},
}

// LookupAirport returns the registry entry for an ICAO code, matching
// case-insensitively.
func LookupAirport(code string) (dtos.Airport, bool) {
	key := strings.ToUpper(strings.TrimSpace(code))
	info, ok := airports[key]
	if !ok {
		return dtos.Airport{}, false
	}
	return dtos.Airport{
		Code:      key,
		Name:      info.Name,
		City:      info.City,
		Latitude:  info.Lat,
		Longitude: info.Lon,
	}, true
}

// ListAirports returns all registry entries sorted by ICAO code.
func ListAirports() []dtos.Airport {
	out := make([]dtos.Airport, 0, len(airports))
	for code, info := range airports {
		out = append(out, dtos.Airport{
			Code:      code,
			Name:      info.Name,
			City:      info.City,
			Latitude:  info.Lat,
			Longitude: info.Lon,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
