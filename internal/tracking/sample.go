package tracking

import (
	"fmt"
	"math/rand"
	"time"

	"towerboard/internal/models/dtos"
)

var sampleAirlines = []string{"UAL", "AAL", "DAL", "SWA", "JBU", "BAW", "AFR", "DLH", "KLM", "EZY"}

// sampleArea generates plausible traffic inside the bounding box so the
// dashboard stays usable when the upstream is down.
func sampleArea(airport dtos.Airport, radiusNM int, minLat, maxLat, minLon, maxLon float64) *dtos.AircraftArea {
	n := 8 + rand.Intn(8)
	aircraft := make([]dtos.Aircraft, 0, n)

	for i := 0; i < n; i++ {
		altFt := 0
		gs := 0.0
		onGround := false
		switch rand.Intn(4) {
		case 0:
			altFt = rand.Intn(2000)
			gs = 50 + rand.Float64()*150
			onGround = altFt < 100
		case 1:
			altFt = 2000 + rand.Intn(8000)
			gs = 250 + rand.Float64()*150
		case 2:
			altFt = 10000 + rand.Intn(15000)
			gs = 350 + rand.Float64()*150
		default:
			altFt = 25000 + rand.Intn(15000)
			gs = 420 + rand.Float64()*180
		}

		airline := sampleAirlines[rand.Intn(len(sampleAirlines))]
		num := 100 + rand.Intn(900)

		aircraft = append(aircraft, dtos.Aircraft{
			Hex:         fmt.Sprintf("%06x", rand.Intn(0xffffff)),
			Callsign:    fmt.Sprintf("%s%d", airline, num),
			Latitude:    minLat + rand.Float64()*(maxLat-minLat),
			Longitude:   minLon + rand.Float64()*(maxLon-minLon),
			AltitudeFt:  altFt,
			GroundSpeed: gs,
			Track:       rand.Float64() * 360,
			Squawk:      fmt.Sprintf("%04d", 1000+rand.Intn(6778)),
			OnGround:    onGround,
		})
	}

	return &dtos.AircraftArea{
		Airport:   airport.Code,
		RadiusNM:  radiusNM,
		Aircraft:  aircraft,
		Source:    "sample",
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
