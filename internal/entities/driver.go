package entities

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DriverSnapshot is the driver eligibility view owned by the
// driver-profile subsystem. This service only reads it.
type DriverSnapshot struct {
	ID        uuid.UUID
	Location  GeoPoint
	Available bool
	Verified  bool
	UpdatedAt time.Time
}

// DriverCandidate is one geo query hit: a driver and its distance from
// the request origin.
type DriverCandidate struct {
	DriverID       uuid.UUID
	DistanceMeters float64
}

type GeoPoint struct {
	Lat float64
	Lon float64
}

const earthRadiusMeters = 6371000.0

// DistanceMeters returns the haversine great-circle distance between two
// points.
func (p GeoPoint) DistanceMeters(other GeoPoint) float64 {
	latA := p.Lat * math.Pi / 180
	latB := other.Lat * math.Pi / 180
	dLat := (other.Lat - p.Lat) * math.Pi / 180
	dLon := (other.Lon - p.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}
