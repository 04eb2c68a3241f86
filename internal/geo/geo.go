package geo

import "math"

const earthRadiusKm = 6371

// Point is a pair of coordinates in degrees. Either field may be nil
// when the source record (donation or user profile) has no location.
type Point struct {
	Lat *float64
	Lng *float64
}

// NewPoint builds a fully populated Point.
func NewPoint(lat, lng float64) Point {
	return Point{Lat: &lat, Lng: &lng}
}

// Complete reports whether both coordinates are present.
func (p Point) Complete() bool {
	return p.Lat != nil && p.Lng != nil
}

// DistanceKm returns the great-circle distance between a and b using
// the haversine formula. ok is false when either point is missing a
// coordinate; callers must tolerate incomplete profiles.
func DistanceKm(a, b Point) (km float64, ok bool) {
	if !a.Complete() || !b.Complete() {
		return 0, false
	}

	lat1 := toRad(*a.Lat)
	lat2 := toRad(*b.Lat)
	dLat := toRad(*b.Lat - *a.Lat)
	dLng := toRad(*b.Lng - *a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + sinLng*sinLng*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, true
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
