package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GauravSharma9258/DBMS-Project/internal/geo"
)

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	p := geo.NewPoint(12.9716, 77.5946)

	km, ok := geo.DistanceKm(p, p)
	require.True(t, ok)
	assert.Equal(t, 0.0, km)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Bangalore city center to Bangalore airport, roughly 32 km.
	a := geo.NewPoint(12.9716, 77.5946)
	b := geo.NewPoint(13.1986, 77.7066)

	km, ok := geo.DistanceKm(a, b)
	require.True(t, ok)
	assert.InDelta(t, 28.0, km, 2.0)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := geo.NewPoint(12.9716, 77.5946)
	b := geo.NewPoint(28.6139, 77.2090)

	ab, ok := geo.DistanceKm(a, b)
	require.True(t, ok)
	ba, ok := geo.DistanceKm(b, a)
	require.True(t, ok)

	assert.Equal(t, ab, ba)
	assert.Greater(t, ab, 0.0)
}

func TestDistanceKm_Antipodal(t *testing.T) {
	a := geo.NewPoint(0, 0)
	b := geo.NewPoint(0, 180)

	km, ok := geo.DistanceKm(a, b)
	require.True(t, ok)
	// Half the Earth's circumference at radius 6371 km.
	assert.InDelta(t, 20015.0, km, 5.0)
}

func TestDistanceKm_MissingCoordinates(t *testing.T) {
	lat := 12.9716
	full := geo.NewPoint(12.9716, 77.5946)

	tests := []struct {
		name string
		a    geo.Point
		b    geo.Point
	}{
		{"both empty", geo.Point{}, geo.Point{}},
		{"first missing lng", geo.Point{Lat: &lat}, full},
		{"second missing lat", full, geo.Point{Lng: &lat}},
		{"second empty", full, geo.Point{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			km, ok := geo.DistanceKm(tc.a, tc.b)
			assert.False(t, ok)
			assert.Equal(t, 0.0, km)
		})
	}
}

func TestDistanceKm_NonNegative(t *testing.T) {
	points := []geo.Point{
		geo.NewPoint(12.9716, 77.5946),
		geo.NewPoint(-33.8688, 151.2093),
		geo.NewPoint(51.5074, -0.1278),
		geo.NewPoint(90, 0),
		geo.NewPoint(-90, 0),
	}

	for _, a := range points {
		for _, b := range points {
			km, ok := geo.DistanceKm(a, b)
			require.True(t, ok)
			assert.GreaterOrEqual(t, km, 0.0)
		}
	}
}
