package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineZeroDistanceForSamePoint(t *testing.T) {
	d := haversineMeters(-6.969182, 107.629251, -6.969182, 107.629251)
	assert.Zero(t, d)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Jakarta -> Bandung, kurang lebih 116 km
	d := haversineMeters(-6.2088, 106.8456, -6.9175, 107.6191)
	assert.InDelta(t, 116000, d, 5000)
}

func TestHaversineSymmetric(t *testing.T) {
	a := haversineMeters(-6.2, 106.8, -6.9, 107.6)
	b := haversineMeters(-6.9, 107.6, -6.2, 106.8)
	assert.InDelta(t, a, b, 0.0001)
}

func TestCoordinateAcceptsNumberAndString(t *testing.T) {
	var payload struct {
		Lat Coordinate `json:"lat"`
		Lon Coordinate `json:"lon"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lat": -6.969182, "lon": "107.629251"}`), &payload))

	lat, ok := payload.Lat.Float64()
	require.True(t, ok)
	assert.InDelta(t, -6.969182, lat, 1e-9)

	lon, ok := payload.Lon.Float64()
	require.True(t, ok)
	assert.InDelta(t, 107.629251, lon, 1e-9)
}

func TestCoordinateRejectsGarbageWithoutError(t *testing.T) {
	var payload struct {
		Lat Coordinate `json:"lat"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lat": "not-a-number"}`), &payload))

	_, ok := payload.Lat.Float64()
	assert.False(t, ok)
	assert.Equal(t, "not-a-number", payload.Lat.String())
}

func TestCoordinateEmptyAndNull(t *testing.T) {
	var payload struct {
		Lat Coordinate `json:"lat"`
		Lon Coordinate `json:"lon"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lat": null, "lon": ""}`), &payload))

	_, ok := payload.Lat.Float64()
	assert.False(t, ok)
	assert.Empty(t, payload.Lat.String())
	assert.Empty(t, payload.Lon.String())
}
