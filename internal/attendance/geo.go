package attendance

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const earthRadiusMeters = 6371000.0

// haversineMeters menghitung jarak great-circle dua koordinat dalam meter.
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Coordinate menerima angka maupun string dari JSON. Mobile client lama
// mengirim koordinat sebagai string, yang baru sebagai number.
type Coordinate struct {
	raw   string
	value float64
	valid bool
}

func (c *Coordinate) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*c = Coordinate{}
		return nil
	}
	s = strings.Trim(s, `"`)

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		// Simpan raw-nya saja; service yang memutuskan menolak
		*c = Coordinate{raw: s}
		return nil
	}
	*c = Coordinate{raw: s, value: v, valid: true}
	return nil
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.valid {
		return json.Marshal(nil)
	}
	return json.Marshal(c.value)
}

func (c Coordinate) Float64() (float64, bool) {
	return c.value, c.valid
}

func (c Coordinate) String() string {
	if c.valid {
		return strconv.FormatFloat(c.value, 'f', -1, 64)
	}
	return c.raw
}
