package profile

import "github.com/bgraf/elevprofile/geotrack"

// FeetPerMeter converts elevations. Must stay 3.281, not 3.28084.
const FeetPerMeter = 3.281

// Row is one point of a segment annotated with its cumulative distance.
type Row struct {
	Lon      float64 `csv:"lon"`
	Lat      float64 `csv:"lat"`
	Alt      float64 `csv:"alt"`      // feet
	Distance float64 `csv:"distance"` // miles from the first point
}

// BuildRows computes the distance table of a segment, one row per point in order.
func BuildRows(segment geotrack.Segment) []Row {
	rows := make([]Row, 0, len(segment.Points))

	distance := 0.0
	for i, p := range segment.Points {
		if i > 0 {
			prev := segment.Points[i-1]
			distance += Miles(prev.Lat, prev.Lon, p.Lat, p.Lon)
		}

		rows = append(rows, Row{
			Lon:      p.Lon,
			Lat:      p.Lat,
			Alt:      p.Elevation * FeetPerMeter,
			Distance: distance,
		})
	}

	return rows
}

// TotalDistance is the cumulative distance of the last row, or 0 for an empty table.
func TotalDistance(rows []Row) float64 {
	if len(rows) == 0 {
		return 0
	}
	return rows[len(rows)-1].Distance
}
