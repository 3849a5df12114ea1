package profile

import (
	"github.com/bgraf/elevprofile/geotrack"
	"github.com/bgraf/elevprofile/option"
)

// Anchor is a waypoint matched to the row of a segment closest to it.
type Anchor struct {
	Waypoint geotrack.Waypoint
	Row      int
	Distance float64 // miles along the segment
	Alt      float64 // feet
	Meters   float64 // distance between waypoint and row
}

// Nearest finds the row closest to the waypoint among those strictly closer than
// thresholdMeters. On equal distances the first row wins.
func Nearest(rows []Row, waypoint geotrack.Waypoint, thresholdMeters float64) option.Option[Anchor] {
	best := -1
	bestMeters := 0.0

	for i, row := range rows {
		d := Meters(row.Lat, row.Lon, waypoint.Lat, waypoint.Lon)
		if d < thresholdMeters && (best < 0 || d < bestMeters) {
			best = i
			bestMeters = d
		}
	}

	if best < 0 {
		return option.None[Anchor]()
	}

	return option.Some(Anchor{
		Waypoint: waypoint,
		Row:      best,
		Distance: rows[best].Distance,
		Alt:      rows[best].Alt,
		Meters:   bestMeters,
	})
}

// MatchWaypoints returns the anchors of all waypoints near the segment, in waypoint
// order. Waypoints without a row in range are left out.
func MatchWaypoints(rows []Row, waypoints []geotrack.Waypoint, thresholdMeters float64) []Anchor {
	var anchors []Anchor

	for _, w := range waypoints {
		if anchor := Nearest(rows, w, thresholdMeters); anchor.IsSome() {
			anchors = append(anchors, anchor.Get())
		}
	}

	return anchors
}
