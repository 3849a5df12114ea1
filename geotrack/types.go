package geotrack

import "github.com/bgraf/elevprofile/option"

// Point is a recorded track point. Elevation is in meters.
type Point struct {
	Lat, Lon  float64
	Elevation float64
}

// Segment is a contiguous, ordered run of recorded points.
type Segment struct {
	Points []Point
}

type Track struct {
	Name     option.Option[string]
	Segments []Segment
}

// Waypoint is a named point of interest, independent of any track.
type Waypoint struct {
	Lat, Lon float64
	Name     string
}

// Collection holds everything read from one or more track files.
type Collection struct {
	Waypoints []Waypoint
	Tracks    []Track
}

// Merge appends the waypoints and tracks of other. Duplicates are kept.
func (c *Collection) Merge(other *Collection) {
	c.Waypoints = append(c.Waypoints, other.Waypoints...)
	c.Tracks = append(c.Tracks, other.Tracks...)
}

func (c *Collection) SegmentCount() int {
	n := 0
	for _, track := range c.Tracks {
		n += len(track.Segments)
	}
	return n
}
