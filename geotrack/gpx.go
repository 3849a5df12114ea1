package geotrack

import (
	"fmt"

	"github.com/bgraf/elevprofile/option"
	"github.com/tkrajina/gpxgo/gpx"
)

func loadGPXTrack(trackFilePath string) (*Collection, error) {
	gpxData, err := gpx.ParseFile(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("read GPX file: %w", err)
	}

	return fromGPX(gpxData), nil
}

func fromGPX(gpxData *gpx.GPX) *Collection {
	collection := &Collection{}

	for _, w := range gpxData.Waypoints {
		collection.Waypoints = append(collection.Waypoints, Waypoint{
			Lat:  w.Latitude,
			Lon:  w.Longitude,
			Name: w.Name,
		})
	}

	for _, track := range gpxData.Tracks {
		t := Track{Name: option.NonZero(track.Name)}

		for _, segment := range track.Segments {
			s := Segment{Points: make([]Point, 0, len(segment.Points))}
			for _, p := range segment.Points {
				// Points without <ele> are plotted at sea level.
				s.Points = append(s.Points, Point{
					Lat:       p.Latitude,
					Lon:       p.Longitude,
					Elevation: p.Elevation.Value(),
				})
			}
			t.Segments = append(t.Segments, s)
		}

		collection.Tracks = append(collection.Tracks, t)
	}

	return collection
}
