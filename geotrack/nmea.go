package geotrack

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrianmo/go-nmea"
	"github.com/bgraf/elevprofile/option"
)

// loadNMEATrack reads the GGA fixes of a raw NMEA log as a single track with one
// segment, named after the file. NMEA logs carry no waypoints.
func loadNMEATrack(trackFilePath string) (*Collection, error) {
	f, err := os.Open(trackFilePath)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	var segment Segment

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("parse NMEA sentence: %w", err)
		}

		if sentence.DataType() != nmea.TypeGGA {
			continue
		}

		gga := sentence.(nmea.GGA)
		if gga.FixQuality == nmea.Invalid {
			continue
		}

		segment.Points = append(segment.Points, Point{
			Lat:       gga.Latitude,
			Lon:       gga.Longitude,
			Elevation: gga.Altitude,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read NMEA file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(trackFilePath), filepath.Ext(trackFilePath))

	return &Collection{
		Tracks: []Track{{
			Name:     option.NonZero(name),
			Segments: []Segment{segment},
		}},
	}, nil
}
