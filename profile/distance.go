package profile

import "github.com/jftuga/geodist"

// Miles returns the great-circle distance between two coordinates in miles.
func Miles(lat1, lon1, lat2, lon2 float64) float64 {
	mi, _ := geodist.HaversineDistance(geodist.Coord{Lat: lat1, Lon: lon1}, geodist.Coord{Lat: lat2, Lon: lon2})
	return mi
}

// Meters returns the great-circle distance between two coordinates in meters.
func Meters(lat1, lon1, lat2, lon2 float64) float64 {
	_, km := geodist.HaversineDistance(geodist.Coord{Lat: lat1, Lon: lon1}, geodist.Coord{Lat: lat2, Lon: lon2})
	return km * 1000
}
