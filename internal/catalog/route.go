package catalog

import (
	"fmt"
	"math"
)

// Route is the input handed to the external map/route renderer: a walking
// route from the first stop to the last, visiting the middle stops in order.
type Route struct {
	Origin      Stop
	Waypoints   []Stop
	Destination Stop

	// TotalKm is the straight-line leg-by-leg distance, for display only.
	// The real walking distance comes from the external routing service.
	TotalKm float64
}

// BuildRoute derives the route for an event's stop list. A single stop yields
// a route with no waypoints and zero distance.
func BuildRoute(stops []Stop) (Route, error) {
	if len(stops) == 0 {
		return Route{}, fmt.Errorf("event has no stops")
	}

	r := Route{
		Origin:      stops[0],
		Destination: stops[len(stops)-1],
	}
	if len(stops) > 2 {
		r.Waypoints = make([]Stop, len(stops)-2)
		copy(r.Waypoints, stops[1:len(stops)-1])
	}
	for i := 1; i < len(stops); i++ {
		r.TotalKm += haversineKm(stops[i-1].Lat, stops[i-1].Lng, stops[i].Lat, stops[i].Lng)
	}
	return r, nil
}

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance between two coordinates.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
