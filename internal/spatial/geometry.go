package spatial

// Point is a latitude/longitude pair in degrees
type Point struct {
	Lat float64
	Lon float64
}

// PathLengthKm sums the great-circle hops along points, in order
func PathLengthKm(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	var total float64
	for i := 1; i < len(points); i++ {
		total += DistanceKm(points[i-1].Lat, points[i-1].Lon, points[i].Lat, points[i].Lon)
	}
	return total
}
