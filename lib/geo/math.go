package geo

import "math"

func DegreesToRadians(deg float64) float64 {
	return math.Pi * deg / 180
}
