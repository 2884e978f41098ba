package body

import (
	"fmt"
	"math"
)

type Sphere struct {
	radius float64
}

// NewSphere replaces a non-positive or NaN radius with 1.
func NewSphere(radius float64) Sphere {
	if !(radius > 0) {
		radius = 1.0
	}
	return Sphere{radius: radius}
}

func (s Sphere) Radius() float64 {
	return s.radius
}

func (s Sphere) SurfaceArea() float64 {
	return 4.0 * math.Pi * s.radius * s.radius
}

func (s Sphere) Volume() float64 {
	return (4.0 / 3.0) * math.Pi * math.Pow(s.radius, 3)
}

func (s Sphere) Describe() string {
	return fmt.Sprintf("Body: Sphere\n  Radius (r): %s", formatDimension(s.radius))
}
