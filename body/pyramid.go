package body

import (
	"fmt"
	"math"
)

// Pyramid has a rectangular base and its apex directly above the base center.
type Pyramid struct {
	length float64
	width  float64
	height float64
}

// NewPyramid resets all three dimensions to 1 when any of them is
// non-positive or NaN. Unlike NewSphere the correction is never per field.
func NewPyramid(length, width, height float64) Pyramid {
	if !(length > 0 && width > 0 && height > 0) {
		length, width, height = 1.0, 1.0, 1.0
	}
	return Pyramid{length: length, width: width, height: height}
}

func (p Pyramid) Length() float64 { return p.length }
func (p Pyramid) Width() float64  { return p.width }
func (p Pyramid) Height() float64 { return p.height }

func (p Pyramid) baseArea() float64 {
	return p.length * p.width
}

// lateralArea sums the four triangular faces. The pair standing on the
// length edges has slant height sqrt(h^2 + (w/2)^2) and the other pair
// sqrt(h^2 + (l/2)^2).
func (p Pyramid) lateralArea() float64 {
	slantAlongLength := math.Sqrt(p.height*p.height + (p.width/2)*(p.width/2))
	slantAlongWidth := math.Sqrt(p.height*p.height + (p.length/2)*(p.length/2))
	return p.length*slantAlongLength + p.width*slantAlongWidth
}

func (p Pyramid) SurfaceArea() float64 {
	return p.baseArea() + p.lateralArea()
}

func (p Pyramid) Volume() float64 {
	return (1.0 / 3.0) * p.length * p.width * p.height
}

func (p Pyramid) Describe() string {
	return fmt.Sprintf("Body: Pyramid (rectangular base)\n  Base length (a): %s\n  Base width (b): %s\n  Height (h): %s",
		formatDimension(p.length), formatDimension(p.width), formatDimension(p.height))
}
