package body

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	KindSphere  = "sphere"
	KindPyramid = "pyramid"
)

var ErrNonPositiveDimension = errors.New("dimension must be positive")

type Surface interface {
	SurfaceArea() float64
}

// Body is a closed 3D shape. All methods depend only on the dimensions fixed
// at construction, so repeated calls return identical results.
type Body interface {
	Surface
	Volume() float64
	Describe() string
}

// ValidateSphere reports whether NewSphere would have to correct the radius.
func ValidateSphere(radius float64) error {
	if !(radius > 0) {
		return fmt.Errorf("sphere radius %v: %w", radius, ErrNonPositiveDimension)
	}
	return nil
}

// ValidatePyramid reports the first dimension NewPyramid would reset.
func ValidatePyramid(length, width, height float64) error {
	dims := []struct {
		name  string
		value float64
	}{
		{"base length", length},
		{"base width", width},
		{"height", height},
	}
	for _, d := range dims {
		if !(d.value > 0) {
			return fmt.Errorf("pyramid %s %v: %w", d.name, d.value, ErrNonPositiveDimension)
		}
	}
	return nil
}

func formatDimension(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).String()
}
