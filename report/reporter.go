// Package report prints bodies with a fixed number of fractional digits.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smallken/geometric-bodies/body"
)

var Separator = strings.Repeat("-", 42)

type Reporter struct {
	w         io.Writer
	precision int32
}

func New(w io.Writer, precision int32) *Reporter {
	return &Reporter{w: w, precision: precision}
}

func (r *Reporter) Header() error {
	_, err := fmt.Fprintln(r.w, "--- Late Binding Demonstration (Dynamic Polymorphism) ---\n"+
		"The collection holds bodies of different kinds, all reached\n"+
		"through the single Body interface.")
	return err
}

// Report prints b. Which formulas run is decided by the concrete body
// behind the interface, not by the reporter.
func (r *Reporter) Report(b body.Body) error {
	_, err := fmt.Fprintf(r.w, "%s\n%s\n  Surface area: %s\n  Volume: %s\n",
		Separator, b.Describe(), r.Format(b.SurfaceArea()), r.Format(b.Volume()))
	return err
}

func (r *Reporter) Footer() error {
	_, err := fmt.Fprintln(r.w, Separator)
	return err
}

// Format rounds v to the reporter's precision. Values that overflowed to
// infinity are printed as +Inf rather than rounded.
func (r *Reporter) Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(r.precision)
}
