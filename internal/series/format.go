package series

import (
	"math"

	"github.com/shopspring/decimal"
)

// decimals is the fixed precision of every value handed to the grid and exports.
const decimals = 6

type Palette []string

var DefaultPalette = Palette{
	"#2563eb",
	"#dc2626",
	"#16a34a",
	"#f59e0b",
	"#8b5cf6",
	"#ec4899",
}

// ColorCursor hands out palette colors in order and wraps around.
// It is not safe for concurrent use; every chart build owns its own cursor.
type ColorCursor struct {
	palette Palette
	next    int
}

func NewColorCursor(palette Palette) *ColorCursor {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &ColorCursor{palette: palette}
}

func (c *ColorCursor) Next() string {
	color := c.palette[c.next%len(c.palette)]
	c.next++
	return color
}

// Round rounds half away from zero at 6 decimal places, working on the
// shortest decimal representation of v (so 2.0000005 becomes 2.000001).
func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(decimals).InexactFloat64()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// reciprocal returns 1/v for strictly positive finite rates.
// Zero, negative and non-finite rates have no reciprocal.
func reciprocal(v float64) (float64, bool) {
	if !(v > 0) || math.IsInf(v, 1) {
		return 0, false
	}
	inv := 1 / v
	if !finite(inv) {
		return 0, false
	}
	return inv, true
}
