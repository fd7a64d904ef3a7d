package page

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ChartKind selects how the browser draws a chart.
type ChartKind string

const (
	ChartLine  ChartKind = "line"
	ChartBar   ChartKind = "bar"
	ChartRadar ChartKind = "radar"
)

// Palette used across pages.
const (
	ColorBlue   = "#3b82f6"
	ColorPurple = "#a855f7"
	ColorOrange = "#f97316"
	ColorGreen  = "#10b981"
)

// Chart is the serializable description of one chart. The embedded script
// turns it into a canvas drawing.
type Chart struct {
	ID         string    `json:"id"`
	Kind       ChartKind `json:"kind"`
	Labels     []string  `json:"labels"`
	Series     []Series  `json:"series"`
	Horizontal bool      `json:"horizontal,omitempty"`
	Min        *float64  `json:"min,omitempty"`
	Max        *float64  `json:"max,omitempty"`
	AxisLabel  string    `json:"axisLabel,omitempty"`
	Height     int       `json:"height"`
	Legend     bool      `json:"legend,omitempty"`
}

// Series is one plotted line, bar set or radar area.
type Series struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Values []float64 `json:"values"`
	Width  int       `json:"width,omitempty"`
	Dashed bool      `json:"dashed,omitempty"`
	Points bool      `json:"points,omitempty"`
}

func bounds(lo, hi float64) (*float64, *float64) {
	return &lo, &hi
}

func floats(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.InexactFloat64()
	}
	return out
}

func hsl(hue int) string {
	return fmt.Sprintf("hsl(%d, 70%%, 50%%)", hue%360)
}
