// Package entity defines the declarative drawing model produced by the
// chart projector. Nothing here renders; a client turns it into SVG or
// canvas calls.
package entity

import (
	"math"
	"time"
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Sanitized returns v with non-positive or non-finite dimensions replaced by 0.
func (v Viewport) Sanitized() Viewport {
	return Viewport{Width: sanitize(v.Width), Height: sanitize(v.Height)}
}

// Valid reports whether both dimensions are positive finite numbers.
func (v Viewport) Valid() bool {
	return sanitize(v.Width) > 0 && sanitize(v.Height) > 0
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	return f
}

// Point is a screen coordinate; Y grows downward.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Style carries stroke and fill attributes. Empty strings mean "none".
type Style struct {
	Stroke      string
	StrokeWidth float64
	Dash        string
	Fill        string
	FillOpacity float64
}

// Polyline is an open path through Points. Path is its SVG "d" attribute.
type Polyline struct {
	Points []Point
	Path   string
	Style  Style
}

// Polygon is a closed path through Points.
type Polygon struct {
	Points []Point
	Path   string
	Style  Style
}

// Label is a piece of text anchored at (X, Y).
type Label struct {
	Text   string
	X      float64
	Y      float64
	Anchor string // start, middle or end
}

// Divider marks where the forecast begins.
type Divider struct {
	X        float64
	Y1       float64
	Y2       float64
	Style    Style
	LabelBox Rect
	BoxStyle Style
	Label    Label
}

// GridLine is a horizontal guide at a price level.
type GridLine struct {
	Price float64
	Y     float64
	X1    float64
	X2    float64
	Style Style
	Label Label
}

// LegendEntry is a sample stroke followed by its caption, relative to the legend origin.
type LegendEntry struct {
	Y     float64
	Style Style
	Label Label
}

// Legend is anchored at Origin, which may fall outside the viewport for narrow charts.
type Legend struct {
	Origin  Point
	Entries []LegendEntry
}

// Scene is everything needed to draw one chart.
type Scene struct {
	Viewport   Viewport
	MinPrice   float64
	MaxPrice   float64
	MinDate    time.Time
	MaxDate    time.Time
	Historical Polyline
	Band       Polygon
	Prediction Polyline
	Divider    *Divider // nil unless both windows are non-empty
	Grid       []GridLine
	Legend     Legend
}
