package usecase

import (
	"math"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"

	"stock_dashboard/internal/feature/chart/domain/entity"
	tsentity "stock_dashboard/internal/feature/timeseries/domain/entity"
)

const (
	// GridLineCount is the number of horizontal guides, spanning the padded price domain.
	GridLineCount = 5
	// DomainPadding widens the price domain so the extremes are not clipped.
	DomainPadding = 0.05

	legendOffsetX = 150
	legendOffsetY = 20

	dividerLabel       = "Prediction"
	dividerLabelWidth  = 80
	dividerLabelHeight = 20
	dividerLabelTop    = 10
	dividerTextBase    = 12
)

// Chart palette.
var (
	HistoricalStyle = entity.Style{Stroke: "#1e40af", StrokeWidth: 2}
	PredictionStyle = entity.Style{Stroke: "#60a5fa", StrokeWidth: 2, Dash: "5,5"}
	BandStyle       = entity.Style{Fill: "#93c5fd", FillOpacity: 0.3}
	DividerStyle    = entity.Style{Stroke: "#475569", StrokeWidth: 1, Dash: "4,4"}
	DividerBoxStyle = entity.Style{Fill: "#475569", FillOpacity: 1}
	GridStyle       = entity.Style{Stroke: "#e2e8f0", StrokeWidth: 1}
)

// linear maps a domain onto [0, 1]. A zero-width domain maps every value to 0.
type linear struct {
	lo, hi float64
}

func (s linear) frac(v float64) float64 {
	d := s.hi - s.lo
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	f := (v - s.lo) / d
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}

// Project converts a series into drawing instructions for vp.
// It is pure and total: degenerate domains and viewports yield finite
// coordinates rather than errors.
func Project(ts tsentity.TimeSeries, vp entity.Viewport) entity.Scene {
	vp = vp.Sanitized()

	prices := make([]float64, 0, len(ts.Historical)+3*len(ts.Predictions))
	dates := make([]float64, 0, len(ts.Historical)+len(ts.Predictions))
	for _, h := range ts.Historical {
		prices = append(prices, h.Close)
		dates = append(dates, unix(h.Date))
	}
	for _, p := range ts.Predictions {
		prices = append(prices, p.Prediction)
		if p.UpperBound != nil {
			prices = append(prices, *p.UpperBound)
		}
		if p.LowerBound != nil {
			prices = append(prices, *p.LowerBound)
		}
		dates = append(dates, unix(p.Date))
	}

	scene := entity.Scene{Viewport: vp}
	var minT, maxT float64
	if len(prices) > 0 {
		scene.MinPrice = floats.Min(prices) * (1 - DomainPadding)
		scene.MaxPrice = floats.Max(prices) * (1 + DomainPadding)
		minT, maxT = floats.Min(dates), floats.Max(dates)
		scene.MinDate = time.Unix(int64(minT), 0).UTC()
		scene.MaxDate = time.Unix(int64(maxT), 0).UTC()
	}

	xs := linear{lo: minT, hi: maxT}
	ys := linear{lo: scene.MinPrice, hi: scene.MaxPrice}
	x := func(t time.Time) float64 { return xs.frac(unix(t)) * vp.Width }
	y := func(p float64) float64 { return vp.Height - ys.frac(p)*vp.Height }

	hist := make([]entity.Point, 0, len(ts.Historical))
	for _, h := range ts.Historical {
		hist = append(hist, entity.Point{X: x(h.Date), Y: y(h.Close)})
	}
	scene.Historical = entity.Polyline{Points: hist, Path: path(hist, false), Style: HistoricalStyle}

	n := len(ts.Predictions)
	pred := make([]entity.Point, 0, n)
	band := make([]entity.Point, 2*n)
	for i, p := range ts.Predictions {
		px := x(p.Date)
		pred = append(pred, entity.Point{X: px, Y: y(p.Prediction)})
		band[i] = entity.Point{X: px, Y: y(boundOr(p.UpperBound, p.Prediction))}
		band[2*n-1-i] = entity.Point{X: px, Y: y(boundOr(p.LowerBound, p.Prediction))}
	}
	scene.Prediction = entity.Polyline{Points: pred, Path: path(pred, false), Style: PredictionStyle}
	scene.Band = entity.Polygon{Points: band, Path: path(band, true), Style: BandStyle}

	if len(ts.Historical) > 0 && n > 0 {
		scene.Divider = divider(x(ts.Predictions[0].Date), vp)
	}

	scene.Grid = make([]entity.GridLine, 0, GridLineCount)
	for i := 0; i < GridLineCount; i++ {
		price := scene.MinPrice + (scene.MaxPrice-scene.MinPrice)*float64(i)/float64(GridLineCount-1)
		gy := y(price)
		scene.Grid = append(scene.Grid, entity.GridLine{
			Price: price,
			Y:     gy,
			X1:    0,
			X2:    vp.Width,
			Style: GridStyle,
			Label: entity.Label{Text: strconv.FormatFloat(price, 'f', 2, 64), X: 0, Y: gy, Anchor: "end"},
		})
	}

	scene.Legend = entity.Legend{
		Origin: entity.Point{X: vp.Width - legendOffsetX, Y: legendOffsetY},
		Entries: []entity.LegendEntry{
			{Y: 0, Style: HistoricalStyle, Label: entity.Label{Text: "Historical", X: 25, Y: 0, Anchor: "start"}},
			{Y: 20, Style: PredictionStyle, Label: entity.Label{Text: "Prediction", X: 25, Y: 20, Anchor: "start"}},
		},
	}

	return scene
}

// divider places the marker line and its caption box, keeping the box inside vp.
func divider(dx float64, vp entity.Viewport) *entity.Divider {
	w := math.Min(dividerLabelWidth, vp.Width)
	h := math.Min(dividerLabelHeight, vp.Height)
	box := entity.Rect{
		X:      clamp(dx-dividerLabelWidth/2, 0, vp.Width-w),
		Y:      clamp(dividerLabelTop, 0, vp.Height-h),
		Width:  w,
		Height: h,
	}

	return &entity.Divider{
		X:        dx,
		Y1:       0,
		Y2:       vp.Height,
		Style:    DividerStyle,
		LabelBox: box,
		BoxStyle: DividerBoxStyle,
		Label: entity.Label{
			Text:   dividerLabel,
			X:      box.X + box.Width/2,
			Y:      clamp(box.Y+dividerTextBase, 0, vp.Height),
			Anchor: "middle",
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func boundOr(b *float64, fallback float64) float64 {
	if b == nil {
		return fallback
	}
	return *b
}

func unix(t time.Time) float64 {
	return float64(t.Unix())
}

// path renders points as an SVG path: "M x,y L x,y ...", closed with Z when closed is set.
func path(pts []entity.Point, closed bool) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(strconv.FormatFloat(p.X, 'f', 2, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Y, 'f', 2, 64))
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}
