// Package dto defines data transfer objects for the chart HTTP API.
package dto

import (
	"stock_dashboard/internal/feature/chart/domain/entity"
)

type PointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RectResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type StyleResponse struct {
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Dash        string  `json:"strokeDasharray,omitempty"`
	Fill        string  `json:"fill,omitempty"`
	FillOpacity float64 `json:"fillOpacity,omitempty"`
}

type LabelResponse struct {
	Text   string  `json:"text"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Anchor string  `json:"anchor"`
}

type PathResponse struct {
	D      string          `json:"d"`
	Points []PointResponse `json:"points"`
	Style  StyleResponse   `json:"style"`
}

type DividerResponse struct {
	X        float64       `json:"x"`
	Y1       float64       `json:"y1"`
	Y2       float64       `json:"y2"`
	Style    StyleResponse `json:"style"`
	LabelBox RectResponse  `json:"labelBox"`
	BoxStyle StyleResponse `json:"boxStyle"`
	Label    LabelResponse `json:"label"`
}

type GridLineResponse struct {
	Price float64       `json:"price"`
	Y     float64       `json:"y"`
	X1    float64       `json:"x1"`
	X2    float64       `json:"x2"`
	Style StyleResponse `json:"style"`
	Label LabelResponse `json:"label"`
}

type LegendEntryResponse struct {
	Y     float64       `json:"y"`
	Style StyleResponse `json:"style"`
	Label LabelResponse `json:"label"`
}

type LegendResponse struct {
	Origin  PointResponse         `json:"origin"`
	Entries []LegendEntryResponse `json:"entries"`
}

// SceneResponse is the body of GET /chart/:symbol.
type SceneResponse struct {
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	MinPrice   float64            `json:"minPrice"`
	MaxPrice   float64            `json:"maxPrice"`
	MinDate    string             `json:"minDate"`
	MaxDate    string             `json:"maxDate"`
	Historical PathResponse       `json:"historical"`
	Band       PathResponse       `json:"band"`
	Prediction PathResponse       `json:"prediction"`
	Divider    *DividerResponse   `json:"divider,omitempty"`
	Grid       []GridLineResponse `json:"grid"`
	Legend     LegendResponse     `json:"legend"`
}

// FromScene converts a scene to its response shape.
func FromScene(s entity.Scene) SceneResponse {
	out := SceneResponse{
		Width:      s.Viewport.Width,
		Height:     s.Viewport.Height,
		MinPrice:   s.MinPrice,
		MaxPrice:   s.MaxPrice,
		Historical: pathOf(s.Historical.Points, s.Historical.Path, s.Historical.Style),
		Band:       pathOf(s.Band.Points, s.Band.Path, s.Band.Style),
		Prediction: pathOf(s.Prediction.Points, s.Prediction.Path, s.Prediction.Style),
		Grid:       make([]GridLineResponse, 0, len(s.Grid)),
		Legend: LegendResponse{
			Origin:  PointResponse(s.Legend.Origin),
			Entries: make([]LegendEntryResponse, 0, len(s.Legend.Entries)),
		},
	}
	if !s.MinDate.IsZero() {
		out.MinDate = s.MinDate.Format("2006-01-02")
		out.MaxDate = s.MaxDate.Format("2006-01-02")
	}
	if d := s.Divider; d != nil {
		out.Divider = &DividerResponse{
			X:        d.X,
			Y1:       d.Y1,
			Y2:       d.Y2,
			Style:    StyleResponse(d.Style),
			LabelBox: RectResponse(d.LabelBox),
			BoxStyle: StyleResponse(d.BoxStyle),
			Label:    LabelResponse(d.Label),
		}
	}
	for _, g := range s.Grid {
		out.Grid = append(out.Grid, GridLineResponse{
			Price: g.Price,
			Y:     g.Y,
			X1:    g.X1,
			X2:    g.X2,
			Style: StyleResponse(g.Style),
			Label: LabelResponse(g.Label),
		})
	}
	for _, e := range s.Legend.Entries {
		out.Legend.Entries = append(out.Legend.Entries, LegendEntryResponse{
			Y:     e.Y,
			Style: StyleResponse(e.Style),
			Label: LabelResponse(e.Label),
		})
	}
	return out
}

func pathOf(pts []entity.Point, d string, st entity.Style) PathResponse {
	out := PathResponse{D: d, Points: make([]PointResponse, 0, len(pts)), Style: StyleResponse(st)}
	for _, p := range pts {
		out.Points = append(out.Points, PointResponse(p))
	}
	return out
}
