// Package chart plots close price with its moving averages and crossover
// markers, and shows the result in the system image viewer.
package chart

import (
	"fmt"
	"image/color"
	"io"

	"StockLens/internal/model"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// Width and Height of the rendered figure.
	Width  = 12 * vg.Inch
	Height = 6 * vg.Inch

	// maxMarkers is how many of the most recent crossovers of each kind get a marker.
	maxMarkers = 3
)

var (
	colorClose = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	colorMA20  = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	colorMA50  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	colorBull  = color.RGBA{G: 0x80, A: 0xff}
	colorBear  = color.RGBA{R: 0xff, A: 0xff}
)

// Build creates the price chart for a. Undefined moving-average points are
// left out of their lines.
func Build(a *model.Analysis) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s — Close Price with 20/50-day MA", a.Series.Symbol)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Price"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	bars := a.Series.Bars
	closes := make(plotter.XYs, len(bars))
	for i, b := range bars {
		closes[i] = plotter.XY{X: float64(b.Time.Unix()), Y: b.Close}
	}

	lines := []struct {
		label string
		xys   plotter.XYs
		clr   color.Color
	}{
		{"Close Price", closes, colorClose},
		{"20-day MA", definedPoints(bars, a.MA20), colorMA20},
		{"50-day MA", definedPoints(bars, a.MA50), colorMA50},
	}
	for _, l := range lines {
		line, err := plotter.NewLine(l.xys)
		if err != nil {
			return nil, fmt.Errorf("%s line: %w", l.label, err)
		}
		line.Color = l.clr
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(l.label, line)
	}

	if err := addMarkers(p, "Bullish Cross", a.Bullish(), colorBull, draw.TriangleGlyph{}); err != nil {
		return nil, err
	}
	if err := addMarkers(p, "Bearish Cross", a.Bearish(), colorBear, downTriangleGlyph{}); err != nil {
		return nil, err
	}
	return p, nil
}

// Render writes p to w as a PNG image.
func Render(p *plot.Plot, w io.Writer) error {
	wt, err := p.WriterTo(Width, Height, "png")
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}

func definedPoints(bars []model.OHLCV, s model.Series) plotter.XYs {
	xys := make(plotter.XYs, 0, len(s))
	for i := range bars {
		if s.Defined(i) {
			xys = append(xys, plotter.XY{X: float64(bars[i].Time.Unix()), Y: s[i]})
		}
	}
	return xys
}

func addMarkers(p *plot.Plot, label string, crosses []model.Crossover, c color.Color, shape draw.GlyphDrawer) error {
	if len(crosses) == 0 {
		return nil
	}
	if len(crosses) > maxMarkers {
		crosses = crosses[len(crosses)-maxMarkers:]
	}
	xys := make(plotter.XYs, len(crosses))
	for i, x := range crosses {
		xys[i] = plotter.XY{X: float64(x.Time.Unix()), Y: x.Close}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("%s markers: %w", label, err)
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(5), Shape: shape}
	p.Add(sc)
	p.Legend.Add(label, sc)
	return nil
}

// downTriangleGlyph is a filled triangle pointing down.
type downTriangleGlyph struct{}

func (downTriangleGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius
	var path vg.Path
	path.Move(vg.Point{X: pt.X, Y: pt.Y - r})
	path.Line(vg.Point{X: pt.X - r*0.866, Y: pt.Y + r*0.5})
	path.Line(vg.Point{X: pt.X + r*0.866, Y: pt.Y + r*0.5})
	path.Close()
	c.Fill(path)
}
