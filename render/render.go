// Package render turns computed draw bundles into gonum/plot
// artifacts. It owns the translation from analysis results to chart
// primitives; saving or displaying the assembled plot is left to the
// consuming chart surface.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/gpagano/graphpoint/schema"
)

// Series colors, matching the palette of the original chart surface.
var (
	dataColor     = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	fitColor      = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	centroidColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	sampleColor   = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

// PointsPlot assembles the data-mode chart: scattered points, the best
// fit line when defined, an X marker at the centroid and the sampled
// points with coordinate labels.
func PointsPlot(result *schema.PointsResult, precision int) (*plot.Plot, error) {
	p := newBasePlot(subtitle("From x, y values", result.Annotations, precision))

	scatter, err := plotter.NewScatter(toXYs(result.Points))
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = dataColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add("Data points", scatter)

	if result.Fit.OK && len(result.Points) > 0 {
		x0 := result.Points[0].X
		x1 := result.Points[len(result.Points)-1].X
		line, err := plotter.NewLine(plotter.XYs{
			{X: x0, Y: result.Fit.At(x0)},
			{X: x1, Y: result.Fit.At(x1)},
		})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = fitColor
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add("Best fit line", line)
	}

	if err := addAnnotations(p, result.Annotations, precision); err != nil {
		return nil, err
	}
	return p, nil
}

// EquationPlot assembles the equation-mode chart: the curve polyline,
// an X marker at the centroid and the sampled points with coordinate
// labels.
func EquationPlot(result *schema.EquationResult, precision int) (*plot.Plot, error) {
	p := newBasePlot(subtitle("y = "+result.Expr, result.Annotations, precision))

	curve, err := plotter.NewLine(toXYs(result.Curve))
	if err != nil {
		return nil, err
	}
	curve.LineStyle.Color = dataColor
	curve.LineStyle.Width = vg.Points(1.5)
	p.Add(curve)
	p.Legend.Add("Curve", curve)

	if err := addAnnotations(p, result.Annotations, precision); err != nil {
		return nil, err
	}
	return p, nil
}

// newBasePlot creates a titled plot with axis labels and a grid.
func newBasePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	return p
}

// subtitle appends the centroid and slope readout to the chart title.
func subtitle(info string, ann schema.AnnotationSet, precision int) string {
	if !ann.SlopeOK {
		return fmt.Sprintf("%s\nG=%s", info, schema.FormatPoint(ann.Centroid, precision))
	}
	return fmt.Sprintf("%s\nG=%s | slope at G=%.*g",
		info, schema.FormatPoint(ann.Centroid, precision), precision, ann.SlopeAtCentroid)
}

// addAnnotations draws the centroid marker and the highlighted sample
// points with their coordinate labels.
func addAnnotations(p *plot.Plot, ann schema.AnnotationSet, precision int) error {
	g, err := plotter.NewScatter(plotter.XYs{{X: ann.Centroid.X, Y: ann.Centroid.Y}})
	if err != nil {
		return err
	}
	g.GlyphStyle.Shape = draw.CrossGlyph{}
	g.GlyphStyle.Color = centroidColor
	g.GlyphStyle.Radius = vg.Points(5)
	p.Add(g)
	p.Legend.Add("G Point", g)

	if len(ann.Samples) == 0 {
		return nil
	}

	samples, err := plotter.NewScatter(toXYs(ann.Samples))
	if err != nil {
		return err
	}
	samples.GlyphStyle.Shape = draw.CircleGlyph{}
	samples.GlyphStyle.Color = sampleColor
	samples.GlyphStyle.Radius = vg.Points(4)
	p.Add(samples)
	p.Legend.Add("Random points", samples)

	labels := make([]string, len(ann.Samples))
	for i, s := range ann.Samples {
		labels[i] = schema.FormatPoint(s, precision)
	}
	marks, err := plotter.NewLabels(plotter.XYLabels{XYs: toXYs(ann.Samples), Labels: labels})
	if err != nil {
		return err
	}
	p.Add(marks)
	return nil
}

// toXYs converts points to the plotter representation.
func toXYs(points []schema.Point) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = p.X
		xys[i].Y = p.Y
	}
	return xys
}
