package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type point struct {
	X, Y float64
}

// rect is an area of the canvas in pixels, y growing downwards.
type rect struct {
	X0, Y0, X1, Y1 float64
}

func (r rect) Width() float64 {
	return r.X1 - r.X0
}

func (r rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Canvas is a raster drawing surface with a plot area mapping data coordinates
// (miles, feet) to pixels.
type Canvas struct {
	dc    *gg.Context
	style Style
	plot  rect
	x, y  Range

	tickFace  font.Face
	titleFace font.Face
	labelFace font.Face
}

// NewCanvas creates a white canvas. The plot area covers the whole canvas until
// layout is called.
func NewCanvas(style Style, x, y Range) (*Canvas, error) {
	width, height := style.PixelSize()
	if width <= 0 || height <= 0 {
		return nil, &RenderError{Op: "create canvas", Err: fmt.Errorf("invalid size %dx%d", width, height)}
	}

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, &RenderError{Op: "load font", Err: err}
	}

	newFace := func(size float64) font.Face {
		return truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: style.DPI})
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	return &Canvas{
		dc:        dc,
		style:     style,
		plot:      rect{X0: 0, Y0: 0, X1: float64(width), Y1: float64(height)},
		x:         nonsingular(x),
		y:         nonsingular(y),
		tickFace:  newFace(style.TickFontSize),
		titleFace: newFace(style.TitleFontSize),
		labelFace: newFace(style.LabelFontSize),
	}, nil
}

// ToPixel maps data coordinates to canvas pixels.
func (c *Canvas) ToPixel(x, y float64) (float64, float64) {
	px := c.plot.X0 + (x-c.x.Min)/c.x.Span()*c.plot.Width()
	py := c.plot.Y1 - (y-c.y.Min)/c.y.Span()*c.plot.Height()
	return px, py
}

func (c *Canvas) XRange() Range {
	return c.x
}

func (c *Canvas) YRange() Range {
	return c.y
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Save writes the canvas to path, see Save.
func (c *Canvas) Save(path string) error {
	return Save(c.Image(), path)
}

func (c *Canvas) measure(face font.Face, s string) (float64, float64) {
	c.dc.SetFontFace(face)
	return c.dc.MeasureString(s)
}

// layout shrinks the plot area so ticks, axis titles and the title fit around it.
func (c *Canvas) layout(hasTitle, axisTitles bool, yTickLabels []string) {
	width, height := c.style.PixelSize()
	pad := c.style.points(4)
	tick := c.style.points(3.5)
	_, textHeight := c.measure(c.tickFace, "0")

	maxLabelWidth := 0.0
	for _, l := range yTickLabels {
		w, _ := c.measure(c.tickFace, l)
		maxLabelWidth = math.Max(maxLabelWidth, w)
	}

	top := 2 * pad
	if hasTitle {
		_, titleHeight := c.measure(c.titleFace, "Mg")
		top += titleHeight + pad
	}

	bottom := tick + pad + textHeight + pad
	left := tick + pad + maxLabelWidth + pad
	if axisTitles {
		bottom += textHeight + pad
		left += textHeight + pad
	}

	c.plot = rect{
		X0: left,
		Y0: top,
		X1: float64(width) - c.style.points(12),
		Y1: float64(height) - bottom,
	}
}

// lineSamples returns pixel points along the polyline through (xs, ys), at most
// spacing pixels apart.
func (c *Canvas) lineSamples(xs, ys []float64, spacing float64) []point {
	var samples []point

	for i := range xs {
		x1, y1 := c.ToPixel(xs[i], ys[i])
		if i == 0 {
			samples = append(samples, point{X: x1, Y: y1})
			continue
		}

		x0, y0 := c.ToPixel(xs[i-1], ys[i-1])
		n := int(math.Ceil(math.Hypot(x1-x0, y1-y0) / spacing))
		for k := 1; k <= n; k++ {
			t := float64(k) / float64(n)
			samples = append(samples, point{X: x0 + t*(x1-x0), Y: y0 + t*(y1-y0)})
		}
	}

	return samples
}
