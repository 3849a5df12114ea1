package render

import (
	"image/color"
	"math"

	"github.com/bgraf/elevprofile/option"
	"github.com/bgraf/elevprofile/profile"
)

type ChartOptions struct {
	Title      option.Option[string]
	AxisLabels bool
	Style      Style
}

// DrawProfile draws the elevation line of rows against the cumulative distance. The
// x axis spans [0, total distance]; the y axis is fitted to the elevations.
func DrawProfile(rows []profile.Row, opts ChartOptions) (*Canvas, error) {
	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, row := range rows {
		xs[i] = row.Distance
		ys[i] = row.Alt
	}

	c, err := NewCanvas(
		opts.Style,
		Range{Min: 0, Max: profile.TotalDistance(rows)},
		autoRange(ys, 0.05),
	)
	if err != nil {
		return nil, err
	}

	xTicks, xStep := niceTicks(c.x, 9)
	yTicks, yStep := niceTicks(c.y, 6)

	yLabels := make([]string, len(yTicks))
	for i, v := range yTicks {
		yLabels[i] = formatTick(v, yStep)
	}

	c.layout(opts.Title.IsSome(), opts.AxisLabels, yLabels)

	c.drawGrid(xTicks, yTicks)
	c.drawLine(xs, ys)
	c.drawFrame()
	c.drawXTicks(xTicks, xStep)
	c.drawYTicks(yTicks, yLabels)

	if opts.AxisLabels {
		c.drawAxisTitles("Miles", "Feet")
	}

	if opts.Title.IsSome() {
		c.drawTitle(opts.Title.Get())
	}

	return c, nil
}

func (c *Canvas) drawGrid(xTicks, yTicks []float64) {
	c.dc.SetColor(c.style.GridColor)
	c.dc.SetLineWidth(c.style.points(0.8))

	for _, v := range xTicks {
		x, _ := c.ToPixel(v, c.y.Min)
		c.dc.DrawLine(x, c.plot.Y0, x, c.plot.Y1)
	}
	for _, v := range yTicks {
		_, y := c.ToPixel(c.x.Min, v)
		c.dc.DrawLine(c.plot.X0, y, c.plot.X1, y)
	}

	c.dc.Stroke()
}

func (c *Canvas) drawLine(xs, ys []float64) {
	if len(xs) < 2 {
		return
	}

	c.dc.Push()
	defer c.dc.Pop()

	c.dc.DrawRectangle(c.plot.X0, c.plot.Y0, c.plot.Width(), c.plot.Height())
	c.dc.Clip()

	for i := range xs {
		x, y := c.ToPixel(xs[i], ys[i])
		if i == 0 {
			c.dc.MoveTo(x, y)
		} else {
			c.dc.LineTo(x, y)
		}
	}

	c.dc.SetColor(c.style.LineColor)
	c.dc.SetLineWidth(c.style.points(c.style.LineWidth))
	c.dc.SetLineJoinRound()
	c.dc.Stroke()
	c.dc.ResetClip()
}

func (c *Canvas) drawFrame() {
	c.dc.SetColor(color.Black)
	c.dc.SetLineWidth(c.style.points(0.8))
	c.dc.DrawRectangle(c.plot.X0, c.plot.Y0, c.plot.Width(), c.plot.Height())
	c.dc.Stroke()
}

func (c *Canvas) drawXTicks(ticks []float64, step float64) {
	tick := c.style.points(3.5)
	pad := c.style.points(3.5)

	c.dc.SetColor(color.Black)
	c.dc.SetLineWidth(c.style.points(0.8))
	c.dc.SetFontFace(c.tickFace)

	for _, v := range ticks {
		x, _ := c.ToPixel(v, c.y.Min)
		c.dc.DrawLine(x, c.plot.Y1, x, c.plot.Y1+tick)
		c.dc.Stroke()
		c.dc.DrawStringAnchored(formatTick(v, step), x, c.plot.Y1+tick+pad, 0.5, 1)
	}
}

func (c *Canvas) drawYTicks(ticks []float64, labels []string) {
	tick := c.style.points(3.5)
	pad := c.style.points(3.5)

	c.dc.SetColor(color.Black)
	c.dc.SetLineWidth(c.style.points(0.8))
	c.dc.SetFontFace(c.tickFace)

	for i, v := range ticks {
		_, y := c.ToPixel(c.x.Min, v)
		c.dc.DrawLine(c.plot.X0-tick, y, c.plot.X0, y)
		c.dc.Stroke()
		c.dc.DrawStringAnchored(labels[i], c.plot.X0-tick-pad, y, 1, 0.35)
	}
}

func (c *Canvas) drawAxisTitles(xTitle, yTitle string) {
	pad := c.style.points(4)
	tick := c.style.points(3.5)
	_, height := c.style.PixelSize()

	c.dc.SetColor(color.Black)
	c.dc.SetFontFace(c.tickFace)

	c.dc.DrawStringAnchored(xTitle, (c.plot.X0+c.plot.X1)/2, float64(height)-pad, 0.5, 0)

	_, textHeight := c.dc.MeasureString(yTitle)
	x := pad + textHeight/2
	y := (c.plot.Y0 + c.plot.Y1) / 2
	if x > c.plot.X0-tick {
		x = c.plot.X0 - tick
	}

	c.dc.Push()
	c.dc.RotateAbout(-math.Pi/2, x, y)
	c.dc.DrawStringAnchored(yTitle, x, y, 0.5, 0.35)
	c.dc.Pop()
}

func (c *Canvas) drawTitle(title string) {
	c.dc.SetColor(color.Black)
	c.dc.SetFontFace(c.titleFace)
	c.dc.DrawStringAnchored(title, (c.plot.X0+c.plot.X1)/2, c.plot.Y0-c.style.points(6), 0.5, 0)
}
