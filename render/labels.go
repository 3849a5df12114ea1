package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/bgraf/elevprofile/profile"
)

// Label is a text anchored at a data point (miles, feet).
type Label struct {
	Text string
	X, Y float64
}

func LabelsFromAnchors(anchors []profile.Anchor) []Label {
	labels := make([]Label, 0, len(anchors))
	for _, a := range anchors {
		labels = append(labels, Label{Text: a.Waypoint.Name, X: a.Distance, Y: a.Alt})
	}
	return labels
}

// Placement records where a label was drawn, in pixels.
type Placement struct {
	Label
	Box   Box
	Moved bool
}

// Labeler draws waypoint labels onto a chart.
type Labeler interface {
	Place(c *Canvas, rows []profile.Row, labels []Label) []Placement
}

type LabelMode string

const (
	LabelModeRepel  LabelMode = "repel"
	LabelModeMarker LabelMode = "marker"
)

// ErrUnknownLabelMode is returned for label modes other than repel and marker.
var ErrUnknownLabelMode = errors.New("unknown label mode")

func ParseLabelMode(s string) (LabelMode, error) {
	mode := LabelMode(strings.ToLower(strings.TrimSpace(s)))
	switch mode {
	case LabelModeRepel, LabelModeMarker:
		return mode, nil
	}
	return "", fmt.Errorf("%w '%s'", ErrUnknownLabelMode, s)
}

func NewLabeler(mode LabelMode, avoidLines bool) (Labeler, error) {
	switch mode {
	case LabelModeRepel:
		return RepelLabeler{AvoidLines: avoidLines}, nil
	case LabelModeMarker:
		return MarkerLabeler{}, nil
	}
	return nil, fmt.Errorf("%w '%s'", ErrUnknownLabelMode, mode)
}

// MarkerLabeler draws an "x" at every anchor with the text right next to it.
// Labels may collide.
type MarkerLabeler struct{}

func (MarkerLabeler) Place(c *Canvas, _ []profile.Row, labels []Label) []Placement {
	placements := make([]Placement, 0, len(labels))

	for _, l := range labels {
		x, y := c.ToPixel(l.X, l.Y)
		box := c.textBox(l.Text, x, y)

		c.drawMarker(x, y)
		c.drawLabel(l.Text, box)

		placements = append(placements, Placement{Label: l, Box: box})
	}

	return placements
}

// RepelLabeler pushes overlapping labels apart and connects moved labels to their
// anchors with an arrow. With AvoidLines the plotted line repels labels as well.
type RepelLabeler struct {
	AvoidLines bool
}

func (r RepelLabeler) Place(c *Canvas, rows []profile.Row, labels []Label) []Placement {
	boxes := make([]Box, len(labels))
	for i, l := range labels {
		x, y := c.ToPixel(l.X, l.Y)
		boxes[i] = c.textBox(l.Text, x, y)
	}

	var obstacles []point
	if r.AvoidLines {
		xs := make([]float64, len(rows))
		ys := make([]float64, len(rows))
		for i, row := range rows {
			xs[i] = row.Distance
			ys[i] = row.Alt
		}
		obstacles = c.lineSamples(xs, ys, c.style.points(1))
	}

	adjusted := declutter(boxes, obstacles, c.plot, declutterParams{
		Iterations: 300,
		Padding:    c.style.points(1),
	})

	placements := make([]Placement, 0, len(labels))
	for i, l := range labels {
		moved := math.Hypot(adjusted[i].X-boxes[i].X, adjusted[i].Y-boxes[i].Y) > 0.5
		if moved {
			x, y := c.ToPixel(l.X, l.Y)
			c.drawArrow(adjusted[i], x, y)
		}
		c.drawLabel(l.Text, adjusted[i])

		placements = append(placements, Placement{Label: l, Box: adjusted[i], Moved: moved})
	}

	return placements
}

// textBox returns the box of text whose baseline starts at (x, y).
func (c *Canvas) textBox(text string, x, y float64) Box {
	w, h := c.measure(c.labelFace, text)
	return Box{X: x, Y: y - h, W: w, H: h}
}

func (c *Canvas) drawLabel(text string, box Box) {
	c.dc.SetColor(color.Black)
	c.dc.SetFontFace(c.labelFace)
	c.dc.DrawStringAnchored(text, box.X, box.Y, 0, 1)
}

func (c *Canvas) drawMarker(x, y float64) {
	r := c.style.points(3)

	c.dc.SetColor(color.Black)
	c.dc.SetLineWidth(c.style.points(0.8))
	c.dc.DrawLine(x-r, y-r, x+r, y+r)
	c.dc.DrawLine(x-r, y+r, x+r, y-r)
	c.dc.Stroke()
}

// drawArrow draws a thin arrow from the edge of box to (x, y).
func (c *Canvas) drawArrow(box Box, x, y float64) {
	sx := math.Max(box.X, math.Min(x, box.X+box.W))
	sy := math.Max(box.Y, math.Min(y, box.Y+box.H))
	if math.Hypot(x-sx, y-sy) < 1 {
		return
	}

	c.dc.SetColor(color.Black)
	c.dc.SetLineWidth(c.style.points(0.3))
	c.dc.DrawLine(sx, sy, x, y)

	head := c.style.points(2.5)
	angle := math.Atan2(y-sy, x-sx)
	for _, side := range []float64{-1, 1} {
		a := angle + math.Pi + side*math.Pi/8
		c.dc.DrawLine(x, y, x+head*math.Cos(a), y+head*math.Sin(a))
	}

	c.dc.Stroke()
}
