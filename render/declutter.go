package render

import "math"

// Box is the pixel extent of a text label; (X, Y) is its top-left corner.
type Box struct {
	X, Y, W, H float64
}

func (b Box) expand(pad float64) Box {
	return Box{X: b.X - pad, Y: b.Y - pad, W: b.W + 2*pad, H: b.H + 2*pad}
}

func (b Box) center() point {
	return point{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Overlaps reports whether the interiors of both boxes intersect. Touching edges do
// not overlap.
func (b Box) Overlaps(o Box) bool {
	ox, oy := overlapExtent(b, o)
	return ox > 0 && oy > 0
}

func (b Box) contains(p point) bool {
	return p.X > b.X && p.X < b.X+b.W && p.Y > b.Y && p.Y < b.Y+b.H
}

func overlapExtent(a, b Box) (float64, float64) {
	ox := math.Min(a.X+a.W, b.X+b.W) - math.Max(a.X, b.X)
	oy := math.Min(a.Y+a.H, b.Y+b.H) - math.Max(a.Y, b.Y)
	return ox, oy
}

// clampBox moves b into bounds. Boxes larger than bounds stick to the top-left edge.
func clampBox(b Box, bounds rect) Box {
	b.X = math.Max(bounds.X0, math.Min(b.X, bounds.X1-b.W))
	b.Y = math.Max(bounds.Y0, math.Min(b.Y, bounds.Y1-b.H))
	return b
}

type declutterParams struct {
	Iterations int
	Padding    float64 // pixels kept free around each label
}

// nudge is added to every push so that boxes end up separated rather than touching.
const nudge = 0.5

// declutter moves label boxes until none overlaps another label or contains an
// obstacle point, or the iteration budget is spent. Boxes never leave bounds. The
// result has the same order as boxes.
func declutter(boxes []Box, obstacles []point, bounds rect, params declutterParams) []Box {
	out := make([]Box, len(boxes))
	for i, b := range boxes {
		out[i] = clampBox(b, bounds)
	}

	for iteration := 0; iteration < params.Iterations; iteration++ {
		moved := false

		for i := range out {
			dx, dy := repelLabels(out, i, params.Padding)
			ox, oy := repelObstacles(out[i], obstacles, bounds, params.Padding)

			next := out[i]
			next.X += dx + ox
			next.Y += dy + oy
			next = clampBox(next, bounds)

			if next != out[i] {
				out[i] = next
				moved = true
			}
		}

		if !moved {
			break
		}
	}

	return out
}

// direction is the sign of delta; coincident boxes are split by their index.
func direction(delta float64, i, j int) float64 {
	switch {
	case delta < 0:
		return -1
	case delta > 0:
		return 1
	case i < j:
		return -1
	default:
		return 1
	}
}

// repelLabels sums the pushes label i receives from all labels it overlaps. Each
// overlap is resolved along the axis where it is shallower.
func repelLabels(boxes []Box, i int, pad float64) (float64, float64) {
	var dx, dy float64

	a := boxes[i].expand(pad)
	for j := range boxes {
		if i == j {
			continue
		}

		b := boxes[j].expand(pad)
		ox, oy := overlapExtent(a, b)
		if ox <= 0 || oy <= 0 {
			continue
		}

		ca, cb := a.center(), b.center()
		if ox < oy {
			dx += direction(ca.X-cb.X, i, j) * (ox/2 + nudge)
		} else {
			dy += direction(ca.Y-cb.Y, i, j) * (oy/2 + nudge)
		}
	}

	return dx, dy
}

// repelObstacles returns the vertical shift that clears all obstacle points inside
// the label, preferring the shorter way unless it would leave bounds.
func repelObstacles(b Box, obstacles []point, bounds rect, pad float64) (float64, float64) {
	a := b.expand(pad)

	hit := false
	up, down := 0.0, 0.0
	for _, p := range obstacles {
		if !a.contains(p) {
			continue
		}
		hit = true
		up = math.Max(up, a.Y+a.H-p.Y)
		down = math.Max(down, p.Y-a.Y)
	}

	if !hit {
		return 0, 0
	}

	up += nudge
	down += nudge

	canGoUp := b.Y-up >= bounds.Y0
	canGoDown := b.Y+b.H+down <= bounds.Y1

	switch {
	case canGoUp && (up <= down || !canGoDown):
		return 0, -up
	case canGoDown:
		return 0, down
	default:
		return 0, -up
	}
}
