package render

import (
	"math"
	"strconv"
)

// Range is a closed interval of data values along one axis.
type Range struct {
	Min, Max float64
}

func (r Range) Span() float64 {
	return r.Max - r.Min
}

// nonsingular widens empty or degenerate ranges so they can be mapped onto pixels.
func nonsingular(r Range) Range {
	if r.Span() > 0 && r.Span() > 1e-12*math.Max(math.Abs(r.Min), math.Abs(r.Max)) {
		return r
	}

	delta := math.Max(math.Abs(r.Min)*0.05, 0.5)
	return Range{Min: r.Min - delta, Max: r.Max + delta}
}

// autoRange spans all values plus a relative margin on both sides.
func autoRange(values []float64, margin float64) Range {
	if len(values) == 0 {
		return Range{Min: 0, Max: 1}
	}

	r := Range{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}

	pad := r.Span() * margin
	return nonsingular(Range{Min: r.Min - pad, Max: r.Max + pad})
}

// niceNum rounds x to 1, 2, 5 or 10 times a power of ten.
func niceNum(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}

	return nf * math.Pow(10, exp)
}

// niceTicks returns evenly spaced, round tick values inside r and their step.
func niceTicks(r Range, maxTicks int) ([]float64, float64) {
	if r.Span() <= 0 || maxTicks < 2 {
		return nil, 0
	}

	span := niceNum(r.Span(), false)
	step := niceNum(span/float64(maxTicks-1), true)
	start := math.Ceil(r.Min/step) * step

	var ticks []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > r.Max+step*1e-9 {
			break
		}
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, v)
	}

	return ticks, step
}

// formatTick prints v with just enough decimals to tell ticks of the given step apart.
func formatTick(v, step float64) string {
	decimals := 0
	if step > 0 {
		decimals = int(math.Max(0, -math.Floor(math.Log10(step))))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
