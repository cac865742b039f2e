package eval

import "math"

// Interval is a closed interval [Lo, Hi] used to bound a node's value over
// a region instead of evaluating it at a single point.
type Interval struct {
	Lo, Hi float64
}

// Choice records which side of a Min/Max survived interval evaluation:
// ChoiceBoth means the interval straddled both operands and the op must
// still be evaluated at finer resolution.
type Choice uint8

const (
	ChoiceBoth Choice = iota
	ChoiceLeft
	ChoiceRight
)

func constInterval(f float32) Interval {
	v := float64(f)
	return Interval{v, v}
}

func (a Interval) Neg() Interval { return Interval{-a.Hi, -a.Lo} }

func (a Interval) Abs() Interval {
	switch {
	case a.Lo >= 0:
		return a
	case a.Hi <= 0:
		return Interval{-a.Hi, -a.Lo}
	default:
		return Interval{0, math.Max(-a.Lo, a.Hi)}
	}
}

func (a Interval) Square() Interval {
	b := a.Abs()
	return Interval{b.Lo * b.Lo, b.Hi * b.Hi}
}

// Sqrt clamps negative inputs to zero rather than propagating NaN, except
// when the whole interval is negative, which can only mean the surface
// never evaluates at these inputs in practice; fidget treats it the same
// way, returning an interval of NaNs so callers can detect the dead region.
func (a Interval) Sqrt() Interval {
	if a.Hi < 0 {
		return Interval{math.NaN(), math.NaN()}
	}
	lo := a.Lo
	if lo < 0 {
		lo = 0
	}
	return Interval{math.Sqrt(lo), math.Sqrt(a.Hi)}
}

// Recip returns the universal interval whenever the input straddles (or
// touches) zero, since 1/x blows up there.
func (a Interval) Recip() Interval {
	if a.Lo <= 0 && a.Hi >= 0 {
		return Interval{math.Inf(-1), math.Inf(1)}
	}
	return Interval{1 / a.Hi, 1 / a.Lo}
}

func (a Interval) Add(b Interval) Interval { return Interval{a.Lo + b.Lo, a.Hi + b.Hi} }
func (a Interval) Sub(b Interval) Interval { return Interval{a.Lo - b.Hi, a.Hi - b.Lo} }

func (a Interval) Mul(b Interval) Interval {
	p1, p2, p3, p4 := a.Lo*b.Lo, a.Lo*b.Hi, a.Hi*b.Lo, a.Hi*b.Hi
	lo := math.Min(math.Min(p1, p2), math.Min(p3, p4))
	hi := math.Max(math.Max(p1, p2), math.Max(p3, p4))
	return Interval{lo, hi}
}

func (a Interval) Div(b Interval) Interval { return a.Mul(b.Recip()) }

// Min returns the resolved interval plus which side survives, so callers
// can drive simplification. ChoiceBoth means the operands' intervals
// overlap by more than a single point and both sides are still reachable.
func (a Interval) Min(b Interval) (Interval, Choice) {
	switch {
	case a.Hi <= b.Lo:
		return a, ChoiceLeft
	case b.Hi <= a.Lo:
		return b, ChoiceRight
	default:
		return Interval{math.Min(a.Lo, b.Lo), math.Min(a.Hi, b.Hi)}, ChoiceBoth
	}
}

func (a Interval) Max(b Interval) (Interval, Choice) {
	switch {
	case a.Lo >= b.Hi:
		return a, ChoiceLeft
	case b.Lo >= a.Hi:
		return b, ChoiceRight
	default:
		return Interval{math.Max(a.Lo, b.Lo), math.Max(a.Hi, b.Hi)}, ChoiceBoth
	}
}

func (a Interval) Exp() Interval { return Interval{math.Exp(a.Lo), math.Exp(a.Hi)} }

func (a Interval) Sin() Interval { return trigBounds(a, math.Sin, math.Pi/2) }
func (a Interval) Cos() Interval { return trigBounds(a, math.Cos, 0) }

// trigBounds bounds a monotone-piece periodic function by evaluating it at
// both endpoints plus every critical point (spaced pi apart, starting at
// firstCritical) inside the interval; sin and cos alternate between +1 and
// -1 at those points, so this always finds the true extrema without
// needing the function's derivative.
func trigBounds(a Interval, f func(float64) float64, firstCritical float64) Interval {
	if a.Hi-a.Lo >= 2*math.Pi {
		return Interval{-1, 1}
	}
	lo, hi := f(a.Lo), f(a.Hi)
	if hi < lo {
		lo, hi = hi, lo
	}
	k := math.Ceil((a.Lo - firstCritical) / math.Pi)
	for cp := firstCritical + k*math.Pi; cp <= a.Hi; cp += math.Pi {
		if cp < a.Lo {
			continue
		}
		v := f(cp)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return Interval{lo, hi}
}
