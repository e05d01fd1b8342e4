package control

import (
	"math"
	"strconv"
	"strings"

	"github.com/alkime/faders/pkg/uictl"
)

// Command is a proposed change to a control's value. Positional input and
// incremental input both go through Propose so clamping lives in one place.
type Command interface {
	apply(current float64, r uictl.Range[float64]) float64
}

// SetTo jumps to an absolute value, as pointer and touch input do.
type SetTo struct {
	Value float64
}

func (c SetTo) apply(current float64, r uictl.Range[float64]) float64 {
	if math.IsNaN(c.Value) {
		return current
	}

	return r.Clamp(c.Value)
}

// Nudge moves the current value by Steps multiples of the range step, as
// wheel input does. Positive steps move towards Max.
type Nudge struct {
	Steps float64
}

func (c Nudge) apply(current float64, r uictl.Range[float64]) float64 {
	if !(r.Step > 0) || c.Steps == 0 || math.IsNaN(c.Steps) {
		return current
	}

	// already at the bound in the direction of travel
	if (c.Steps > 0 && current >= r.Max) || (c.Steps < 0 && current <= r.Min) {
		return current
	}

	next := current + c.Steps*r.Step
	prec := max(decimals(r.Step), decimals(current))

	return r.Clamp(roundTo(next, prec))
}

// maxDecimals bounds the precision nudged values are rounded to.
const maxDecimals = 12

// decimals returns how many fractional digits v is written with, up to
// maxDecimals.
func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return min(len(s)-i-1, maxDecimals)
	}

	return 0
}

// roundTo rounds v to prec fractional digits, dropping the float noise
// repeated step additions accumulate.
func roundTo(v float64, prec int) float64 {
	p := math.Pow10(prec)
	r := math.Round(v*p) / p

	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}

	return r
}

// Propose resolves cmd against current. changed is false when the result
// equals current, in which case nothing should be emitted.
func Propose(cmd Command, current float64, r uictl.Range[float64]) (next float64, changed bool) {
	next = cmd.apply(current, r)
	if math.IsNaN(next) {
		return current, false
	}

	return next, next != current
}
