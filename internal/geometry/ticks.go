package geometry

import (
	"iter"
	"strconv"
	"strings"
)

// DefaultTickCount is the number of tick marks drawn along a track.
const DefaultTickCount = 11

// Ticks yields count evenly spaced horizontal tick segments along a vertical
// track, spanning the full surface width. Ticks sit where the indicator's
// centre would be, so the first and last mark line up with Max and Min.
//
// The sequence does not depend on the current value and can be ranged over
// any number of times. Non-positive sizes or count yield nothing; a track no
// longer than the indicator yields a single tick at its midpoint.
func Ticks(indicatorSize, trackLength, surfaceWidth float64, count int) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if count <= 0 || !(trackLength > 0) || !(surfaceWidth > 0) {
			return
		}

		usable := trackLength - indicatorSize
		if !(usable > 0) || count == 1 {
			yield(tickAt(trackLength/2, surfaceWidth))

			return
		}

		gap := usable / float64(count-1)
		for i := range count {
			if !yield(tickAt(indicatorSize/2+float64(i)*gap, surfaceWidth)) {
				return
			}
		}
	}
}

func tickAt(y, width float64) Segment {
	return Segment{
		From: Point{X: 0, Y: y},
		To:   Point{X: width, Y: y},
	}
}

// PathData renders segments as move/line path commands ("M0 6 L50 6 ...").
func PathData(segments iter.Seq[Segment]) string {
	var sb strings.Builder

	for s := range segments {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}

		sb.WriteString("M")
		sb.WriteString(formatPoint(s.From))
		sb.WriteString(" L")
		sb.WriteString(formatPoint(s.To))
	}

	return sb.String()
}

func formatPoint(p Point) string {
	return strconv.FormatFloat(p.X, 'f', -1, 64) + " " + strconv.FormatFloat(p.Y, 'f', -1, 64)
}
