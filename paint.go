package shapegen

// LineCap specifies the shape applied at the open ends of a stroked figure.
type LineCap int

const (
	// LineCapFlat truncates the stroke at the endpoint.
	LineCapFlat LineCap = iota
	// LineCapRound draws a semicircular cap, radius = half the line width.
	LineCapRound
	// LineCapSquare extends the stroke by half the line width past the endpoint.
	LineCapSquare
)

// LineJoin specifies the shape used to connect two stroked segments.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet, subject to MiterLimit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound fills the join with a circular arc.
	LineJoinRound
	// LineJoinBevel connects the outer corners with a straight edge.
	LineJoinBevel
)

// FillRule specifies how the edge manager decides which spans are interior.
type FillRule int

const (
	// FillRuleNonZero uses the nonzero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
	// FillRuleIntersect combines a shape with the current clip region,
	// keeping only area present in both.
	FillRuleIntersect
	// FillRuleExclude combines a shape with the current clip region,
	// keeping clip area not covered by the shape.
	FillRuleExclude
)

// StrokeStyle describes how stroke expansion converts a path into a filled
// outline.
type StrokeStyle struct {
	// Width is the full line width in device pixels. Width == 0 selects
	// thin-line (Bresenham-style) mode.
	Width float64

	// Cap is applied at the open ends of unclosed figures.
	Cap LineCap

	// Join is applied at interior vertices.
	Join LineJoin

	// MiterLimit bounds how far a miter join may extend before it is
	// replaced by a bevel join, expressed as a multiple of the half-width.
	MiterLimit float64

	// Dash is an optional dash pattern. A nil or empty Dash strokes solid.
	Dash *Dash
}

// NewStrokeStyle returns a StrokeStyle with the conventional defaults:
// width 1, flat caps, miter joins, miter limit 4.
func NewStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1.0,
		Cap:        LineCapFlat,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}
