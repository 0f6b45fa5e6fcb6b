package fieldboard

import "math"

// clampFloat restricts v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// finiteOr returns v, or fallback when v is NaN or infinite. Persisted sizes
// pass through this so legacy or partial data never reaches the layout math.
func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// rectFromCorners builds a normalized rectangle from two arbitrary diagonal
// corners. The corners may be in any order.
func rectFromCorners(a, b Vec2) Rect {
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	return Rect{X: x, Y: y, Width: math.Abs(b.X - a.X), Height: math.Abs(b.Y - a.Y)}
}

// clampRectToCanvas restricts r so it lies entirely within the canvas
// [0, cw] x [0, ch]. The size is capped to the canvas first, then the
// position is clamped so position + size stays in bounds. Clamping an
// already-in-bounds rectangle is a no-op.
func clampRectToCanvas(r Rect, cw, ch float64) Rect {
	if r.Width > cw {
		r.Width = cw
	}
	if r.Height > ch {
		r.Height = ch
	}
	r.X = clampFloat(r.X, 0, cw-r.Width)
	r.Y = clampFloat(r.Y, 0, ch-r.Height)
	return r
}
