package geodesic

// An accumulator maintains a running sum at roughly twice the standard
// floating point precision, as a non-overlapping pair (s, t) with
// |t| of the order of one ulp of s. Summing the signed areas of the
// edges of a many-sided polygon cancels catastrophically in a plain
// float64; the two-term representation keeps the residual error to
// about one ulp per Add. It is not exact arithmetic, only far more
// accurate than naive accumulation.
type accumulator struct {
	s, t float64
}

// set replaces the total with y.
func (a *accumulator) set(y float64) {
	a.s = y
	a.t = 0
}

// add folds y into the total with two error-free transformations:
// first y against the residual, then that against the leading term.
func (a *accumulator) add(y float64) {
	y, u := sum(y, a.t)
	a.s, a.t = sum(y, a.s)
	// Start is s, t decreasing and non-adjacent.
	// Let u = ulp(t).  Then y, u are roughly in the range t, u*t.
	// Now abs(s) >= abs(y), so s, t are in the range y, u*y with
	// u*y = u*t.  The result is in the range s, u*s.
	if a.s == 0 {
		// This implies t == 0, so result is u.
		a.s = u
	} else {
		a.t += u
	}
}

// sum returns the accumulated total.
func (a *accumulator) sum() float64 {
	return a.s
}

// sumWith returns the total as it would be after adding y, without
// changing the state.
func (a *accumulator) sumWith(y float64) float64 {
	b := *a
	b.add(y)
	return b.s
}

// remainderMod reduces the total modulo y to [-y/2, y/2].
func (a *accumulator) remainderMod(y float64) {
	a.s = remainder(a.s, y)
	a.add(0)
}

// negate flips the sign of the total.
func (a *accumulator) negate() {
	a.s = -a.s
	a.t = -a.t
}
