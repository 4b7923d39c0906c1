package movement

// AxisCrossing is a candidate wall intersection along a moving segment: the
// parametric distance T along the segment, and which axis's boundary it
// crosses (0 = a vertical wall crossed on the x-axis, 1 = a horizontal wall
// crossed on the y-axis).
type AxisCrossing struct {
	Axis int
	T    float64
}

// NearestAxisCrossing resolves a projectile clipping both walls of a corner
// in the same step: the crossing with the smallest T wins, and a tie is
// broken by the lower axis index (the x-axis crossing is treated as having
// occurred first).
func NearestAxisCrossing(candidates []AxisCrossing) (AxisCrossing, bool) {
	if len(candidates) == 0 {
		return AxisCrossing{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.T < best.T || (c.T == best.T && c.Axis < best.Axis) {
			best = c
		}
	}
	return best, true
}
