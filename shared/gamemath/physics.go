package gamemath

import "math"

// ClampDelta caps a frame delta so a long stall doesn't teleport anything.
func ClampDelta(dt, maxStep float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxStep {
		return maxStep
	}
	return dt
}

// FrameFactor converts a delta in seconds into 60fps frames.
func FrameFactor(dt float64) float64 {
	return dt * 60
}

// WrapAngle maps an angle into [-π, π].
func WrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

// TurnToward rotates current toward target along the shorter arc by
// the given fraction of the remaining difference.
func TurnToward(current, target, fraction float64) float64 {
	return current + WrapAngle(target-current)*fraction
}

// SoftCap scales a speed back toward max when it overshoots. The returned
// factor multiplies the velocity and is never negative.
func SoftCap(speed, max, dt, stiffness float64) float64 {
	if max <= 0 || speed <= max {
		return 1
	}
	return 1 - math.Min(1, (speed-max)/max*stiffness*dt)
}

// ClampAxis clamps v to [-limit, limit] and reports whether it was out of range.
func ClampAxis(v, limit float64) (float64, bool) {
	if v > limit {
		return limit, true
	}
	if v < -limit {
		return -limit, true
	}
	return v, false
}

// PlanarDistance returns the distance between two points on the XZ plane.
func PlanarDistance(ax, az, bx, bz float64) float64 {
	return math.Hypot(ax-bx, az-bz)
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
