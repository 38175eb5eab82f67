// Package gamemath holds the small per-tick formulas shared by systems. Every
// rate is per nominal tick and is scaled by the tick's time scale.
package gamemath

import "math"

// ApplyGravity accelerates speedY by gravity and caps it at maxFall. A
// non-positive maxFall means no cap.
func ApplyGravity(speedY, gravity, maxFall, ts float64) float64 {
	speedY += gravity * ts
	if maxFall > 0 && speedY > maxFall {
		return maxFall
	}
	return speedY
}

// Decay multiplies speed by factor once per nominal tick.
func Decay(speed, factor, ts float64) float64 {
	return speed * math.Pow(factor, ts)
}

// Wiggle is the horizontal drift of a floating object at age ticks.
func Wiggle(age, frequency, amplitude, ts float64) float64 {
	return math.Sin(age*frequency) * amplitude * ts
}

// Countdown lowers a timer by ts without going below zero.
func Countdown(timer, ts float64) float64 {
	return max(0, timer-ts)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
