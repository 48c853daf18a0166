// Package gamemath holds the graphics-free arithmetic behind the actor
// systems so it can be tested without a window.
package gamemath

// ApplyGravity integrates one explicit Euler step: velocity first, then
// position with the updated velocity.
func ApplyGravity(speedY, y, gravity, dt float64) (newSpeedY, newY float64) {
	newSpeedY = speedY + gravity*dt
	newY = y + newSpeedY*dt
	return newSpeedY, newY
}

// ClampToFloor stops a falling body on the floor. landed is true whenever
// the body is at or below the floor after the step.
func ClampToFloor(speedY, y, floor float64) (newSpeedY, newY float64, landed bool) {
	if y >= floor {
		return 0, floor, true
	}
	return speedY, y, false
}
