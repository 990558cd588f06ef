package shake

import (
	"fmt"
	"sync/atomic"
)

// Scales the given origin vector by an inverse-square falloff of
// the given distance. Useful to attenuate an explosion shake by
// how far the camera sits from the blast:
//
//	quake.Amplitude = baseAmplitude
//	quake.PositionInfluence = shake.InverseSquare(influence, dist)
//
// The distance is clamped to a minimum of 1 before dividing, so
// anything at or closer than unit distance receives the origin
// unchanged.
func InverseSquare(origin Vec3, distance float64) Vec3 {
	if distance < 1 {
		distance = 1
	}
	return origin.Scale(1.0 / (distance * distance))
}

var bindingCounter atomic.Uint64

// Returns a process-wide unique identifier for driver bindings,
// a monotonically increasing counter formatted as a fixed-width
// token ("shake_00000001", "shake_00000002", ...). Used by
// [Shake.BindToStepper]() and [Runner.Connect](), and exported
// for callers that register on a [Stepper] by hand.
//
// This is the one process-global piece of state in the package;
// the counter is atomic, so names stay unique across goroutines.
func NextBindingName() string {
	return fmt.Sprintf("shake_%08d", bindingCounter.Add(1))
}
