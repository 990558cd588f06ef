// This package implements procedural shakes for cameras and object
// transforms: explosions, recoil, earthquakes and similar effects
// that need a wobbly offset without pre-authored animation data.
//
// A [Shake] turns elapsed time into a pair of 3-axis offsets
// (position and rotation) sampled from coherent noise and scaled
// by a fade-in / sustain / fade-out amplitude envelope. The package
// never drives itself: you call [Shake.Update]() once per tick from
// your own loop, or bind the shake to a per-frame driver with
// [Shake.BindToSignal]() or [Shake.BindToStepper]().
//
// All provided functionality respects a few properties:
//   - Tick-rate independent: the envelope is defined over wall-clock
//     seconds, so results are visually similar regardless of your
//     game's update rate.
//   - Deterministic when you want it: both the noise sampler and the
//     clock are plain function fields that can be swapped for fixed
//     sources in tests or replays.
//
// Basic usage:
//
//	quake := shake.New()
//	quake.Amplitude = 5
//	quake.FadeInTime = 0.2
//	quake.Start()
//	// once per tick:
//	position, rotation, done := quake.Update()
package shake

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/edwinsyarief/ebi-shake/noise"
)

// Noise inputs wrap around this period so that samplers with
// limited precision or periodicity keep behaving at large times.
const noiseInputPeriod = 1_000_000.0

var processStart = time.Now()

// The default clock: monotonic seconds since process start.
func monotime() float64 {
	return time.Since(processStart).Seconds()
}

// Lazily initialized fallback sampler shared by all instances.
// Sharing is fine: each instance decorrelates itself through its
// own random time offset.
var defaultNoise noise.Function

// A single procedural shake: configuration plus envelope state.
// Create instances with [New](), not directly. Configuration
// fields may be mutated at any point, even mid-shake.
//
// Each instance must be confined to a single goroutine at a time.
// There is no internal locking; distinct instances are fully
// independent and can live on different goroutines.
//
// All time constants are in seconds and must be strictly positive.
// The update path does not validate them: a zero or negative
// Frequency, FadeInTime or FadeOutTime propagates as a non-finite
// value through the returned offsets.
type Shake struct {
	// Overall magnitude scale applied to the sampled offsets.
	Amplitude float64

	// Time scale divisor for the noise input: higher values
	// produce slower, rolling shakes, lower values produce
	// fast jitter.
	Frequency float64

	// Seconds for the envelope to ramp from 0 to full amplitude.
	FadeInTime float64

	// Seconds for the envelope to ramp back down to 0.
	FadeOutTime float64

	// While true the envelope holds at full amplitude
	// indefinitely after fade-in, until [Shake.StopSustain]()
	// or [Shake.Stop]() is called.
	Sustain bool

	// Seconds to hold at full amplitude after fade-in when
	// Sustain is false.
	SustainTime float64

	// Per-axis multipliers deriving the two outputs from the
	// same base offset. Zeroing one only silences that output.
	PositionInfluence Vec3
	RotationInfluence Vec3

	// Pluggable coherent-noise sampler. Expected to return
	// values in roughly [-1, 1].
	NoiseFunction noise.Function

	// Pluggable monotonic clock returning seconds. Readings
	// must be non-decreasing across calls for the envelope
	// to keep its shape.
	TimeFunction func() float64

	timeOffset float64
	startTime  float64
	shaking    bool
	cleanup    cleanupList
}

// Returns a shake with default configuration: amplitude 1,
// frequency 1, one second fades, no sustain, unit influences,
// OpenSimplex noise and a monotonic real-time clock.
//
// The instance also draws a random time offset that decorrelates
// it from other instances sharing the same noise function, so two
// simultaneous shakes never look identical.
func New() *Shake {
	if defaultNoise == nil {
		defaultNoise = noise.Simplex(rand.Int64())
	}
	return &Shake{
		Amplitude:         1,
		Frequency:         1,
		FadeInTime:        1,
		FadeOutTime:       1,
		PositionInfluence: Unit(),
		RotationInfluence: Unit(),
		NoiseFunction:     defaultNoise,
		TimeFunction:      monotime,
		timeOffset:        rand.Float64() * noiseInputPeriod,
	}
}

// Returns a new, unstarted shake copying only the configuration
// fields of the receiver. Runtime state is not carried over, and
// the clone draws its own random time offset, so starting both
// produces two distinct-looking shakes.
func (self *Shake) Clone() *Shake {
	clone := New()
	clone.Amplitude = self.Amplitude
	clone.Frequency = self.Frequency
	clone.FadeInTime = self.FadeInTime
	clone.FadeOutTime = self.FadeOutTime
	clone.Sustain = self.Sustain
	clone.SustainTime = self.SustainTime
	clone.PositionInfluence = self.PositionInfluence
	clone.RotationInfluence = self.RotationInfluence
	clone.NoiseFunction = self.NoiseFunction
	clone.TimeFunction = self.TimeFunction
	return clone
}

// Begins the shake, capturing the current time as the envelope
// origin. Calling Start again while shaking restarts the envelope
// from the current instant; it's safe and not an error.
//
// Once the instance has been stopped it is inert and Start does
// nothing; build a fresh instance (or [Shake.Clone]() a template)
// to shake again.
func (self *Shake) Start() {
	if self.cleanup.released() {
		return
	}
	self.startTime = self.TimeFunction()
	self.shaking = true
}

// Reports whether the shake has been started and not yet stopped.
func (self *Shake) IsShaking() bool {
	return self.shaking
}

// Halts the shake immediately, bypassing the natural envelope.
// All bindings registered through [Shake.BindToSignal]() and
// [Shake.BindToStepper]() are detached, in registration order,
// exactly once. Stopping an already stopped instance is a no-op.
//
// Stop is terminal: the instance cannot be restarted in place.
func (self *Shake) Stop() {
	self.shaking = false
	self.cleanup.release()
}

// Ends an indefinite sustain, scheduling the fade-out to begin at
// the current instant: SustainTime is rewritten so that the elapsed
// duration equals exactly FadeInTime + SustainTime, and Sustain is
// cleared. The very next [Shake.Update]() starts fading out from
// the current point instead of jumping.
//
// Calling this during fade-in leaves a negative SustainTime, which
// simply makes the fade-out begin immediately.
func (self *Shake) StopSustain() {
	now := self.TimeFunction()
	self.Sustain = false
	self.SustainTime = now - self.startTime - self.FadeInTime
}

// Samples the shake at the current time. Call once per external
// tick, after [Shake.Start](). Returns the position offset, the
// rotation offset and a completion flag.
//
// The two offsets are the same base noise sample scaled by
// amplitude and the envelope, multiplied component-wise by
// PositionInfluence and RotationInfluence respectively.
//
// When done is reported true the instance has already stopped
// itself (same effect as [Shake.Stop]()) before returning.
// Calling Update before Start is a precondition
// violation: the envelope would be computed against an unset
// start time.
func (self *Shake) Update() (position, rotation Vec3, done bool) {
	now := self.TimeFunction()
	duration := now - self.startTime

	// wrapped noise input along the time axis
	noiseInput := math.Mod((now+self.timeOffset)/self.Frequency, noiseInputPeriod)

	fadeIn := 1.0
	if duration < self.FadeInTime {
		fadeIn = duration / self.FadeInTime
	}
	fadeOut := 1.0
	if !self.Sustain && duration > self.FadeInTime+self.SustainTime {
		fadeOut = 1.0 - (duration-self.FadeInTime-self.SustainTime)/self.FadeOutTime
		done = duration >= self.FadeInTime+self.SustainTime+self.FadeOutTime
	}

	// three independent samples, halved to compress the usual
	// [-1, 1] noise range toward a gentler default
	sample := self.NoiseFunction
	offset := Vec3{
		X: sample(noiseInput, 0) / 2.0,
		Y: sample(0, noiseInput) / 2.0,
		Z: sample(noiseInput, noiseInput) / 2.0,
	}

	// the tighter envelope always wins, keeping the shape
	// monotonic across fade-in -> sustain -> fade-out
	offset = offset.Scale(self.Amplitude * math.Min(fadeIn, fadeOut))
	position = offset.Mul(self.PositionInfluence)
	rotation = offset.Mul(self.RotationInfluence)

	if done {
		self.Stop()
	}
	return position, rotation, done
}
