package shake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/ebi-shake/noise"
)

// A single-subscriber signal that records its connection state.
type recordSignal struct {
	handler      func()
	disconnected bool
}

func (self *recordSignal) Connect(fn func()) Connection {
	self.handler = fn
	return &recordSignalConn{signal: self}
}

func (self *recordSignal) fire() {
	if self.handler != nil {
		self.handler()
	}
}

type recordSignalConn struct {
	signal *recordSignal
}

func (self *recordSignalConn) Disconnect() {
	self.signal.disconnected = true
	self.signal.handler = nil
}

// A stepper that records registrations and removals.
type recordStepper struct {
	bound    map[string]func()
	priority map[string]int
	unbound  []string
}

func newRecordStepper() *recordStepper {
	return &recordStepper{
		bound:    make(map[string]func()),
		priority: make(map[string]int),
	}
}

func (self *recordStepper) BindToStep(name string, priority int, fn func()) {
	self.bound[name] = fn
	self.priority[name] = priority
}

func (self *recordStepper) UnbindFromStep(name string) {
	delete(self.bound, name)
	self.unbound = append(self.unbound, name)
}

func (self *recordStepper) step() {
	for _, fn := range self.bound {
		fn()
	}
}

func TestBindToSignalForwardsUpdates(t *testing.T) {
	clock := &fakeClock{}
	shk := newTestShake(clock)
	signal := &recordSignal{}

	var gotPosition, gotRotation Vec3
	var gotDone bool
	calls := 0
	shk.BindToSignal(signal, func(position, rotation Vec3, done bool) {
		gotPosition, gotRotation, gotDone = position, rotation, done
		calls++
	})
	shk.Start()

	clock.now = 0.5
	signal.fire()
	require.Equal(t, 1, calls)
	require.False(t, gotDone)
	assert.InDelta(t, 0.125, gotPosition.X, tolerance)
	assert.InDelta(t, 0.125, gotRotation.Y, tolerance)
}

func TestBindToSignalDisconnectsOnStop(t *testing.T) {
	clock := &fakeClock{}
	shk := newTestShake(clock)
	signal := &recordSignal{}
	shk.BindToSignal(signal, func(Vec3, Vec3, bool) {})
	shk.Start()

	shk.Stop()
	assert.True(t, signal.disconnected)
	signal.fire() // must be a no-op, handler is gone
}

func TestBindToSignalDisconnectsOnCompletion(t *testing.T) {
	clock := &fakeClock{}
	shk := newTestShake(clock)
	signal := &recordSignal{}

	var lastDone bool
	shk.BindToSignal(signal, func(_, _ Vec3, done bool) { lastDone = done })
	shk.Start()

	clock.now = 2
	signal.fire()
	require.True(t, lastDone)
	assert.True(t, signal.disconnected)
	assert.False(t, shk.IsShaking())
}

func TestBindToStoppedShakeDetachesImmediately(t *testing.T) {
	clock := &fakeClock{}
	shk := newTestShake(clock)
	shk.Stop()

	signal := &recordSignal{}
	shk.BindToSignal(signal, func(Vec3, Vec3, bool) {})
	assert.True(t, signal.disconnected)
}

func TestBindToStepperRegistersAndTearsDown(t *testing.T) {
	clock := &fakeClock{}
	shk := newTestShake(clock)
	shk.NoiseFunction = noise.Constant(1)
	stepper := newRecordStepper()

	calls := 0
	shk.BindToStepper(stepper, 25, func(Vec3, Vec3, bool) { calls++ })
	require.Len(t, stepper.bound, 1)
	for name, priority := range stepper.priority {
		assert.True(t, strings.HasPrefix(name, "shake_"))
		assert.Equal(t, 25, priority)
	}

	shk.Start()
	stepper.step()
	stepper.step()
	require.Equal(t, 2, calls)

	shk.Stop()
	assert.Empty(t, stepper.bound)
	require.Len(t, stepper.unbound, 1)
}

func TestBindToStepperUniqueNames(t *testing.T) {
	clock := &fakeClock{}
	stepper := newRecordStepper()
	first := newTestShake(clock)
	second := newTestShake(clock)
	first.BindToStepper(stepper, 1, func(Vec3, Vec3, bool) {})
	second.BindToStepper(stepper, 1, func(Vec3, Vec3, bool) {})
	assert.Len(t, stepper.bound, 2)
}
