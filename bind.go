package shake

// Callback shape for bound shakes: receives exactly what
// [Shake.Update]() returns, once per driver tick.
type UpdateFunc func(position, rotation Vec3, done bool)

// A live subscription handed out by a [Signal].
type Connection interface {
	Disconnect()
}

// Anything that can deliver repeated notifications through a
// connect/disconnect pair. [Runner] implements it, and event
// buses or frame dispatchers from other libraries usually only
// need a thin wrapper to match.
type Signal interface {
	Connect(fn func()) Connection
}

// A named, prioritized per-frame registry: the second external
// driver shape supported for bindings. Lower priorities step
// first. [Runner] implements it.
type Stepper interface {
	BindToStep(name string, priority int, fn func())
	UnbindFromStep(name string)
}

// Connects the shake to the given signal: on every notification
// the shake is updated and the three results are forwarded to fn.
// The connection is disconnected automatically when the shake
// stops, whether by completion or by [Shake.Stop]().
//
// Binding a shake that has already stopped connects and
// immediately disconnects, so nothing leaks.
func (self *Shake) BindToSignal(signal Signal, fn UpdateFunc) {
	conn := signal.Connect(func() {
		fn(self.Update())
	})
	self.cleanup.add(conn.Disconnect)
}

// Registers the shake on the given per-frame stepper under a
// fresh unique name (see [NextBindingName]()) with the given
// priority, updating the shake and forwarding the results to fn
// on every step. The registration is removed automatically when
// the shake stops.
func (self *Shake) BindToStepper(stepper Stepper, priority int, fn UpdateFunc) {
	name := NextBindingName()
	stepper.BindToStep(name, priority, func() {
		fn(self.Update())
	})
	self.cleanup.add(func() { stepper.UnbindFromStep(name) })
}
