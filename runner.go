package shake

import "sort"

// Priority assigned to anonymous [Runner.Connect]() subscriptions.
const DefaultPriority = 100

type runnerStep struct {
	name     string
	priority int
	fn       func()
}

// A concrete per-frame driver for plain game loops, implementing
// both [Signal] and [Stepper]. Call [Runner.Step]() once per tick
// (e.g. from your ebiten Update method) and every registered
// callback fires in priority order, lower priorities first,
// registration order breaking ties.
//
// The zero value is ready to use. Like [Shake] itself, a Runner
// assumes single-owner access and performs no locking.
type Runner struct {
	steps []runnerStep
}

// Registers fn under the given name and priority. Binding a name
// that's already registered replaces the previous callback.
func (self *Runner) BindToStep(name string, priority int, fn func()) {
	for i := range self.steps {
		if self.steps[i].name == name {
			self.steps[i].priority = priority
			self.steps[i].fn = fn
			self.resort()
			return
		}
	}
	self.steps = append(self.steps, runnerStep{name: name, priority: priority, fn: fn})
	self.resort()
}

// Removes the callback registered under the given name, if any.
// Safe to call from within a stepping callback.
func (self *Runner) UnbindFromStep(name string) {
	for i := range self.steps {
		if self.steps[i].name == name {
			self.steps = append(self.steps[:i], self.steps[i+1:]...)
			return
		}
	}
}

// Subscribes fn with [DefaultPriority] under a generated name.
// Disconnecting the returned [Connection] unbinds it.
func (self *Runner) Connect(fn func()) Connection {
	name := NextBindingName()
	self.BindToStep(name, DefaultPriority, fn)
	return &runnerConnection{runner: self, name: name}
}

// Invokes all registered callbacks once, in priority order.
// Callbacks may unbind themselves (or others) mid-step: entries
// removed during the sweep are skipped rather than called.
func (self *Runner) Step() {
	names := make([]string, len(self.steps))
	for i, step := range self.steps {
		names[i] = step.name
	}
	for _, name := range names {
		if fn := self.lookup(name); fn != nil {
			fn()
		}
	}
}

// Returns the number of currently registered callbacks.
func (self *Runner) Len() int {
	return len(self.steps)
}

func (self *Runner) lookup(name string) func() {
	for i := range self.steps {
		if self.steps[i].name == name {
			return self.steps[i].fn
		}
	}
	return nil
}

func (self *Runner) resort() {
	sort.SliceStable(self.steps, func(i, j int) bool {
		return self.steps[i].priority < self.steps[j].priority
	})
}

type runnerConnection struct {
	runner *Runner
	name   string
}

func (self *runnerConnection) Disconnect() {
	self.runner.UnbindFromStep(self.name)
}
