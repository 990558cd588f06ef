package shake

// Possible states for a cleanup list. Once releasing starts the
// list never goes back to live, so release is a one-way door.
const (
	cleanupLive uint8 = iota
	cleanupReleasing
	cleanupReleased
)

// An ordered list of release actions owned by a single [Shake]
// instance. Actions run exactly once, in registration order, when
// the instance stops. The intermediate "releasing" state guards
// against reentrant release: stopping a shake from inside a bound
// callback (which the list itself manages) must not run the
// actions a second time.
type cleanupList struct {
	actions []func()
	state   uint8
}

// Registers a release action. If the list has already been
// released, the action runs immediately instead of leaking:
// late bindings on a stopped instance get detached on the spot.
func (self *cleanupList) add(action func()) {
	if self.state != cleanupLive {
		action()
		return
	}
	self.actions = append(self.actions, action)
}

func (self *cleanupList) released() bool {
	return self.state != cleanupLive
}

// Runs all registered actions in registration order. Idempotent,
// and safe against reentrant calls from within the actions.
func (self *cleanupList) release() {
	if self.state != cleanupLive {
		return
	}
	self.state = cleanupReleasing
	for _, action := range self.actions {
		action()
	}
	self.actions = nil
	self.state = cleanupReleased
}
