package shake

// A Group aggregates several simultaneous shakes into a single
// pair of offsets, the typical setup for a camera that can be hit
// by overlapping explosions, recoil and ambient rumble at once.
//
// Completed and stopped shakes are pruned automatically on
// [Group.Update](), so fire-and-forget triggering is fine:
//
//	group.Add(explosionTemplate.Clone()).Start()
type Group struct {
	shakes []*Shake
}

// Adds a shake to the group and returns it, allowing the
// add-then-start chaining shown above. The shake is not started.
func (self *Group) Add(shake *Shake) *Shake {
	self.shakes = append(self.shakes, shake)
	return shake
}

// Updates every shaking member once and returns the summed
// position and rotation offsets. Members that have stopped
// (naturally or explicitly) are removed; members added but not
// yet started are kept and skipped.
func (self *Group) Update() (position, rotation Vec3) {
	keep := self.shakes[:0]
	for _, shk := range self.shakes {
		if shk.cleanup.released() {
			continue
		}
		if shk.IsShaking() {
			pos, rot, done := shk.Update()
			if done {
				// the final sample sits at (or past) the zero
				// point of the envelope; dropping it avoids a
				// negative-amplitude spike on late ticks
				continue
			}
			position = position.Add(pos)
			rotation = rotation.Add(rot)
		}
		keep = append(keep, shk)
	}
	// drop trailing references so pruned shakes can be collected
	for i := len(keep); i < len(self.shakes); i++ {
		self.shakes[i] = nil
	}
	self.shakes = keep
	return position, rotation
}

// Stops every member and empties the group.
func (self *Group) StopAll() {
	for _, shk := range self.shakes {
		shk.Stop()
	}
	self.shakes = nil
}

// Reports whether any member is currently shaking.
func (self *Group) IsShaking() bool {
	for _, shk := range self.shakes {
		if shk.IsShaking() {
			return true
		}
	}
	return false
}

// Returns the number of members, including not-yet-started ones.
func (self *Group) Len() int {
	return len(self.shakes)
}
