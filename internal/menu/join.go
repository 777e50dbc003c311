package menu

// join waits for a set of completions and runs done once after the last one.
// Completions are tracked individually, so animations of different lengths join
// correctly. It is not safe for concurrent use: hosts deliver completions on their
// event loop.
type join struct {
	pending int
	sealed  bool
	fired   bool
	done    func()
}

func newJoin(done func()) *join {
	return &join{done: done}
}

// track registers one pending completion and returns the function that resolves it.
// Calling the returned function more than once has no further effect.
func (j *join) track() func() {
	j.pending++
	resolved := false

	return func() {
		if resolved {
			return
		}

		resolved = true
		j.pending--
		j.tryFire()
	}
}

// seal marks the set as complete; done runs now if nothing is pending
func (j *join) seal() {
	j.sealed = true
	j.tryFire()
}

func (j *join) tryFire() {
	if !j.sealed || j.fired || j.pending > 0 {
		return
	}

	j.fired = true

	if j.done != nil {
		j.done()
	}
}
