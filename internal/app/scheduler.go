package app

// task is a unit of delayed work on the match loop's logical thread.
type task struct {
	due   int64
	seq   uint64
	epoch uint64
	run   func()
}

// scheduler queues tick-delayed tasks. Cancellation is by epoch: bumping the
// epoch orphans every outstanding task and every continuation created under
// the old epoch, which is how turn advancement and win detection cut off
// stale callbacks wholesale.
type scheduler struct {
	now   int64
	seq   uint64
	epoch uint64
	tasks []task
}

// schedule queues fn to run delay ticks from now under the current epoch.
func (s *scheduler) schedule(delay int64, fn func()) {
	if delay < 1 {
		delay = 1
	}
	s.seq++
	s.tasks = append(s.tasks, task{
		due:   s.now + delay,
		seq:   s.seq,
		epoch: s.epoch,
		run:   fn,
	})
}

// cancelAll invalidates every queued task and every gate issued so far.
func (s *scheduler) cancelAll() {
	s.epoch++
	s.tasks = nil
}

// gate returns a check that reports whether the epoch at call time is still
// current. Continuations that outlive their pipeline use it to become no-ops.
func (s *scheduler) gate() func() bool {
	epoch := s.epoch
	return func() bool { return epoch == s.epoch }
}

// runNext executes the earliest due task, if any, and reports whether one
// ran. Tasks cancelled by an epoch bump are discarded without running.
func (s *scheduler) runNext(now int64) bool {
	s.now = now
	best := -1
	for i, t := range s.tasks {
		if t.due > now {
			continue
		}
		if best == -1 || t.due < s.tasks[best].due ||
			(t.due == s.tasks[best].due && t.seq < s.tasks[best].seq) {
			best = i
		}
	}
	if best == -1 {
		return false
	}
	t := s.tasks[best]
	s.tasks = append(s.tasks[:best], s.tasks[best+1:]...)
	if t.epoch != s.epoch {
		return true
	}
	t.run()
	return true
}
