package action

// A deferred structural mutation, queued while Update is iterating.
type command struct {
	op     int
	index  int
	action *Action
}

const (
	opPush = iota
	opInsert
	opRemove
	opClear
	opReverse
	opSkip
	opPrune
)

// ActionList is an ordered collection of actions processed once per
// external tick. It enforces group-blocking precedence within a tick and
// defers structural mutations requested while its own iteration is in
// progress. It is not safe for concurrent use; the expected caller is a
// single game-loop thread.
type ActionList struct {
	actions []*Action

	// DeltaMultiplier scales every incoming tick delta. Defaults to 1.
	DeltaMultiplier float64

	// TimeScale, when non-nil, supplies an external global time-scale
	// factor applied on top of DeltaMultiplier. Injecting it keeps the
	// scheduler deterministic and testable without a running engine.
	TimeScale func() float64

	updating    bool
	interrupted bool
	deferred    []command
}

// NewList creates an empty action list.
func NewList() *ActionList {
	return &ActionList{DeltaMultiplier: 1}
}

// Len returns the number of actions currently held.
func (l *ActionList) Len() int {
	return len(l.actions)
}

// Done is a predicate: there is nothing left to process, every held
// action is done (or the list is empty).
func (l *ActionList) Done() bool {
	for _, a := range l.actions {
		if !a.Done() {
			return false
		}
	}
	return true
}

// Update processes every action once, in list order, with the scaled
// delta. Actions participating in a group blocked by an earlier,
// still-active blocking action this tick are skipped. Structural
// mutations requested from inside lifecycle callbacks are deferred and
// flushed after the iteration completes, in the order requested.
//
// Update is not reentrant: a nested call from inside a callback is
// rejected.
func (l *ActionList) Update(delta float64) {
	if l.updating {
		tracer().Errorf("nested ActionList.Update rejected")
		return
	}
	delta *= l.DeltaMultiplier
	if l.TimeScale != nil {
		delta *= l.TimeScale()
	}
	l.updating = true
	l.interrupted = false
	var blocked GroupSet
	for _, a := range l.actions {
		if a.Done() {
			continue
		}
		if a.participating.Overlaps(blocked) {
			continue
		}
		a.Process(delta)
		if !a.Done() && !a.blocking.IsEmpty() {
			blocked = blocked.Union(a.blocking)
		}
		if l.interrupted {
			// The list's shape changed mid-tick (reversal requested);
			// stop processing, already-applied time advances stand.
			break
		}
	}
	l.updating = false
	l.flush()
}

// Push appends an action. Nil actions are rejected at the boundary.
func (l *ActionList) Push(a *Action) {
	if a == nil {
		tracer().Errorf("nil action rejected")
		return
	}
	if l.updating {
		l.enqueue(command{op: opPush, action: a})
		return
	}
	l.actions = append(l.actions, a)
}

// Insert places an action before index i (i may equal Len to append).
// Nil actions are rejected at the boundary.
func (l *ActionList) Insert(i int, a *Action) {
	if a == nil {
		tracer().Errorf("nil action rejected")
		return
	}
	if l.updating {
		l.enqueue(command{op: opInsert, index: i, action: a})
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(l.actions) {
		i = len(l.actions)
	}
	l.actions = append(l.actions, nil)
	copy(l.actions[i+1:], l.actions[i:])
	l.actions[i] = a
}

// Remove drops the first occurrence of a. Removing an action that is not
// held is a valid no-op.
func (l *ActionList) Remove(a *Action) {
	if a == nil {
		return
	}
	if l.updating {
		l.enqueue(command{op: opRemove, action: a})
		return
	}
	for i, held := range l.actions {
		if held == a {
			l.actions = append(l.actions[:i], l.actions[i+1:]...)
			return
		}
	}
}

// Clear drops every action. The actions themselves stay owned by the
// caller.
func (l *ActionList) Clear() {
	if l.updating {
		l.enqueue(command{op: opClear})
		return
	}
	l.actions = l.actions[:0]
}

// Prune drops every done action, releasing the list's references to them.
func (l *ActionList) Prune() {
	if l.updating {
		l.enqueue(command{op: opPrune})
		return
	}
	kept := l.actions[:0]
	for _, a := range l.actions {
		if !a.Done() {
			kept = append(kept, a)
		}
	}
	l.actions = kept
}

// Reverse reverses the list order and flips every contained action's
// direction. If the list had already finished, it restarts from the new
// beginning. A reversal requested mid-tick stops the current Update from
// processing further actions.
func (l *ActionList) Reverse() {
	if l.updating {
		l.interrupted = true
		l.enqueue(command{op: opReverse})
		return
	}
	wasDone := l.Done()
	for i, j := 0, len(l.actions)-1; i < j; i, j = i+1, j-1 {
		l.actions[i], l.actions[j] = l.actions[j], l.actions[i]
	}
	for _, a := range l.actions {
		a.Reverse()
	}
	if wasDone {
		tracer().Debugf("reversing a finished list, restarting %d actions", len(l.actions))
		for _, a := range l.actions {
			a.Restart()
		}
	}
}

// Skip fast-forwards every held action to its terminal state in one
// call. Ordinary actions advance by exactly their remaining time;
// indefinite actions are finished directly (their remaining time is
// unbounded) and processed once more so exit-side effects fire.
func (l *ActionList) Skip() {
	if l.updating {
		l.enqueue(command{op: opSkip})
		return
	}
	for _, a := range l.actions {
		if a.Done() {
			continue
		}
		if a.IsIndefinite() {
			a.Finish()
			a.Process(0)
			continue
		}
		a.Process(a.remaining())
	}
}

func (l *ActionList) enqueue(c command) {
	l.deferred = append(l.deferred, c)
}

// flush applies deferred mutations in the order requested. Runs with the
// reentrancy guard released, so the commands take the immediate paths.
func (l *ActionList) flush() {
	for len(l.deferred) > 0 {
		queue := l.deferred
		l.deferred = nil
		for _, c := range queue {
			switch c.op {
			case opPush:
				l.Push(c.action)
			case opInsert:
				l.Insert(c.index, c.action)
			case opRemove:
				l.Remove(c.action)
			case opClear:
				l.Clear()
			case opReverse:
				l.Reverse()
			case opSkip:
				l.Skip()
			case opPrune:
				l.Prune()
			}
		}
	}
}
