package action

import "math"

// Target is an externally owned reference an action may be bound to. The
// scheduler only ever reads liveness; it never owns the target. A dead
// target silently terminates the action's future processing.
type Target interface {
	Alive() bool
}

// Behavior is the lifecycle of an action: Enter fires once when the
// action becomes active, Update fires every processed tick while active,
// Exit fires once when the action reaches its terminal boundary or is
// finished explicitly.
type Behavior interface {
	Enter(a *Action)
	Update(a *Action)
	Exit(a *Action)
}

// Callbacks adapts plain functions to the Behavior interface. Nil fields
// are skipped.
type Callbacks struct {
	OnEnter  func(a *Action)
	OnUpdate func(a *Action)
	OnExit   func(a *Action)
}

// Enter implements Behavior.
func (c Callbacks) Enter(a *Action) {
	if c.OnEnter != nil {
		c.OnEnter(a)
	}
}

// Update implements Behavior.
func (c Callbacks) Update(a *Action) {
	if c.OnUpdate != nil {
		c.OnUpdate(a)
	}
}

// Exit implements Behavior.
func (c Callbacks) Exit(a *Action) {
	if c.OnExit != nil {
		c.OnExit(a)
	}
}

// Action is a single schedulable unit of timed behavior. Configuration is
// builder-style and validated on write; time advances through Process.
// The scheduler never destroys an Action, ownership stays with the caller.
type Action struct {
	behavior Behavior
	target   Target
	bound    bool // a target was set, liveness is checked

	duration float64 // seconds, >= 0, +Inf = indefinite
	delay    float64 // seconds, >= 0
	elapsed  float64

	participating GroupSet // always includes group 0
	blocking      GroupSet

	entered  bool
	finished bool
	reversed bool
}

// New creates an action with the given lifecycle behavior. behavior may
// be nil for a pure timer.
func New(behavior Behavior) *Action {
	return &Action{
		behavior:      behavior,
		participating: GroupSet(1), // group 0 is universal
	}
}

// === Builder configuration =================================================

// Targets binds the action to an externally owned reference. Once the
// target reports dead, the action is treated as already done.
// Part of builder functionality.
func (a *Action) Targets(t Target) *Action {
	a.target = t
	a.bound = true
	return a
}

// Lasts sets the active duration in seconds, clamped to >= 0.
// Part of builder functionality.
func (a *Action) Lasts(seconds float64) *Action {
	if seconds < 0 {
		seconds = 0
	}
	a.duration = seconds
	return a
}

// Indefinitely marks the action as open-ended: it never reaches its
// forward boundary on its own and must be finished explicitly (or
// skipped). Part of builder functionality.
func (a *Action) Indefinitely() *Action {
	a.duration = math.Inf(1)
	return a
}

// After sets the start delay in seconds, clamped to >= 0.
// Part of builder functionality.
func (a *Action) After(seconds float64) *Action {
	if seconds < 0 {
		seconds = 0
	}
	a.delay = seconds
	return a
}

// InGroups adds the action to participating groups. Group 0 stays
// included regardless. Part of builder functionality.
func (a *Action) InGroups(ids ...uint) *Action {
	a.participating = a.participating.Union(Groups(ids...)).With(0)
	return a
}

// Blocks declares the groups this action prevents from running while it
// is active. Part of builder functionality.
func (a *Action) Blocks(ids ...uint) *Action {
	a.blocking = a.blocking.Union(Groups(ids...))
	return a
}

// BlocksOwnGroups makes the action block every group it participates in.
// Part of builder functionality.
func (a *Action) BlocksOwnGroups() *Action {
	a.blocking = a.blocking.Union(a.participating)
	return a
}

// === Accessors =============================================================

// Duration returns the configured active duration in seconds.
func (a *Action) Duration() float64 { return a.duration }

// Delay returns the configured start delay in seconds.
func (a *Action) Delay() float64 { return a.delay }

// IsIndefinite is a predicate: is the duration open-ended?
func (a *Action) IsIndefinite() bool { return math.IsInf(a.duration, 1) }

// Participating returns the groups the action belongs to.
func (a *Action) Participating() GroupSet { return a.participating }

// Blocking returns the groups the action blocks while active.
func (a *Action) Blocking() GroupSet { return a.blocking }

// Reversed is a predicate: is time currently accumulating backwards?
func (a *Action) Reversed() bool { return a.reversed }

// Entered is a predicate: has the lifecycle's Enter fired?
func (a *Action) Entered() bool { return a.entered }

// TimePassed returns the active time in [0,duration], excluding the delay.
func (a *Action) TimePassed() float64 {
	t := a.elapsed - a.delay
	if t < 0 {
		return 0
	}
	if t > a.duration {
		return a.duration
	}
	return t
}

// Interpolation returns the active progress in [0,1]. Zero-duration
// actions report 1 once entered; indefinite actions always report 0.
func (a *Action) Interpolation() float64 {
	if a.IsIndefinite() {
		return 0
	}
	if a.duration <= 0 {
		if a.entered {
			return 1
		}
		return 0
	}
	return a.TimePassed() / a.duration
}

// Done is a predicate: the action finished explicitly, or elapsed time
// reached its terminal boundary (0 when reversed, duration+delay forward).
func (a *Action) Done() bool {
	if a.finished {
		return true
	}
	if a.reversed {
		return a.elapsed <= 0 && a.entered
	}
	// A zero-duration, zero-delay action is not born done: its first
	// Process call completes it instantly, firing the full lifecycle.
	return a.elapsed >= a.delay+a.duration && (a.entered || a.delay+a.duration > 0)
}

// === Lifecycle =============================================================

// Process advances the action by dt seconds (signed by direction),
// applies delay gating, and drives the enter/update/exit sequence.
// Calling Process on a done action is a side-effect-free no-op; a dead
// target turns the action terminal without callbacks.
func (a *Action) Process(dt float64) {
	if a.Done() {
		return
	}
	if a.bound && (a.target == nil || !a.target.Alive()) {
		a.finished = true
		return
	}
	if a.reversed {
		a.elapsed -= dt
	} else {
		a.elapsed += dt
	}
	total := a.delay + a.duration
	if a.elapsed > total {
		a.elapsed = total
	}
	if a.elapsed < 0 {
		a.elapsed = 0
	}
	if a.elapsed < a.delay && !(a.reversed && a.elapsed <= 0) {
		return // still gated by the delay
	}
	if a.elapsed >= a.delay {
		if !a.entered {
			a.entered = true
			if a.behavior != nil {
				a.behavior.Enter(a)
			}
		}
		if a.behavior != nil {
			a.behavior.Update(a)
		}
	}
	atBoundary := a.elapsed >= total
	if a.reversed {
		atBoundary = a.elapsed <= 0
	}
	if atBoundary {
		if a.entered && a.behavior != nil {
			a.behavior.Exit(a)
		}
		a.finished = true
	}
}

// Finish terminates the action explicitly. Exit fires if the action had
// entered; finishing an already-done action is a no-op.
func (a *Action) Finish() {
	if a.Done() {
		return
	}
	if a.entered && a.behavior != nil {
		a.behavior.Exit(a)
	}
	a.finished = true
}

// Restart rewinds the action to the starting boundary of its current
// direction and clears the lifecycle flags.
func (a *Action) Restart() {
	if a.reversed {
		a.elapsed = a.delay + a.duration
	} else {
		a.elapsed = 0
	}
	a.entered = false
	a.finished = false
}

// Reverse inverts the direction of time accumulation and swaps the
// terminal boundary. A finished action becomes processable again,
// counting back from the boundary it stopped at.
func (a *Action) Reverse() {
	a.reversed = !a.reversed
	a.finished = false
}

// remaining is the time needed to reach the terminal boundary of the
// current direction.
func (a *Action) remaining() float64 {
	if a.reversed {
		return a.elapsed
	}
	return a.delay + a.duration - a.elapsed
}
