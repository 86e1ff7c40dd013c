package action

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func timer(seconds float64) *Action {
	return New(nil).Lasts(seconds)
}

func TestListUpdateProcessesInOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	var c1, c2 counter
	l.Push(New(c1.callbacks()).Lasts(2))
	l.Push(New(c2.callbacks()).Lasts(2))
	assert.Equal(t, 2, l.Len())
	l.Update(1)
	assert.Equal(t, 1, c1.updates)
	assert.Equal(t, 1, c2.updates)
	assert.False(t, l.Done())
	l.Update(1)
	assert.True(t, l.Done())
	assert.Equal(t, 1, c1.exits)
	assert.Equal(t, 1, c2.exits)
	// Done actions stay in the list but are not reprocessed.
	l.Update(1)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 2, c1.updates)
}

func TestListDisjointGroupsRunTogether(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	counters := make([]counter, 3)
	for i := range counters {
		id := uint(i + 1)
		l.Push(New(counters[i].callbacks()).Lasts(1).InGroups(id).Blocks(id))
	}
	l.Update(0.5)
	for i := range counters {
		assert.Equal(t, 1, counters[i].updates, "action %d should not be blocked", i)
	}
}

func TestListBlockingSkipsLaterActions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	var blocker, walker counter
	l.Push(New(blocker.callbacks()).Lasts(1).Blocks(5))
	w := New(walker.callbacks()).Lasts(1).InGroups(5)
	l.Push(w)
	l.Update(0.5)
	assert.Equal(t, 1, blocker.updates)
	assert.Equal(t, 0, walker.updates)
	assert.Equal(t, 0.0, w.TimePassed())
	// The blocker reaches its boundary this tick and stops blocking.
	l.Update(0.5)
	assert.Equal(t, 1, walker.updates)
	assert.Equal(t, 0.5, w.TimePassed())
}

func TestListPushDuringUpdateIsDeferred(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	var late counter
	l.Push(New(Callbacks{
		OnUpdate: func(*Action) {
			l.Push(New(late.callbacks()).Lasts(1))
		},
	}).Lasts(1))
	l.Update(0.5)
	assert.Equal(t, 2, l.Len())
	// The pushed action was not processed in the tick that pushed it.
	assert.Equal(t, 0, late.updates)
	l.Update(0.5)
	assert.Equal(t, 1, late.updates)
}

func TestListReverseMidUpdateInterrupts(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	var first, third counter
	a := New(first.callbacks()).Lasts(10)
	b := New(Callbacks{
		OnUpdate: func(*Action) { l.Reverse() },
	}).Lasts(10)
	c := New(third.callbacks()).Lasts(10)
	l.Push(a)
	l.Push(b)
	l.Push(c)
	l.Update(1)
	assert.Equal(t, 1, first.updates)
	assert.Equal(t, 0, third.updates)
	// The deferred reversal was applied after the tick.
	assert.True(t, a.Reversed())
	assert.True(t, c.Reversed())
}

func TestListReverseRestartsFinishedList(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	a := timer(1)
	b := timer(1)
	l.Push(a)
	l.Push(b)
	l.Update(2)
	assert.True(t, l.Done())
	l.Reverse()
	assert.False(t, l.Done())
	assert.True(t, a.Reversed())
	assert.Equal(t, 1.0, a.TimePassed())
	l.Update(0.5)
	assert.Equal(t, 0.5, a.TimePassed())
	l.Update(0.5)
	assert.True(t, l.Done())
}

func TestListSkip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	var forever counter
	l.Push(timer(5))
	l.Push(timer(10))
	l.Push(New(forever.callbacks()).Indefinitely())
	l.Update(1)
	assert.False(t, l.Done())
	l.Skip()
	assert.True(t, l.Done())
	// The indefinite action's exit side effects fired.
	assert.Equal(t, 1, forever.exits)
}

func TestListNestedUpdateRejected(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	a := New(Callbacks{
		OnUpdate: func(*Action) { l.Update(1) },
	}).Lasts(10)
	l.Push(a)
	l.Update(1)
	// The nested call must not advance time a second time.
	assert.Equal(t, 1.0, a.TimePassed())
}

func TestListRejectsNil(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	l.Push(nil)
	l.Insert(0, nil)
	assert.Equal(t, 0, l.Len())
}

func TestListInsertAndRemove(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	a := timer(1)
	b := timer(1)
	c := timer(1)
	l.Push(a)
	l.Push(c)
	l.Insert(1, b)
	assert.Equal(t, 3, l.Len())
	l.Remove(b)
	assert.Equal(t, 2, l.Len())
	// Removing an action that is not held is a no-op.
	l.Remove(b)
	assert.Equal(t, 2, l.Len())
}

func TestListClearAndPrune(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	l.Push(timer(1))
	l.Push(timer(5))
	l.Update(2) // first done, second still running
	l.Prune()
	assert.Equal(t, 1, l.Len())
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Done())
}

func TestListTimeScaling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewList()
	l.DeltaMultiplier = 2
	l.TimeScale = func() float64 { return 0.5 }
	a := timer(10)
	l.Push(a)
	l.Update(1)
	assert.Equal(t, 1.0, a.TimePassed())
	l.TimeScale = func() float64 { return 0 }
	l.Update(1)
	assert.Equal(t, 1.0, a.TimePassed())
}
