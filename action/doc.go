// Package action implements a tick-driven cooperative scheduler for
// timed gameplay behavior.
/*

An Action is a single schedulable unit with a delay, a duration, group
membership, and an enter/update/exit lifecycle. An ActionList processes
its actions once per external tick, enforcing group-blocking precedence
and deferring structural mutations requested while its own iteration is
in progress.

Usage

   moved := 0.0
   a := action.New(action.Callbacks{
       OnUpdate: func(a *action.Action) { moved = a.Interpolation() },
   }).Lasts(2).After(0.5)

   list := action.NewList()
   list.Push(a)
   list.Update(1.0 / 60.0) // once per game-loop tick

Processing is single-threaded and cooperative: nothing blocks, suspends
or locks. Cancellation is expressed as Finish, which is polled on the
next process call, not preemptive. A host embedding a list in a
multi-threaded scheduler must serialize all calls into it.

BSD License

Copyright (c) the playnub authors

All rights reserved.

Please refer to the license file for more information.
*/
package action

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'playnub.action'
func tracer() tracing.Trace {
	return tracing.Select("playnub.action")
}
