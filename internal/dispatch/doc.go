// Package dispatch turns navigation state into device commands and runs them
// off the input loop.
//
// Planner resolves the selection against an inventory snapshot and builds a
// Command. Dispatcher queues commands on a bounded channel and executes them
// one at a time on a worker goroutine:
//
//	planner := dispatch.NewPlanner(10)
//	d := dispatch.New(client, dispatch.Options{})
//	d.Start(ctx)
//	if cmd, ok := planner.Activate(vs, snap); ok {
//		_ = d.Submit(cmd)
//	}
//
// Submit never blocks. A full queue drops the command and logs it.
package dispatch
