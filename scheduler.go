package flow

import (
	"slices"

	"github.com/andriiyaremenko/flow/internal"
)

// Bookkeeping of the active stage, reset on every transition.
type stageState struct {
	results   []any
	errors    []error
	countdown int
}

type call struct {
	launcher launcher
	args     []any
}

// Units to start for one stage activation.
type activation struct {
	epoch uint64
	err   error
	calls []call
}

// Invokes every launcher of a, each with its own Controller.
// Once a is superseded the remaining units still run, but their Controllers are dead.
func (f *Flow) launch(a activation) {
	for i, c := range a.calls {
		c.launcher(&Controller{flow: f, epoch: a.epoch, index: i}, a.err, c.args)
	}
}

// Pops the first stage and invalidates every Controller of the previous activation.
// Must be called with f.mu held.
func (f *Flow) nextLocked(countdown func(stage) int) (stage, bool) {
	if len(f.stages) == 0 {
		f.logger.Debug("No stages left, flow halted.", "flowID", f.id, "epoch", f.epoch)

		return nil, false
	}

	s := f.stages[0]
	f.stages[0] = nil
	f.stages = f.stages[1:]

	n := countdown(s)

	f.epoch++
	f.state = stageState{
		results:   make([]any, n),
		countdown: n,
	}

	return s, true
}

// Must be called with f.mu held.
func (f *Flow) continueLocked(err error, args []any) (activation, bool) {
	s, ok := f.nextLocked(func(s stage) int { return len(s) })
	if !ok {
		return activation{}, false
	}

	f.logger.Debug("Activating stage.", "flowID", f.id, "epoch", f.epoch, "units", len(s))

	calls := make([]call, len(s))
	for i, l := range s {
		calls[i] = call{launcher: l, args: slices.Clone(args)}
	}

	return activation{epoch: f.epoch, err: err, calls: calls}, true
}

// Must be called with f.mu held.
func (f *Flow) spreadLocked(err error, values any) (activation, bool) {
	elements := spreadElements(values)

	s, ok := f.nextLocked(func(stage) int { return len(elements) })
	if !ok {
		return activation{}, false
	}

	f.logger.Debug("Spreading stage.", "flowID", f.id, "epoch", f.epoch, "elements", len(elements))

	calls := make([]call, len(elements))
	for i, e := range elements {
		calls[i] = call{launcher: s[0], args: []any{e}}
	}

	return activation{epoch: f.epoch, err: err, calls: calls}, true
}

func (f *Flow) done(c *Controller, err error, value any) {
	f.mu.Lock()

	if !c.aliveLocked() {
		f.mu.Unlock()

		return
	}

	c.done = true

	st := &f.state
	st.results[c.index] = value

	if !internal.IsNil(err) {
		st.errors = append(st.errors, err)
	}

	st.countdown--
	if st.countdown > 0 {
		f.mu.Unlock()

		return
	}

	joined := Aggregate(st.errors)

	f.logger.Debug("Stage joined.", "flowID", f.id, "epoch", f.epoch, "errors", len(st.errors))

	a, ok := f.continueLocked(joined, st.results)
	f.mu.Unlock()

	if ok {
		f.launch(a)
	}
}

func (f *Flow) preempt(c *Controller, err error, values []any) {
	f.mu.Lock()

	if !c.aliveLocked() {
		f.mu.Unlock()

		return
	}

	a, ok := f.continueLocked(err, values)
	f.mu.Unlock()

	if ok {
		f.launch(a)
	}
}

func (f *Flow) breakTo(c *Controller, err error, values []any) {
	f.mu.Lock()

	if !c.aliveLocked() {
		f.mu.Unlock()

		return
	}

	if n := len(f.stages); n > 1 {
		f.logger.Debug("Breaking to the last stage.", "flowID", f.id, "epoch", f.epoch, "discarded", n-1)

		clear(f.stages[:n-1])
		f.stages = f.stages[n-1:]
	}

	a, ok := f.continueLocked(err, values)
	f.mu.Unlock()

	if ok {
		f.launch(a)
	}
}

func (f *Flow) spread(c *Controller, err error, values any) {
	f.mu.Lock()

	if !c.aliveLocked() {
		f.mu.Unlock()

		return
	}

	a, ok := f.spreadLocked(err, values)
	f.mu.Unlock()

	if ok {
		f.launch(a)
	}
}

// Elements to spread, never empty: nothing to spread yields one nil element.
func spreadElements(values any) []any {
	var elements []any

	if collection, ok := values.(Collection); ok {
		elements = make([]any, 0, collection.Len())
		for _, v := range collection.All() {
			elements = append(elements, v)
		}
	} else {
		elements = internal.Elements(values)
	}

	if len(elements) == 0 {
		return []any{nil}
	}

	return elements
}
