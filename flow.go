package flow

import (
	"log/slog"
	"sync"

	"github.com/andriiyaremenko/flow/internal"
	"github.com/google/uuid"
)

// Unit is a callback run inside a stage.
// err and args are the activation arguments the stage was started with.
type Unit func(c *Controller, err error, args ...any)

// EntryUnit is a callback run for one entry of a Collection.
// value and key of the entry precede the activation arguments.
type EntryUnit func(c *Controller, value, key any, err error, args ...any)

type launcher func(c *Controller, err error, args []any)

type stage []launcher

// Flow is an ordered queue of stages.
// Stages are started one at a time by the signals units send through their Controller.
type Flow struct {
	id      uuid.UUID
	logger  *slog.Logger
	recover bool

	mu     sync.Mutex
	stages []stage
	epoch  uint64
	state  stageState
}

// Creates new *Flow with units as its first stage.
// Arguments follow the rules of Then.
func New(units ...any) *Flow {
	f := &Flow{
		id:     uuid.New(),
		logger: slog.New(slog.DiscardHandler),
	}

	return f.Then(units...)
}

// Applies options to the Flow.
// Should be called before the Flow is run.
func (f *Flow) With(opts ...Option) *Flow {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, option := range opts {
		option(f)
	}

	return f
}

// Returns Flow ID.
func (f *Flow) ID() uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.id
}

// Returns number of stages waiting to be started.
func (f *Flow) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.stages)
}

// Appends one stage running every unit concurrently.
// Each argument is a Unit, a func(*Controller, error, ...any)
// or a list ([]Unit, []any) of those, lists are spliced in order.
// No stage is appended if there are no units.
// Panics with *ErrUnitType on any other argument.
func (f *Flow) Then(units ...any) *Flow {
	flat := flatten("Then", units, asUnit)
	if len(flat) == 0 {
		return f
	}

	s := make(stage, len(flat))
	for i, unit := range flat {
		s[i] = f.unitLauncher(unit)
	}

	f.push(s)

	return f
}

// Appends one stage per entry of collection, each running all units
// with the entry value and key. Entries are therefore handled one after another.
// Arguments follow the rules of Then with EntryUnit in place of Unit.
func (f *Flow) Sequential(collection Collection, units ...any) *Flow {
	flat := flatten("Sequential", units, asEntryUnit)
	if len(flat) == 0 || collection == nil {
		return f
	}

	for key, value := range collection.All() {
		s := make(stage, len(flat))
		for i, unit := range flat {
			s[i] = f.entryLauncher(unit, value, key)
		}

		f.push(s)
	}

	return f
}

// Appends a single stage with one unit per entry of collection,
// so every entry is handled concurrently.
// No stage is appended for an empty collection.
func (f *Flow) Parallel(collection Collection, unit EntryUnit) *Flow {
	if collection == nil || collection.Len() == 0 || unit == nil {
		return f
	}

	s := make(stage, 0, collection.Len())
	for key, value := range collection.All() {
		s = append(s, f.entryLauncher(unit, value, key))
	}

	f.push(s)

	return f
}

// Appends the last stage and runs the Flow with no arguments.
func (f *Flow) Finally(units ...any) *Flow {
	return f.Then(units...).Run(nil)
}

// Runs the Flow: the first stage is started with err and args.
func (f *Flow) Run(err error, args ...any) *Flow {
	f.mu.Lock()
	a, ok := f.continueLocked(err, args)
	f.mu.Unlock()

	if ok {
		f.launch(a)
	}

	return f
}

func (f *Flow) push(s stage) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stages = append(f.stages, s)
}

func (f *Flow) unitLauncher(unit Unit) launcher {
	return func(c *Controller, err error, args []any) {
		f.invoke(c, unit, func() { unit(c, err, args...) })
	}
}

func (f *Flow) entryLauncher(unit EntryUnit, value, key any) launcher {
	return func(c *Controller, err error, args []any) {
		f.invoke(c, unit, func() { unit(c, value, key, err, args...) })
	}
}

func (f *Flow) invoke(c *Controller, unit any, call func()) {
	if f.recover {
		defer func() {
			if r := recover(); r != nil {
				err := NewErrPanic(unit, r)

				f.logger.Warn("Recovered from unit panic.", "flowID", f.id, "index", c.index, "error", err)
				c.Done(err, nil)
			}
		}()
	}

	call()
}

func asUnit(v any) (Unit, bool) {
	switch unit := v.(type) {
	case Unit:
		return unit, unit != nil
	case func(*Controller, error, ...any):
		return unit, unit != nil
	default:
		return nil, false
	}
}

func asEntryUnit(v any) (EntryUnit, bool) {
	switch unit := v.(type) {
	case EntryUnit:
		return unit, unit != nil
	case func(*Controller, any, any, error, ...any):
		return unit, unit != nil
	default:
		return nil, false
	}
}

func flatten[T any](builder string, units []any, accept func(any) (T, bool)) []T {
	flat, rejected, ok := internal.Flatten(units, accept)
	if !ok {
		panic(&ErrUnitType{builder: builder, value: rejected})
	}

	return flat
}
