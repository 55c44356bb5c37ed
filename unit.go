package flow

import (
	"slices"
	"sync"
)

// Outcome carries the activation arguments a stage was started with.
type Outcome struct {
	Err    error
	Values []any
}

// Returns Unit that computes its value with fn and reports it with Done.
func Func(fn func(err error, args ...any) (any, error)) Unit {
	return func(c *Controller, err error, args ...any) {
		v, e := fn(err, args...)
		c.Done(e, v)
	}
}

// Returns EntryUnit that computes its value with fn and reports it with Done.
func EntryFunc(fn func(value, key any, err error, args ...any) (any, error)) EntryUnit {
	return func(c *Controller, value, key any, err error, args ...any) {
		v, e := fn(value, key, err, args...)
		c.Done(e, v)
	}
}

// Unit that continues with the same arguments it receives.
func PassThrough() Unit {
	return func(c *Controller, err error, args ...any) {
		c.Continue(err, args...)
	}
}

// Returns Unit that runs unit in its own goroutine.
// A panic in that goroutine is reported with Done as *ErrPanic.
func Go(unit Unit) Unit {
	return func(c *Controller, err error, args ...any) {
		go func() {
			defer recoverDone(c, unit)

			unit(c, err, args...)
		}()
	}
}

// Returns EntryUnit that runs unit in its own goroutine.
// A panic in that goroutine is reported with Done as *ErrPanic.
func GoEntry(unit EntryUnit) EntryUnit {
	return func(c *Controller, value, key any, err error, args ...any) {
		go func() {
			defer recoverDone(c, unit)

			unit(c, value, key, err, args...)
		}()
	}
}

// Returns Unit that reports the first activation it receives to the returned channel
// and continues with the same arguments.
// The channel is closed after the Outcome is sent.
func Await() (Unit, <-chan Outcome) {
	outcome := make(chan Outcome, 1)

	var once sync.Once
	unit := func(c *Controller, err error, args ...any) {
		once.Do(func() {
			outcome <- Outcome{Err: err, Values: slices.Clone(args)}
			close(outcome)
		})

		c.Continue(err, args...)
	}

	return unit, outcome
}

func recoverDone(c *Controller, unit any) {
	if r := recover(); r != nil {
		c.Done(NewErrPanic(unit, r), nil)
	}
}
