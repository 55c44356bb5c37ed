package config

import (
	"errors"
	"fmt"

	"github.com/andriiyaremenko/flow"
)

var (
	ErrUnknownUnit = errors.New("unit not registered")
	ErrInvalidStep = errors.New("invalid step")
)

// Build creates a flow from plan with units looked up in reg.
// The finally units are appended as the last stage; the flow is not run.
func Build(reg *Registry, plan *Plan, opts ...flow.Option) (*flow.Flow, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan is nil")
	}

	f := flow.New().With(opts...)

	for i, step := range plan.Steps {
		if err := buildStep(f, reg, step); err != nil {
			return nil, fmt.Errorf("plan %q: step %d: %w", plan.Name, i, err)
		}
	}

	finally, err := units(reg, plan.Finally)
	if err != nil {
		return nil, fmt.Errorf("plan %q: finally: %w", plan.Name, err)
	}

	return f.Then(finally), nil
}

func buildStep(f *flow.Flow, reg *Registry, step Step) error {
	set := 0
	for _, ok := range []bool{len(step.Then) > 0, step.Sequential != nil, step.Parallel != nil} {
		if ok {
			set++
		}
	}

	if set != 1 {
		return fmt.Errorf("%w: want exactly one of then, sequential, parallel", ErrInvalidStep)
	}

	switch {
	case len(step.Then) > 0:
		then, err := units(reg, step.Then)
		if err != nil {
			return fmt.Errorf("then: %w", err)
		}

		f.Then(then)
	case step.Sequential != nil:
		if step.Sequential.Unit != "" {
			return fmt.Errorf("%w: sequential takes units, not unit", ErrInvalidStep)
		}

		sequential, err := entryUnits(reg, step.Sequential.Units)
		if err != nil {
			return fmt.Errorf("sequential: %w", err)
		}

		f.Sequential(step.Sequential.Items.Collection(), sequential)
	case step.Parallel != nil:
		if len(step.Parallel.Units) > 0 {
			return fmt.Errorf("%w: parallel takes unit, not units", ErrInvalidStep)
		}

		unit, ok := reg.EntryUnit(step.Parallel.Unit)
		if !ok {
			return fmt.Errorf("parallel: %q: %w", step.Parallel.Unit, ErrUnknownUnit)
		}

		f.Parallel(step.Parallel.Items.Collection(), unit)
	}

	return nil
}

func units(reg *Registry, names Names) ([]flow.Unit, error) {
	list := make([]flow.Unit, 0, len(names))
	for _, name := range names {
		unit, ok := reg.Unit(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownUnit)
		}

		list = append(list, unit)
	}

	return list, nil
}

func entryUnits(reg *Registry, names Names) ([]flow.EntryUnit, error) {
	list := make([]flow.EntryUnit, 0, len(names))
	for _, name := range names {
		unit, ok := reg.EntryUnit(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownUnit)
		}

		list = append(list, unit)
	}

	return list, nil
}
