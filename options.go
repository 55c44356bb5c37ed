package flow

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option configures Flow.
type Option func(*Flow)

// Option that specifies logger used to report stage transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Flow) {
		if logger == nil {
			return
		}

		f.logger = logger
	}
}

// Option that recovers unit panics.
// A panicking unit is treated as done with *ErrPanic.
func WithRecovery() Option {
	return func(f *Flow) {
		f.recover = true
	}
}

// Option that sets Flow ID instead of a generated one.
func WithID(id uuid.UUID) Option {
	return func(f *Flow) {
		f.id = id
	}
}
