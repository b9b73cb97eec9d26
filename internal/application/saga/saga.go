// Package saga runs a list of side-effecting steps and undoes the completed
// ones when a later step fails. Steps run synchronously in the caller's
// goroutine.
package saga

import (
	"context"
	"errors"
	"fmt"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// State represents the state of a saga
type State string

const (
	StatePending     State = "pending"
	StateRunning     State = "running"
	StateCompleted   State = "completed"
	StateCompensated State = "compensated"
	StateFailed      State = "failed"
)

// Step is one unit of work. Compensate may be nil when the step has nothing
// to undo. A failing step is compensated too, since it may have produced
// partial effects before failing.
type Step struct {
	Name       string
	Execute    func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Saga executes its steps in order.
type Saga struct {
	name   string
	steps  []Step
	state  State
	logger interfaces.Logger
}

// New creates an empty saga.
func New(name string, logger interfaces.Logger) *Saga {
	return &Saga{
		name:   name,
		state:  StatePending,
		logger: logger,
	}
}

// AddStep appends a step.
func (s *Saga) AddStep(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// State returns the current state.
func (s *Saga) State() State {
	return s.state
}

// StepError reports the step that failed and, when undoing failed as well,
// the compensation error.
type StepError struct {
	Step       string
	Err        error
	Compensate error
}

func (e *StepError) Error() string {
	if e.Compensate != nil {
		return fmt.Sprintf("step %q failed: %v (compensation failed: %v)", e.Step, e.Err, e.Compensate)
	}
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

// Unwrap exposes both the step failure and the compensation failure.
func (e *StepError) Unwrap() []error {
	if e.Compensate != nil {
		return []error{e.Err, e.Compensate}
	}
	return []error{e.Err}
}

// Run executes the steps. On the first failure the failed step and every
// step before it are compensated in reverse order, and a *StepError is
// returned. Compensation continues past failing compensations.
func (s *Saga) Run(ctx context.Context) error {
	s.state = StateRunning

	for i, step := range s.steps {
		s.logger.Debug("Executing saga step",
			interfaces.String("saga", s.name),
			interfaces.String("step", step.Name),
			interfaces.Int("step_number", i+1))

		if err := step.Execute(ctx); err != nil {
			s.logger.Error("Saga step failed",
				interfaces.String("saga", s.name),
				interfaces.String("step", step.Name),
				interfaces.Error(err))

			compensateErr := s.compensate(ctx, i)
			if compensateErr != nil {
				s.state = StateFailed
			} else {
				s.state = StateCompensated
			}
			return &StepError{Step: step.Name, Err: err, Compensate: compensateErr}
		}
	}

	s.state = StateCompleted
	return nil
}

func (s *Saga) compensate(ctx context.Context, failedStep int) error {
	var errs []error
	for i := failedStep; i >= 0; i-- {
		step := s.steps[i]
		if step.Compensate == nil {
			continue
		}

		s.logger.Info("Compensating saga step",
			interfaces.String("saga", s.name),
			interfaces.String("step", step.Name))

		if err := step.Compensate(ctx); err != nil {
			s.logger.Error("Compensation failed",
				interfaces.String("saga", s.name),
				interfaces.String("step", step.Name),
				interfaces.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
