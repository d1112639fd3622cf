package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/go-fortune/internal/platform/logging"
)

// Transactional pattern for state-changing use cases: Validate → Perform → Verify.
//
//  1. VALIDATE - reject input before the database is touched
//  2. PERFORM  - make the change (append to the file)
//  3. VERIFY   - read the state back and confirm the change is visible
//
// Each failure is wrapped in an ExecutionError naming the step, so callers
// can tell "nothing was written" apart from "written but not confirmed".

// ExecutionStep represents a step in the transactional pattern.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
)

// ExecutionError wraps errors with the step where they occurred.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs operations using the transactional pattern.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates a new executor with the given logger.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation defines the functions for each step. Nil steps are skipped.
type Operation[I, O any] struct {
	// Name identifies this operation for logging.
	Name string

	// Validate checks inputs and preconditions.
	Validate func(ctx context.Context, input I) error

	// Perform makes the state change.
	Perform func(ctx context.Context, input I) error

	// Verify confirms the change independently of Perform and builds the result.
	Verify func(ctx context.Context, input I) (O, error)
}

// Execute runs op against input, stopping at the first failing step.
func Execute[I, O any](ctx context.Context, exec *Executor, op Operation[I, O], input I) (O, error) {
	var zero O

	logger := logging.FromContextOr(ctx, exec.logger).With(slog.String("operation", op.Name))
	start := time.Now()

	if op.Validate != nil {
		logger.DebugContext(ctx, "starting validation")

		if err := op.Validate(ctx, input); err != nil {
			logger.DebugContext(ctx, "validation failed", slog.Any("error", err))

			return zero, &ExecutionError{Step: StepValidate, Message: "input rejected", Cause: err}
		}
	}

	if op.Perform != nil {
		logger.DebugContext(ctx, "performing operation")

		if err := op.Perform(ctx, input); err != nil {
			logger.WarnContext(ctx, "perform failed", slog.Any("error", err))

			return zero, &ExecutionError{Step: StepPerform, Message: "operation failed", Cause: err}
		}
	}

	var result O

	if op.Verify != nil {
		logger.DebugContext(ctx, "verifying result")

		verified, err := op.Verify(ctx, input)
		if err != nil {
			logger.WarnContext(ctx, "verification failed", slog.Any("error", err))

			return zero, &ExecutionError{Step: StepVerify, Message: "result not confirmed", Cause: err}
		}

		result = verified
	}

	logger.InfoContext(ctx, "operation completed",
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// GetExecutionStep extracts the step from an execution error.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
