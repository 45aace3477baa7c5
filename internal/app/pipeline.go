package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Every use case runs as Validate → Perform → Verify.
//
//  1. VALIDATE - reject unknown options before any randomness is drawn
//  2. PERFORM  - wait out the simulated latency and run the engines
//  3. VERIFY   - check the engines' output before it reaches a caller
//
// Nothing is persisted, so there is no archive step.

// Stage identifies where in a pipeline an error occurred.
type Stage string

// Pipeline stages.
const (
	StageValidate Stage = "validate"
	StagePerform  Stage = "perform"
	StageVerify   Stage = "verify"
)

// StageError wraps an error with the stage it occurred in.
type StageError struct {
	Stage Stage
	Cause error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Cause)
}

// Unwrap exposes the cause so domain sentinels still match.
func (e *StageError) Unwrap() error {
	return e.Cause
}

// StageOf reports the stage an error occurred in.
func StageOf(err error) (Stage, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage, true
	}

	return "", false
}

// pipeline holds the steps of one use case. A nil step is skipped.
type pipeline[I, O any] struct {
	name     string
	validate func(ctx context.Context, input I) error
	perform  func(ctx context.Context, input I) (O, error)
	verify   func(ctx context.Context, input I, out O) error
}

// run executes the pipeline and logs each stage at debug level.
func (p pipeline[I, O]) run(ctx context.Context, logger *slog.Logger, input I) (O, error) {
	var zero O

	logger = logger.With(slog.String("operation", p.name))
	start := time.Now()

	if p.validate != nil {
		if err := p.validate(ctx, input); err != nil {
			logger.WarnContext(ctx, "validation failed", slog.Any("error", err))

			return zero, &StageError{Stage: StageValidate, Cause: err}
		}
		logger.DebugContext(ctx, "validation passed")
	}

	out, err := p.perform(ctx, input)
	if err != nil {
		logger.ErrorContext(ctx, "perform failed", slog.Any("error", err))

		return zero, &StageError{Stage: StagePerform, Cause: err}
	}

	if p.verify != nil {
		if err := p.verify(ctx, input, out); err != nil {
			logger.ErrorContext(ctx, "verification failed", slog.Any("error", err))

			return zero, &StageError{Stage: StageVerify, Cause: err}
		}
		logger.DebugContext(ctx, "result verified")
	}

	logger.DebugContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return out, nil
}
