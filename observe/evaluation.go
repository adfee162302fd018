package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/errors"
)

// Span attribute keys.
const (
	AttrElements   = "seq.elements"
	AttrDurationMs = "duration_ms"
	AttrErrorCode  = "error.code"
)

// Evaluation tracks one terminal evaluation of a named sequence: a span
// from start to end, and the evaluation metrics when Metrics is set.
type Evaluation struct {
	Name      string
	StartTime time.Time
	Metrics   *Metrics

	ctx      context.Context
	span     trace.Span
	duration time.Duration
	ended    bool
}

// StartEvaluation starts a span named "seq.evaluate <name>". A nil metrics
// skips metric recording.
func StartEvaluation(ctx context.Context, name string, metrics *Metrics) (context.Context, *Evaluation) {
	ctx, span := StartSpan(ctx, "seq.evaluate "+name,
		trace.WithAttributes(attribute.String(AttrSequence, name)),
	)
	return ctx, &Evaluation{
		Name:      name,
		StartTime: time.Now(),
		Metrics:   metrics,
		ctx:       ctx,
		span:      span,
	}
}

// SetElements records how many elements the evaluation produced.
func (e *Evaluation) SetElements(n int) {
	e.span.SetAttributes(attribute.Int(AttrElements, n))
}

// End ends the span and records the outcome. An empty-sequence error is
// reported with StatusEmpty and does not mark the span as failed. End
// returns the status it recorded.
func (e *Evaluation) End(err error) string {
	duration := time.Since(e.StartTime)
	e.duration, e.ended = duration, true
	status := StatusOK

	switch {
	case err == nil:
	case errors.HasCode(err, errors.ErrCodeEmptySequence):
		status = StatusEmpty
	default:
		status = StatusError
		e.span.RecordError(err)
		e.span.SetStatus(codes.Error, err.Error())
		if appErr, ok := errors.AsAppError(err); ok {
			e.span.SetAttributes(attribute.String(AttrErrorCode, string(appErr.Code)))
		}
	}

	e.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	e.span.End()

	if e.Metrics != nil {
		e.Metrics.RecordEvaluation(e.ctx, e.Name, status, duration)
		if status == StatusError {
			e.Metrics.RecordError(e.ctx, e.Name, err)
		}
	}
	return status
}

// Duration returns the duration End recorded, or the time elapsed so far
// while the evaluation is running.
func (e *Evaluation) Duration() time.Duration {
	if e.ended {
		return e.duration
	}
	return time.Since(e.StartTime)
}
