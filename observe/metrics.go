package observe

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/seq"
)

// Metric attribute keys.
const (
	AttrSequence = "sequence"
	AttrStatus   = "status"
	AttrCode     = "code"
)

// Evaluation statuses.
const (
	StatusOK    = "ok"
	StatusEmpty = "empty"
	StatusError = "error"
)

// Metrics holds OpenTelemetry instruments for sequence evaluation.
type Metrics struct {
	iterators          metric.Int64Counter
	elements           metric.Int64Counter
	errorTotal         metric.Int64Counter
	evaluations        metric.Int64Counter
	evaluationDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	iterators, err := meter.Int64Counter("seq.iterators",
		metric.WithDescription("Iterators acquired from a sequence"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seq.iterators counter: %w", err)
	}

	elements, err := meter.Int64Counter("seq.elements",
		metric.WithDescription("Elements pulled from a sequence"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seq.elements counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("seq.errors",
		metric.WithDescription("Errors raised while iterating a sequence, by code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seq.errors counter: %w", err)
	}

	evaluations, err := meter.Int64Counter("seq.evaluations",
		metric.WithDescription("Terminal evaluations, by status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seq.evaluations counter: %w", err)
	}

	evaluationDuration, err := meter.Float64Histogram("seq.evaluation.duration",
		metric.WithDescription("Duration of terminal evaluations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating seq.evaluation.duration histogram: %w", err)
	}

	return &Metrics{
		iterators:          iterators,
		elements:           elements,
		errorTotal:         errorTotal,
		evaluations:        evaluations,
		evaluationDuration: evaluationDuration,
	}, nil
}

// RecordEvaluation records one terminal evaluation of the named sequence.
func (m *Metrics) RecordEvaluation(ctx context.Context, name, status string, d time.Duration) {
	m.evaluations.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrSequence, name),
		attribute.String(AttrStatus, status),
	))
	m.evaluationDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String(AttrSequence, name),
	))
}

// RecordError counts an iteration error under its error code.
func (m *Metrics) RecordError(ctx context.Context, name string, err error) {
	code := "UNKNOWN"
	if appErr, ok := errors.AsAppError(err); ok {
		code = string(appErr.Code)
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrSequence, name),
		attribute.String(AttrCode, code),
	))
}

// Instrumented returns a sequence that counts iterator requests and pulled
// elements of s under the given name. Failed requests and element errors are
// counted by error code.
func Instrumented[T any](s seq.Seq[T], m *Metrics, name string) seq.Seq[T] {
	if s == nil {
		panic(errors.MissingArgument("seq"))
	}
	if m == nil {
		panic(errors.MissingArgument("metrics"))
	}
	attrs := metric.WithAttributes(attribute.String(AttrSequence, name))
	return seq.Func[T](func() (seq.Iterator[T], error) {
		ctx := context.Background()
		src, err := s.Iterator()
		if err != nil {
			m.RecordError(ctx, name, err)
			return nil, err
		}
		m.iterators.Add(ctx, 1, attrs)
		return &instrumentedIter[T]{src: src, metrics: m, name: name, attrs: attrs}, nil
	})
}

type instrumentedIter[T any] struct {
	src     seq.Iterator[T]
	metrics *Metrics
	name    string
	attrs   metric.MeasurementOption
}

func (it *instrumentedIter[T]) HasNext() bool { return it.src.HasNext() }

func (it *instrumentedIter[T]) Next() (T, error) {
	v, err := it.src.Next()
	ctx := context.Background()
	if err != nil {
		if !errors.HasCode(err, errors.ErrCodeExhausted) {
			it.metrics.RecordError(ctx, it.name, err)
		}
		return v, err
	}
	it.metrics.elements.Add(ctx, 1, it.attrs)
	return v, nil
}
