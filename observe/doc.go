// Package observe adds logging, metrics and tracing to sequences without
// changing what they yield.
//
// Logging:
//
//	evens = observe.Logged(evens, logger.Get(logger.ComponentPlan), "evens")
//
// Metrics:
//
//	mp, err := observe.InitMeter(ctx, observe.DefaultConfig("seqdemo"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observe.NewMetrics(observe.Meter())
//	evens = observe.Instrumented(evens, metrics, "evens")
//
// Tracing:
//
//	tp, err := observe.InitTracer(ctx, observe.DefaultConfig("seqdemo"))
//	defer tp.Shutdown(ctx)
//
//	ctx, eval := observe.StartEvaluation(ctx, "evens", metrics)
//	total, err := seq.SumInt64(evens, identity)
//	eval.End(err)
package observe
