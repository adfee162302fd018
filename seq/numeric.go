package seq

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of numeric kinds the reducers project values onto.
type Number interface {
	constraints.Integer | constraints.Float
}

// Statistics summarizes a numeric projection of a sequence. For an empty
// sequence Count is zero and Min and Max hold the extreme values of the kind.
type Statistics[N Number] struct {
	Count int
	Sum   N
	Min   N
	Max   N
}

// Average returns the arithmetic mean, or zero when Count is zero.
func (st Statistics[N]) Average() float64 {
	if st.Count == 0 {
		return 0
	}
	return float64(st.Sum) / float64(st.Count)
}

func smaller[N Number](a, b N) N { return min(a, b) }
func larger[N Number](a, b N) N  { return max(a, b) }

func extremum[T any, N Number](s Seq[T], op string, fn func(T) N, pick func(N, N) N) (N, error) {
	requireSeq(s)
	requireArg(fn != nil, "selector")
	it, err := nonEmpty(s, op)
	if err != nil {
		return 0, err
	}
	return reduceOf[N](&mapIter[T, N]{src: it, fn: fn}, pick)
}

func extremumOptional[T any, N Number](s Seq[T], fn func(T) N, pick func(N, N) N) (Optional[N], error) {
	requireSeq(s)
	requireArg(fn != nil, "selector")
	return optional(s, func(it Iterator[T]) (N, error) {
		return reduceOf[N](&mapIter[T, N]{src: it, fn: fn}, pick)
	})
}

func sum[T any, N Number](s Seq[T], fn func(T) N) (N, error) {
	requireArg(fn != nil, "selector")
	return Fold(s, N(0), func(acc N, v T) N { return acc + fn(v) })
}

func average[T any, N Number](s Seq[T], fn func(T) N) (float64, error) {
	requireArg(fn != nil, "selector")
	var (
		count int
		total float64
	)
	err := ForEach(s, func(v T) {
		total += float64(fn(v))
		count++
	})
	if err != nil || count == 0 {
		return math.NaN(), err
	}
	return total / float64(count), nil
}

func statistics[T any, N Number](s Seq[T], fn func(T) N, lowest, highest N) (Statistics[N], error) {
	requireArg(fn != nil, "selector")
	return Fold(s, Statistics[N]{Min: highest, Max: lowest}, func(st Statistics[N], v T) Statistics[N] {
		n := fn(v)
		st.Count++
		st.Sum += n
		st.Min = min(st.Min, n)
		st.Max = max(st.Max, n)
		return st
	})
}

// --- int ---

// MinInt returns the smallest projection, or an EMPTY_SEQUENCE error.
func MinInt[T any](s Seq[T], fn func(T) int) (int, error) {
	return extremum(s, "min", fn, smaller[int])
}

// MaxInt returns the largest projection, or an EMPTY_SEQUENCE error.
func MaxInt[T any](s Seq[T], fn func(T) int) (int, error) {
	return extremum(s, "max", fn, larger[int])
}

// MinIntOptional returns the smallest projection, absent for an empty sequence.
func MinIntOptional[T any](s Seq[T], fn func(T) int) (Optional[int], error) {
	return extremumOptional(s, fn, smaller[int])
}

// MaxIntOptional returns the largest projection, absent for an empty sequence.
func MaxIntOptional[T any](s Seq[T], fn func(T) int) (Optional[int], error) {
	return extremumOptional(s, fn, larger[int])
}

// SumInt adds up the projections with int overflow semantics.
func SumInt[T any](s Seq[T], fn func(T) int) (int, error) { return sum(s, fn) }

// AverageInt returns the mean of the projections, NaN for an empty sequence.
func AverageInt[T any](s Seq[T], fn func(T) int) (float64, error) { return average(s, fn) }

// StatisticsInt gathers count, sum, min and max of the projections in one pass.
func StatisticsInt[T any](s Seq[T], fn func(T) int) (Statistics[int], error) {
	return statistics(s, fn, math.MinInt, math.MaxInt)
}

// --- int64 ---

// MinInt64 returns the smallest projection, or an EMPTY_SEQUENCE error.
func MinInt64[T any](s Seq[T], fn func(T) int64) (int64, error) {
	return extremum(s, "min", fn, smaller[int64])
}

// MaxInt64 returns the largest projection, or an EMPTY_SEQUENCE error.
func MaxInt64[T any](s Seq[T], fn func(T) int64) (int64, error) {
	return extremum(s, "max", fn, larger[int64])
}

// MinInt64Optional returns the smallest projection, absent for an empty sequence.
func MinInt64Optional[T any](s Seq[T], fn func(T) int64) (Optional[int64], error) {
	return extremumOptional(s, fn, smaller[int64])
}

// MaxInt64Optional returns the largest projection, absent for an empty sequence.
func MaxInt64Optional[T any](s Seq[T], fn func(T) int64) (Optional[int64], error) {
	return extremumOptional(s, fn, larger[int64])
}

// SumInt64 adds up the projections with int64 overflow semantics.
func SumInt64[T any](s Seq[T], fn func(T) int64) (int64, error) { return sum(s, fn) }

// AverageInt64 returns the mean of the projections, NaN for an empty sequence.
func AverageInt64[T any](s Seq[T], fn func(T) int64) (float64, error) { return average(s, fn) }

// StatisticsInt64 gathers count, sum, min and max of the projections in one pass.
func StatisticsInt64[T any](s Seq[T], fn func(T) int64) (Statistics[int64], error) {
	return statistics(s, fn, math.MinInt64, math.MaxInt64)
}

// --- float64 ---

// MinFloat64 returns the smallest projection, or an EMPTY_SEQUENCE error.
// A NaN projection makes the result NaN.
func MinFloat64[T any](s Seq[T], fn func(T) float64) (float64, error) {
	return extremum(s, "min", fn, smaller[float64])
}

// MaxFloat64 returns the largest projection, or an EMPTY_SEQUENCE error.
// A NaN projection makes the result NaN.
func MaxFloat64[T any](s Seq[T], fn func(T) float64) (float64, error) {
	return extremum(s, "max", fn, larger[float64])
}

// MinFloat64Optional returns the smallest projection, absent for an empty sequence.
func MinFloat64Optional[T any](s Seq[T], fn func(T) float64) (Optional[float64], error) {
	return extremumOptional(s, fn, smaller[float64])
}

// MaxFloat64Optional returns the largest projection, absent for an empty sequence.
func MaxFloat64Optional[T any](s Seq[T], fn func(T) float64) (Optional[float64], error) {
	return extremumOptional(s, fn, larger[float64])
}

// SumFloat64 adds up the projections in encounter order.
func SumFloat64[T any](s Seq[T], fn func(T) float64) (float64, error) { return sum(s, fn) }

// AverageFloat64 returns the mean of the projections, NaN for an empty sequence.
func AverageFloat64[T any](s Seq[T], fn func(T) float64) (float64, error) { return average(s, fn) }

// StatisticsFloat64 gathers count, sum, min and max of the projections in one pass.
func StatisticsFloat64[T any](s Seq[T], fn func(T) float64) (Statistics[float64], error) {
	return statistics(s, fn, math.Inf(-1), math.Inf(1))
}
