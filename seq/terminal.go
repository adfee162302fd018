package seq

import (
	"github.com/kbukum/seqkit/errors"
)

// drain pulls values until the iterator is exhausted or fn returns false.
func drain[T any](it Iterator[T], fn func(T) bool) error {
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		if !fn(v) {
			return nil
		}
	}
	return nil
}

// nonEmpty returns a fresh iterator that has at least one value, or an
// EMPTY_SEQUENCE error naming the operation.
func nonEmpty[T any](s Seq[T], op string) (Iterator[T], error) {
	it, err := s.Iterator()
	if err != nil {
		return nil, err
	}
	if !it.HasNext() {
		return nil, errors.EmptySequence(op)
	}
	return it, nil
}

// optional runs eval over a non-empty sequence, mapping EMPTY_SEQUENCE to an
// absent result.
func optional[T, R any](s Seq[T], eval func(Iterator[T]) (R, error)) (Optional[R], error) {
	it, err := s.Iterator()
	if err != nil {
		return Absent[R](), err
	}
	if !it.HasNext() {
		return Absent[R](), nil
	}
	r, err := eval(it)
	if err != nil {
		return Absent[R](), err
	}
	return Present(r), nil
}

func lastOf[T any](it Iterator[T]) (T, error) {
	var last T
	err := drain(it, func(v T) bool {
		last = v
		return true
	})
	return last, err
}

func reduceOf[T any](it Iterator[T], fn func(T, T) T) (T, error) {
	acc, err := it.Next()
	if err != nil {
		return acc, err
	}
	err = drain(it, func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	return acc, err
}

// First returns the first value, or an EMPTY_SEQUENCE error.
func First[T any](s Seq[T]) (T, error) {
	requireSeq(s)
	it, err := nonEmpty(s, "first")
	if err != nil {
		var zero T
		return zero, err
	}
	return it.Next()
}

// FirstOptional returns the first value if there is one.
func FirstOptional[T any](s Seq[T]) (Optional[T], error) {
	requireSeq(s)
	return optional(s, func(it Iterator[T]) (T, error) { return it.Next() })
}

// Last scans the whole sequence and returns its final value, or an
// EMPTY_SEQUENCE error.
func Last[T any](s Seq[T]) (T, error) {
	requireSeq(s)
	it, err := nonEmpty(s, "last")
	if err != nil {
		var zero T
		return zero, err
	}
	return lastOf(it)
}

// LastOptional returns the final value if there is one.
func LastOptional[T any](s Seq[T]) (Optional[T], error) {
	requireSeq(s)
	return optional(s, lastOf[T])
}

// Fold accumulates values left to right starting from initial. An empty
// sequence yields initial.
func Fold[T, U any](s Seq[T], initial U, fn func(U, T) U) (U, error) {
	requireSeq(s)
	requireArg(fn != nil, "combine")
	it, err := s.Iterator()
	if err != nil {
		return initial, err
	}
	acc := initial
	err = drain(it, func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	return acc, err
}

// Reduce accumulates values left to right seeded with the first one, or
// returns an EMPTY_SEQUENCE error.
func Reduce[T any](s Seq[T], fn func(T, T) T) (T, error) {
	requireSeq(s)
	requireArg(fn != nil, "combine")
	it, err := nonEmpty(s, "reduce")
	if err != nil {
		var zero T
		return zero, err
	}
	return reduceOf(it, fn)
}

// ReduceOptional is Reduce reporting absence instead of an error on empty input.
func ReduceOptional[T any](s Seq[T], fn func(T, T) T) (Optional[T], error) {
	requireSeq(s)
	requireArg(fn != nil, "combine")
	return optional(s, func(it Iterator[T]) (T, error) { return reduceOf(it, fn) })
}

// Any reports whether some value satisfies pred. It stops at the first match.
func Any[T any](s Seq[T], pred func(T) bool) (bool, error) {
	requireSeq(s)
	requireArg(pred != nil, "predicate")
	it, err := s.Iterator()
	if err != nil {
		return false, err
	}
	found := false
	err = drain(it, func(v T) bool {
		found = pred(v)
		return !found
	})
	return found, err
}

// All reports whether every value satisfies pred. It stops at the first miss.
func All[T any](s Seq[T], pred func(T) bool) (bool, error) {
	requireArg(pred != nil, "predicate")
	found, err := Any(s, func(v T) bool { return !pred(v) })
	return !found, err
}

// None reports whether no value satisfies pred.
func None[T any](s Seq[T], pred func(T) bool) (bool, error) {
	found, err := Any(s, pred)
	return !found, err
}

// Count returns the number of values.
func Count[T any](s Seq[T]) (int, error) {
	requireSeq(s)
	it, err := s.Iterator()
	if err != nil {
		return 0, err
	}
	total := 0
	err = drain(it, func(T) bool {
		total++
		return true
	})
	return total, err
}

// CountFunc returns the number of values that satisfy pred.
func CountFunc[T any](s Seq[T], pred func(T) bool) (int, error) {
	requireArg(pred != nil, "predicate")
	return Count(Filter(s, pred))
}

// ForEach calls fn for every value in order.
func ForEach[T any](s Seq[T], fn func(T)) error {
	requireSeq(s)
	requireArg(fn != nil, "action")
	it, err := s.Iterator()
	if err != nil {
		return err
	}
	return drain(it, func(v T) bool {
		fn(v)
		return true
	})
}
