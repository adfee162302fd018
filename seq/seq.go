package seq

import (
	"github.com/kbukum/seqkit/errors"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// HasNext reports whether a following Next call will return a value.
	// Repeated calls without Next do not advance the source.
	HasNext() bool
	// Next returns the next value. It returns an EXHAUSTED error when HasNext is false.
	Next() (T, error)
}

// Seq is a lazy sequence: a factory of independent iterators over its values.
type Seq[T any] interface {
	// Iterator starts a new pass over the sequence.
	Iterator() (Iterator[T], error)
}

// Func adapts a plain function to the Seq interface.
type Func[T any] func() (Iterator[T], error)

// Iterator calls f.
func (f Func[T]) Iterator() (Iterator[T], error) { return f() }

type state uint8

const (
	stateNotReady state = iota
	stateReady
	stateDone
)

// derive builds the Seq returned by an intermediate operation: every iterator
// request obtains a fresh upstream iterator and wraps it.
func derive[T, R any](s Seq[T], wrap func(src Iterator[T]) Iterator[R]) Seq[R] {
	return Func[R](func() (Iterator[R], error) {
		src, err := s.Iterator()
		if err != nil {
			return nil, err
		}
		return wrap(src), nil
	})
}

func requireSeq[T any](s Seq[T]) {
	if s == nil {
		panic(errors.MissingArgument("seq"))
	}
}

func requireArg(present bool, name string) {
	if !present {
		panic(errors.MissingArgument(name))
	}
}

func requireCount(n int) {
	if n < 0 {
		panic(errors.InvalidArgument("count", "must not be negative").WithDetail("count", n))
	}
}

func exhausted[T any]() (T, error) {
	var zero T
	return zero, errors.Exhausted()
}

// --- Internal iterators ---

type emptyIter[T any] struct{}

func (emptyIter[T]) HasNext() bool    { return false }
func (emptyIter[T]) Next() (T, error) { return exhausted[T]() }

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) HasNext() bool { return it.index < len(it.items) }

func (it *sliceIter[T]) Next() (T, error) {
	if it.index >= len(it.items) {
		return exhausted[T]()
	}
	val := it.items[it.index]
	it.index++
	return val, nil
}
