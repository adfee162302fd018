package seq

// Empty returns a sequence with no elements.
func Empty[T any]() Seq[T] {
	return Func[T](func() (Iterator[T], error) {
		return emptyIter[T]{}, nil
	})
}

// Of returns a sequence over the given values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// FromSlice returns a reusable sequence over items. The slice is not copied,
// so later writes to it are visible to iterators created afterwards.
func FromSlice[T any](items []T) Seq[T] {
	return Func[T](func() (Iterator[T], error) {
		return &sliceIter[T]{items: items}, nil
	})
}

// From returns s itself after checking it is present. It exists so that any
// value with an Iterator method reads naturally at the head of a chain.
func From[T any](s Seq[T]) Seq[T] {
	requireSeq(s)
	return s
}

// FromIterator returns a single-use sequence over an already obtained iterator.
func FromIterator[T any](it Iterator[T]) Seq[T] {
	requireArg(it != nil, "iterator")
	return Once[T](Func[T](func() (Iterator[T], error) {
		return it, nil
	}))
}

// FromPull returns a single-use sequence over a pull function that reports
// false once it has no more values.
func FromPull[T any](next func() (T, bool)) Seq[T] {
	requireArg(next != nil, "next")
	return FromIterator[T](&pullIter[T]{pull: next})
}

type pullIter[T any] struct {
	pull  func() (T, bool)
	done  func()
	state state
	next  T
}

func (it *pullIter[T]) HasNext() bool {
	if it.state == stateNotReady {
		v, ok := it.pull()
		if !ok {
			it.state = stateDone
			if it.done != nil {
				it.done()
			}
			return false
		}
		it.next = v
		it.state = stateReady
	}
	return it.state == stateReady
}

func (it *pullIter[T]) Next() (T, error) {
	if !it.HasNext() {
		return exhausted[T]()
	}
	var zero T
	v := it.next
	it.next = zero
	it.state = stateNotReady
	return v, nil
}
