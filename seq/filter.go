package seq

// Filter keeps only values that satisfy the predicate.
func Filter[T any](s Seq[T], pred func(T) bool) Seq[T] {
	requireSeq(s)
	requireArg(pred != nil, "predicate")
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &filterIter[T]{src: src, pred: pred}
	})
}

type filterIter[T any] struct {
	src   Iterator[T]
	pred  func(T) bool
	state state
	next  T
	err   error
}

func (it *filterIter[T]) HasNext() bool {
	if it.state != stateNotReady {
		return it.state == stateReady
	}
	for it.src.HasNext() {
		v, err := it.src.Next()
		if err != nil {
			it.err = err
			it.state = stateReady
			return true
		}
		if it.pred(v) {
			it.next = v
			it.state = stateReady
			return true
		}
	}
	it.state = stateDone
	return false
}

func (it *filterIter[T]) Next() (T, error) {
	if !it.HasNext() {
		return exhausted[T]()
	}
	var zero T
	if it.err != nil {
		err := it.err
		it.err = nil
		it.state = stateDone
		return zero, err
	}
	v := it.next
	it.next = zero
	it.state = stateNotReady
	return v, nil
}
