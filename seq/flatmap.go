package seq

// FlatMap expands each value into a sequence and yields the elements of those
// sequences in order. Empty or nil sequences contribute nothing.
func FlatMap[T, R any](s Seq[T], fn func(T) Seq[R]) Seq[R] {
	requireSeq(s)
	requireArg(fn != nil, "expansion")
	return derive(s, func(src Iterator[T]) Iterator[R] {
		return &flatMapIter[T, R]{src: src, fn: fn, inner: emptyIter[R]{}}
	})
}

type flatMapIter[T, R any] struct {
	src   Iterator[T]
	fn    func(T) Seq[R]
	inner Iterator[R]
	err   error
}

func (it *flatMapIter[T, R]) HasNext() bool {
	for {
		if it.err != nil || it.inner.HasNext() {
			return true
		}
		if !it.src.HasNext() {
			return false
		}
		v, err := it.src.Next()
		if err != nil {
			it.err = err
			continue
		}
		expanded := it.fn(v)
		if expanded == nil {
			continue
		}
		inner, err := expanded.Iterator()
		if err != nil {
			it.err = err
			continue
		}
		it.inner = inner
	}
}

func (it *flatMapIter[T, R]) Next() (R, error) {
	if !it.HasNext() {
		return exhausted[R]()
	}
	if it.err != nil {
		err := it.err
		it.err = nil
		it.src = emptyIter[T]{}
		it.inner = emptyIter[R]{}
		var zero R
		return zero, err
	}
	return it.inner.Next()
}
