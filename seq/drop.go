package seq

// Drop skips the first n values. It panics with an INVALID_ARGUMENT error when
// n is negative.
func Drop[T any](s Seq[T], n int) Seq[T] {
	requireSeq(s)
	requireCount(n)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &dropIter[T]{src: src, remaining: n}
	})
}

type dropIter[T any] struct {
	src       Iterator[T]
	remaining int
	err       error
	failed    bool
}

// skip discards upstream values until the count is used up or upstream ends.
func (it *dropIter[T]) skip() {
	for it.remaining > 0 && it.src.HasNext() {
		if _, err := it.src.Next(); err != nil {
			it.err = err
			it.remaining = 0
			return
		}
		it.remaining--
	}
}

func (it *dropIter[T]) HasNext() bool {
	it.skip()
	if it.err != nil {
		return true
	}
	return !it.failed && it.src.HasNext()
}

func (it *dropIter[T]) Next() (T, error) {
	it.skip()
	if it.err != nil {
		err := it.err
		it.err = nil
		it.failed = true
		var zero T
		return zero, err
	}
	if it.failed {
		return exhausted[T]()
	}
	return it.src.Next()
}
