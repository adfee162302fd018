package seq

// Take yields at most the first n values. Once n values were produced the
// upstream is never pulled again. It panics with an INVALID_ARGUMENT error when
// n is negative.
func Take[T any](s Seq[T], n int) Seq[T] {
	requireSeq(s)
	requireCount(n)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &takeIter[T]{src: src, remaining: n}
	})
}

type takeIter[T any] struct {
	src       Iterator[T]
	remaining int
}

func (it *takeIter[T]) HasNext() bool {
	return it.remaining > 0 && it.src.HasNext()
}

func (it *takeIter[T]) Next() (T, error) {
	if it.remaining == 0 {
		return exhausted[T]()
	}
	it.remaining--
	return it.src.Next()
}
