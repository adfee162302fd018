package seq

// Map transforms each value using fn. The value type may change.
func Map[T, R any](s Seq[T], fn func(T) R) Seq[R] {
	requireSeq(s)
	requireArg(fn != nil, "transform")
	return derive(s, func(src Iterator[T]) Iterator[R] {
		return &mapIter[T, R]{src: src, fn: fn}
	})
}

type mapIter[T, R any] struct {
	src Iterator[T]
	fn  func(T) R
}

func (it *mapIter[T, R]) HasNext() bool { return it.src.HasNext() }

func (it *mapIter[T, R]) Next() (R, error) {
	v, err := it.src.Next()
	if err != nil {
		var zero R
		return zero, err
	}
	return it.fn(v), nil
}
