package seq

// The indexed variants pass the zero-based position of each upstream value.
// The counter belongs to a single iterator: every pass starts again at 0.

// FilterIndexed keeps values for which pred(index, value) holds.
func FilterIndexed[T any](s Seq[T], pred func(int, T) bool) Seq[T] {
	requireSeq(s)
	requireArg(pred != nil, "predicate")
	return derive(s, func(src Iterator[T]) Iterator[T] {
		index := 0
		return &filterIter[T]{src: src, pred: func(v T) bool {
			ok := pred(index, v)
			index++
			return ok
		}}
	})
}

// MapIndexed transforms each value using fn(index, value).
func MapIndexed[T, R any](s Seq[T], fn func(int, T) R) Seq[R] {
	requireSeq(s)
	requireArg(fn != nil, "transform")
	return derive(s, func(src Iterator[T]) Iterator[R] {
		index := 0
		return &mapIter[T, R]{src: src, fn: func(v T) R {
			r := fn(index, v)
			index++
			return r
		}}
	})
}

// FlatMapIndexed expands each value using fn(index, value) and flattens the result.
func FlatMapIndexed[T, R any](s Seq[T], fn func(int, T) Seq[R]) Seq[R] {
	requireSeq(s)
	requireArg(fn != nil, "expansion")
	return derive(s, func(src Iterator[T]) Iterator[R] {
		index := 0
		return &flatMapIter[T, R]{src: src, inner: emptyIter[R]{}, fn: func(v T) Seq[R] {
			r := fn(index, v)
			index++
			return r
		}}
	})
}
