package seq

// OnEach calls fn as a side-effect for each value as it is pulled, then passes
// the value through unchanged.
func OnEach[T any](s Seq[T], fn func(T)) Seq[T] {
	requireSeq(s)
	requireArg(fn != nil, "action")
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &mapIter[T, T]{src: src, fn: func(v T) T {
			fn(v)
			return v
		}}
	})
}

// OnEachIndexed is OnEach with the zero-based position of each value.
func OnEachIndexed[T any](s Seq[T], fn func(int, T)) Seq[T] {
	requireSeq(s)
	requireArg(fn != nil, "action")
	return derive(s, func(src Iterator[T]) Iterator[T] {
		index := 0
		return &mapIter[T, T]{src: src, fn: func(v T) T {
			fn(index, v)
			index++
			return v
		}}
	})
}
