package seq

// Distinct drops values equal to one already produced, keeping first occurrences
// in order. Each iterator remembers every distinct value it has produced.
// Equality is Go's ==, so NaN never equals itself and every NaN is yielded.
func Distinct[T comparable](s Seq[T]) Seq[T] {
	requireSeq(s)
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return newDistinctIter(src)
	})
}

// distinctIter is a filterIter whose predicate is membership in the seen set.
type distinctIter[T comparable] struct {
	filterIter[T]
	seen map[T]struct{}
}

func newDistinctIter[T comparable](src Iterator[T]) *distinctIter[T] {
	it := &distinctIter[T]{seen: make(map[T]struct{})}
	it.filterIter = filterIter[T]{src: src, pred: it.firstSeen}
	return it
}

func (it *distinctIter[T]) firstSeen(v T) bool {
	if _, ok := it.seen[v]; ok {
		return false
	}
	it.seen[v] = struct{}{}
	return true
}
