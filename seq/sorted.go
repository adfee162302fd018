package seq

import (
	"cmp"
	"slices"
)

// Sorted orders values ascending. Sorting happens when an iterator is
// requested, which drains the upstream into a buffer; infinite sequences never
// return from that request.
func Sorted[T cmp.Ordered](s Seq[T]) Seq[T] {
	return SortedFunc(s, cmp.Compare[T])
}

// SortedFunc orders values by compare, keeping equal values in their original order.
func SortedFunc[T any](s Seq[T], compare func(a, b T) int) Seq[T] {
	requireSeq(s)
	requireArg(compare != nil, "comparator")
	return Func[T](func() (Iterator[T], error) {
		items, err := ToSlice(s)
		if err != nil {
			return nil, err
		}
		slices.SortStableFunc(items, compare)
		return &sliceIter[T]{items: items}, nil
	})
}
