package seq

import (
	"iter"
	"runtime"
)

// Values returns a range-over-func view of s. A failure to obtain or advance
// the iterator is yielded once as the error element, after which the range ends.
//
//	for v, err := range seq.Values(s) {
//	    if err != nil {
//	        return err
//	    }
//	    use(v)
//	}
func Values[T any](s Seq[T]) iter.Seq2[T, error] {
	requireSeq(s)
	return func(yield func(T, error) bool) {
		it, err := s.Iterator()
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for it.HasNext() {
			v, err := it.Next()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Pull returns a reusable Seq over a standard library iterator. Every Iterator
// call starts a new pass through iter.Pull. An iterator abandoned before the
// end releases its pass when it is garbage collected.
func Pull[T any](i iter.Seq[T]) Seq[T] {
	requireArg(i != nil, "iter.Seq")
	return Func[T](func() (Iterator[T], error) {
		next, stop := iter.Pull(i)
		it := &pullIter[T]{pull: next, done: stop}
		runtime.AddCleanup(it, func(stop func()) { stop() }, stop)
		return it, nil
	})
}
