package seq

import (
	"sync/atomic"

	"github.com/kbukum/seqkit/errors"
)

// Once wraps s so that it hands out at most one iterator. Later requests fail
// with an ALREADY_CONSUMED error. Wrapping a sequence returned by Once again
// returns it unchanged.
func Once[T any](s Seq[T]) Seq[T] {
	requireSeq(s)
	if o, ok := s.(*onceSeq[T]); ok {
		return o
	}
	o := &onceSeq[T]{}
	o.ref.Store(&s)
	return o
}

type onceSeq[T any] struct {
	ref atomic.Pointer[Seq[T]]
}

// Iterator takes ownership of the wrapped sequence. Concurrent first calls are
// safe: exactly one of them wins the swap.
func (o *onceSeq[T]) Iterator() (Iterator[T], error) {
	s := o.ref.Swap(nil)
	if s == nil {
		return nil, errors.AlreadyConsumed()
	}
	return (*s).Iterator()
}
