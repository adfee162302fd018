package observe

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/seq"
)

// Logged returns a sequence that logs the life of every iterator over s.
// Acquisition and exhaustion are logged at debug level, each element at
// trace level. Every iterator gets its own id so that interleaved passes
// can be told apart.
func Logged[T any](s seq.Seq[T], log *logger.Logger, name string) seq.Seq[T] {
	if s == nil {
		panic(errors.MissingArgument("seq"))
	}
	if log == nil {
		panic(errors.MissingArgument("logger"))
	}
	return seq.Func[T](func() (seq.Iterator[T], error) {
		src, err := s.Iterator()
		if err != nil {
			log.Warn("iterator request failed", logger.Fields(
				logger.FieldSequence, name,
				logger.FieldError, err.Error(),
			))
			return nil, err
		}
		l := log.WithFields(logger.Fields(
			logger.FieldSequence, name,
			logger.FieldIteratorID, uuid.NewString(),
		))
		l.Debug("iterator acquired")
		return &loggedIter[T]{src: src, log: l}, nil
	})
}

type loggedIter[T any] struct {
	src   seq.Iterator[T]
	log   *logger.Logger
	count int
	done  bool
}

func (it *loggedIter[T]) HasNext() bool {
	if it.src.HasNext() {
		return true
	}
	it.finish()
	return false
}

func (it *loggedIter[T]) Next() (T, error) {
	v, err := it.src.Next()
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeExhausted) {
			it.finish()
		} else if !it.done {
			it.done = true
			it.log.Warn("iteration failed", logger.Fields(
				logger.FieldElements, it.count,
				logger.FieldError, err.Error(),
			))
		}
		return v, err
	}
	it.count++
	if it.log.Enabled(zerolog.TraceLevel) {
		it.log.Trace("element", logger.Fields(logger.FieldElement, v))
	}
	return v, nil
}

func (it *loggedIter[T]) finish() {
	if it.done {
		return
	}
	it.done = true
	it.log.Debug("iterator exhausted", logger.Fields(logger.FieldElements, it.count))
}
