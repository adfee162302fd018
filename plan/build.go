package plan

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/seq"
)

// Build validates p and composes its source and steps into a lazy sequence.
// Nothing is evaluated until the result is iterated, and the result can be
// iterated any number of times.
func Build(p Plan) (seq.Seq[int64], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := p.source()
	for i, st := range p.Steps {
		next, err := st.apply(s)
		if err != nil {
			return nil, err.WithDetail("step", i)
		}
		s = next
	}
	return s, nil
}

func (p Plan) source() seq.Seq[int64] {
	if p.Generate == nil {
		return seq.FromSlice(p.Input)
	}
	g := *p.Generate
	return seq.Func[int64](func() (seq.Iterator[int64], error) {
		next := g.Start
		return seq.FromPull(func() (int64, bool) {
			v := next
			next += g.Step
			return v, true
		}).Iterator()
	})
}

func (st Step) apply(s seq.Seq[int64]) (seq.Seq[int64], *errors.AppError) {
	switch st.Op {
	case OpFilterGT:
		return seq.Filter(s, func(v int64) bool { return v > st.Value }), nil
	case OpFilterLT:
		return seq.Filter(s, func(v int64) bool { return v < st.Value }), nil
	case OpFilterEq:
		return seq.Filter(s, func(v int64) bool { return v == st.Value }), nil
	case OpEven:
		return seq.Filter(s, func(v int64) bool { return v%2 == 0 }), nil
	case OpOdd:
		return seq.Filter(s, func(v int64) bool { return v%2 != 0 }), nil
	case OpAdd:
		return seq.Map(s, func(v int64) int64 { return v + st.Value }), nil
	case OpMul:
		return seq.Map(s, func(v int64) int64 { return v * st.Value }), nil
	case OpNeg:
		return seq.Map(s, func(v int64) int64 { return -v }), nil
	case OpSquare:
		return seq.Map(s, func(v int64) int64 { return v * v }), nil
	case OpRepeat:
		return seq.FlatMap(s, func(v int64) seq.Seq[int64] {
			return seq.FromSlice(slices.Repeat([]int64{v}, st.N))
		}), nil
	case OpRange:
		return seq.FlatMap(s, func(v int64) seq.Seq[int64] {
			out := make([]int64, st.N)
			for i := range out {
				out[i] = v + int64(i)
			}
			return seq.FromSlice(out)
		}), nil
	case OpDistinct:
		return seq.Distinct(s), nil
	case OpDrop:
		return seq.Drop(s, st.N), nil
	case OpTake:
		return seq.Take(s, st.N), nil
	case OpSorted:
		return seq.Sorted(s), nil
	case OpSortedDesc:
		return seq.SortedFunc(s, func(a, b int64) int { return cmp.Compare(b, a) }), nil
	default:
		return nil, errors.Validation(fmt.Sprintf("unknown step op %q", st.Op)).WithDetail("op", st.Op)
	}
}
