package plan

import (
	"fmt"
	"math"
	"strconv"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/seq"
)

// Result is the outcome of a plan's terminal operation. Values is set by
// list, Average by average, Value by the other terminals.
type Result struct {
	Plan     string  `json:"plan"`
	Terminal string  `json:"terminal"`
	Values   []int64 `json:"values,omitempty"`
	Value    int64   `json:"value"`
	Average  float64 `json:"average,omitempty"`
	// Empty is set when the terminal has no value for an empty sequence.
	Empty bool `json:"empty"`
}

// String formats the result for display.
func (r Result) String() string {
	switch {
	case r.Empty:
		return "empty"
	case r.Terminal == TerminalList:
		return fmt.Sprint(r.Values)
	case r.Terminal == TerminalAverage:
		return strconv.FormatFloat(r.Average, 'g', -1, 64)
	default:
		return strconv.FormatInt(r.Value, 10)
	}
}

// Evaluate builds p and runs its terminal.
func Evaluate(p Plan) (Result, error) {
	s, err := Build(p)
	if err != nil {
		return Result{}, err
	}
	return Apply(p.Name, p.Terminal, s)
}

func identity(v int64) int64 { return v }

// Apply runs terminal over s. Terminals that have no value for an empty
// sequence report it through Result.Empty instead of an error.
func Apply(name, terminal string, s seq.Seq[int64]) (Result, error) {
	res := Result{Plan: name, Terminal: terminal}

	var err error
	switch terminal {
	case TerminalList:
		res.Values, err = seq.ToSlice(s)
	case TerminalCount:
		var n int
		n, err = seq.Count(s)
		res.Value = int64(n)
	case TerminalSum:
		res.Value, err = seq.SumInt64(s, identity)
	case TerminalMin:
		res.Value, err = seq.MinInt64(s, identity)
	case TerminalMax:
		res.Value, err = seq.MaxInt64(s, identity)
	case TerminalAverage:
		res.Average, err = seq.AverageInt64(s, identity)
		if err == nil && math.IsNaN(res.Average) {
			res.Average, res.Empty = 0, true
		}
	case TerminalFirst:
		res.Value, err = seq.First(s)
	case TerminalLast:
		res.Value, err = seq.Last(s)
	default:
		return res, errors.Validation(fmt.Sprintf("unknown terminal %q", terminal)).WithDetail("terminal", terminal)
	}

	if errors.HasCode(err, errors.ErrCodeEmptySequence) {
		res.Empty = true
		return res, nil
	}
	return res, err
}
