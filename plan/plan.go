package plan

import (
	"fmt"
	"slices"

	"github.com/kbukum/seqkit/validation"
)

// Step operations.
const (
	OpFilterGT   = "filter_gt"
	OpFilterLT   = "filter_lt"
	OpFilterEq   = "filter_eq"
	OpEven       = "even"
	OpOdd        = "odd"
	OpAdd        = "add"
	OpMul        = "mul"
	OpNeg        = "neg"
	OpSquare     = "square"
	OpRepeat     = "repeat"
	OpRange      = "range"
	OpDistinct   = "distinct"
	OpDrop       = "drop"
	OpTake       = "take"
	OpSorted     = "sorted"
	OpSortedDesc = "sorted_desc"
)

// Terminal operations.
const (
	TerminalList    = "list"
	TerminalCount   = "count"
	TerminalSum     = "sum"
	TerminalMin     = "min"
	TerminalMax     = "max"
	TerminalAverage = "average"
	TerminalFirst   = "first"
	TerminalLast    = "last"
)

// MaxExpansion bounds the N of repeat and range steps.
const MaxExpansion = 1000

var (
	valueOps = []string{OpFilterGT, OpFilterLT, OpFilterEq, OpAdd, OpMul}
	countOps = []string{OpRepeat, OpRange, OpDrop, OpTake}
	sortOps  = []string{OpSorted, OpSortedDesc}
)

// Plan is a declarative pipeline over int64 values: a source, a chain of
// steps and one terminal operation.
type Plan struct {
	Name string `yaml:"name" mapstructure:"name" validate:"required"`
	// Input is a finite source. It is ignored when Generate is set.
	Input []int64 `yaml:"input" mapstructure:"input"`
	// Generate is an unbounded arithmetic source. Evaluating it only ends once
	// a take step has its values or the terminal is first and finds one.
	Generate *Generator `yaml:"generate" mapstructure:"generate"`
	Steps    []Step     `yaml:"steps" mapstructure:"steps" validate:"dive"`
	Terminal string     `yaml:"terminal" mapstructure:"terminal" validate:"required,oneof=list count sum min max average first last"`
}

// Generator yields Start, Start+Step, Start+2*Step and so on without end.
type Generator struct {
	Start int64 `yaml:"start" mapstructure:"start"`
	Step  int64 `yaml:"step" mapstructure:"step"`
}

// Step is one intermediate operation. Value parameterises filters and
// arithmetic; N parameterises counts and expansions.
type Step struct {
	Op    string `yaml:"op" mapstructure:"op" validate:"required,oneof=filter_gt filter_lt filter_eq even odd add mul neg square repeat range distinct drop take sorted sorted_desc"`
	N     int    `yaml:"n" mapstructure:"n" validate:"gte=0"`
	Value int64  `yaml:"value" mapstructure:"value"`
}

// Validate checks the struct tags, then the rules that span fields.
func (p *Plan) Validate() error {
	if err := validation.Validate(p); err != nil {
		return err
	}

	v := validation.New()
	if p.Generate != nil && len(p.Input) > 0 {
		v.AddError("input", "must be empty when generate is set")
	}
	for i, st := range p.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		if st.N != 0 && !slices.Contains(countOps, st.Op) {
			v.AddError(field+".n", fmt.Sprintf("is not used by %s", st.Op))
		}
		if st.Value != 0 && !slices.Contains(valueOps, st.Op) {
			v.AddError(field+".value", fmt.Sprintf("is not used by %s", st.Op))
		}
		if st.Op == OpRepeat || st.Op == OpRange {
			v.Range(field+".n", st.N, 1, MaxExpansion)
		}
	}
	if p.Generate != nil {
		p.checkBounded(v)
	}
	return v.Err()
}

// checkBounded rejects generated plans that can never finish: a sort, or a
// terminal other than first, with no take step before it. Passing does not
// mean the plan finishes. A filter that stops matching before take has its
// n values scans the generated source forever.
func (p *Plan) checkBounded(v *validation.Validator) {
	for i, st := range p.Steps {
		switch {
		case st.Op == OpTake:
			return
		case slices.Contains(sortOps, st.Op):
			v.AddError(fmt.Sprintf("steps[%d].op", i), "needs a take step before it on a generated source")
			return
		}
	}
	if p.Terminal != TerminalFirst {
		v.AddError("terminal", fmt.Sprintf("%s needs a take step on a generated source", p.Terminal))
	}
}
