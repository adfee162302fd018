package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/seq"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		want string
	}{
		{
			name: "even squares",
			plan: Plan{Input: []int64{1, 2, 3, 4}, Steps: []Step{{Op: OpEven}, {Op: OpSquare}}, Terminal: TerminalSum},
			want: "20",
		},
		{
			name: "drop then take",
			plan: Plan{Input: []int64{1, 2, 3, 4, 5, 6}, Steps: []Step{{Op: OpDrop, N: 1}, {Op: OpTake, N: 3}}, Terminal: TerminalList},
			want: "[2 3 4]",
		},
		{
			name: "repeat then distinct",
			plan: Plan{Input: []int64{1, 2}, Steps: []Step{{Op: OpRepeat, N: 3}, {Op: OpDistinct}}, Terminal: TerminalCount},
			want: "2",
		},
		{
			name: "repeat",
			plan: Plan{Input: []int64{1, 2}, Steps: []Step{{Op: OpRepeat, N: 3}}, Terminal: TerminalCount},
			want: "6",
		},
		{
			name: "range",
			plan: Plan{Input: []int64{10, 20}, Steps: []Step{{Op: OpRange, N: 3}}, Terminal: TerminalList},
			want: "[10 11 12 20 21 22]",
		},
		{
			name: "sorted",
			plan: Plan{Input: []int64{3, 1, 2}, Steps: []Step{{Op: OpSorted}}, Terminal: TerminalList},
			want: "[1 2 3]",
		},
		{
			name: "sorted descending",
			plan: Plan{Input: []int64{3, 1, 2}, Steps: []Step{{Op: OpSortedDesc}}, Terminal: TerminalList},
			want: "[3 2 1]",
		},
		{
			name: "filter greater then min",
			plan: Plan{Input: []int64{5, 1, 9, 3}, Steps: []Step{{Op: OpFilterGT, Value: 2}}, Terminal: TerminalMin},
			want: "3",
		},
		{
			name: "filter less then max",
			plan: Plan{Input: []int64{5, 1, 9, 3}, Steps: []Step{{Op: OpFilterLT, Value: 6}}, Terminal: TerminalMax},
			want: "5",
		},
		{
			name: "filter equal",
			plan: Plan{Input: []int64{1, 2, 1}, Steps: []Step{{Op: OpFilterEq, Value: 1}}, Terminal: TerminalCount},
			want: "2",
		},
		{
			name: "odd negated shifted",
			plan: Plan{Input: []int64{1, 2, 3}, Steps: []Step{{Op: OpOdd}, {Op: OpNeg}, {Op: OpAdd, Value: 10}}, Terminal: TerminalLast},
			want: "7",
		},
		{
			name: "multiply",
			plan: Plan{Input: []int64{4, 5}, Steps: []Step{{Op: OpMul, Value: 3}}, Terminal: TerminalFirst},
			want: "12",
		},
		{
			name: "average",
			plan: Plan{Input: []int64{1, 2, 3, 4}, Terminal: TerminalAverage},
			want: "2.5",
		},
		{
			name: "generated then taken",
			plan: Plan{Generate: &Generator{Start: 1, Step: 2}, Steps: []Step{{Op: OpTake, N: 4}}, Terminal: TerminalSum},
			want: "16",
		},
		{
			name: "generated first match",
			plan: Plan{Generate: &Generator{Step: 3}, Steps: []Step{{Op: OpFilterGT, Value: 10}}, Terminal: TerminalFirst},
			want: "12",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.plan.Name = tc.name
			res, err := Evaluate(tc.plan)
			require.NoError(t, err)
			assert.Equal(t, tc.name, res.Plan)
			assert.Equal(t, tc.plan.Terminal, res.Terminal)
			assert.False(t, res.Empty)
			assert.Equal(t, tc.want, res.String())
		})
	}
}

func TestEvaluateEmpty(t *testing.T) {
	tests := []struct {
		terminal  string
		wantEmpty bool
		want      string
	}{
		{TerminalMin, true, "empty"},
		{TerminalMax, true, "empty"},
		{TerminalFirst, true, "empty"},
		{TerminalLast, true, "empty"},
		{TerminalAverage, true, "empty"},
		{TerminalSum, false, "0"},
		{TerminalCount, false, "0"},
		{TerminalList, false, "[]"},
	}

	for _, tc := range tests {
		t.Run(tc.terminal, func(t *testing.T) {
			res, err := Evaluate(Plan{
				Name:     "nothing",
				Input:    []int64{1, 3},
				Steps:    []Step{{Op: OpEven}},
				Terminal: tc.terminal,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantEmpty, res.Empty)
			assert.Equal(t, tc.want, res.String())
			assert.Zero(t, res.Average)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Plan {
		return Plan{Name: "p", Input: []int64{1}, Terminal: TerminalList}
	}

	tests := []struct {
		name    string
		mutate  func(*Plan)
		wantErr string
	}{
		{"valid", func(*Plan) {}, ""},
		{"missing name", func(p *Plan) { p.Name = "" }, "name: is required"},
		{"missing terminal", func(p *Plan) { p.Terminal = "" }, "terminal: is required"},
		{"unknown terminal", func(p *Plan) { p.Terminal = "median" }, "terminal: must be one of"},
		{"unknown op", func(p *Plan) { p.Steps = []Step{{Op: "shuffle"}} }, "steps[0].op: must be one of"},
		{"negative count", func(p *Plan) { p.Steps = []Step{{Op: OpTake, N: -1}} }, "steps[0].n: must be at least 0"},
		{"unused n", func(p *Plan) { p.Steps = []Step{{Op: OpDistinct}, {Op: OpEven, N: 2}} }, "steps[1].n: is not used by even"},
		{"unused value", func(p *Plan) { p.Steps = []Step{{Op: OpTake, N: 1, Value: 4}} }, "steps[0].value: is not used by take"},
		{"zero repeat", func(p *Plan) { p.Steps = []Step{{Op: OpRepeat}} }, "steps[0].n: must be between 1 and 1000"},
		{"huge range", func(p *Plan) { p.Steps = []Step{{Op: OpRange, N: MaxExpansion + 1}} }, "steps[0].n: must be between 1 and 1000"},
		{
			"input with generator",
			func(p *Plan) {
				p.Generate = &Generator{Step: 1}
				p.Steps = []Step{{Op: OpTake, N: 1}}
			},
			"input: must be empty when generate is set",
		},
		{
			"generator without take",
			func(p *Plan) {
				p.Input = nil
				p.Generate = &Generator{Step: 1}
			},
			"terminal: list needs a take step on a generated source",
		},
		{
			"generator sorted before take",
			func(p *Plan) {
				p.Input = nil
				p.Generate = &Generator{Step: 1}
				p.Steps = []Step{{Op: OpSorted}, {Op: OpTake, N: 3}}
			},
			"steps[0].op: needs a take step before it on a generated source",
		},
		{
			"generator with first",
			func(p *Plan) {
				p.Input = nil
				p.Generate = &Generator{Step: 1}
				p.Terminal = TerminalFirst
			},
			"",
		},
		{
			"generator filtered before take",
			func(p *Plan) {
				p.Input = nil
				p.Generate = &Generator{Step: 2}
				p.Steps = []Step{{Op: OpOdd}, {Op: OpTake, N: 1}}
				p.Terminal = TerminalFirst
			},
			"",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errors.ErrInvalidInput)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestBuildRejectsInvalidPlan(t *testing.T) {
	s, err := Build(Plan{Name: "bad", Terminal: "median"})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	_, err = Evaluate(Plan{Terminal: TerminalList})
	assert.ErrorContains(t, err, "name: is required")
}

func TestBuildIsLazyAndReusable(t *testing.T) {
	pulls := 0
	p := Plan{
		Name:     "lazy",
		Generate: &Generator{Start: 1, Step: 1},
		Steps:    []Step{{Op: OpSquare}, {Op: OpTake, N: 3}},
		Terminal: TerminalList,
	}

	s, err := Build(p)
	require.NoError(t, err)
	counted := seq.OnEach(s, func(int64) { pulls++ })
	assert.Zero(t, pulls)

	for range 2 {
		got, err := seq.ToSlice(counted)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 4, 9}, got)
	}
	assert.Equal(t, 6, pulls)
}

func TestApplyUnknownTerminal(t *testing.T) {
	_, err := Apply("p", "median", seq.Of[int64](1))
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidInput))
}

func TestApplyPropagatesEvaluationErrors(t *testing.T) {
	used := seq.Once(seq.Of[int64](1, 2))
	_, err := used.Iterator()
	require.NoError(t, err)

	for _, terminal := range []string{TerminalList, TerminalCount, TerminalSum, TerminalMin, TerminalFirst, TerminalAverage} {
		t.Run(terminal, func(t *testing.T) {
			res, err := Apply("used", terminal, used)
			assert.ErrorIs(t, err, errors.ErrAlreadyConsumed)
			assert.False(t, res.Empty)
		})
	}
}

func TestStepApplyUnknownOp(t *testing.T) {
	_, err := Step{Op: "shuffle"}.apply(seq.Empty[int64]())
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, err.Code)
	assert.Equal(t, "shuffle", err.Details["op"])
}

func TestResultString(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want string
	}{
		{"list", Result{Terminal: TerminalList, Values: []int64{1, 2}}, "[1 2]"},
		{"average", Result{Terminal: TerminalAverage, Average: 1.25}, "1.25"},
		{"value", Result{Terminal: TerminalSum, Value: -4}, "-4"},
		{"empty", Result{Terminal: TerminalMin, Empty: true}, "empty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.res.String())
		})
	}
}
