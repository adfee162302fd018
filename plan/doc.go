// Package plan describes int64 pipelines as data, so they can be read from
// configuration, validated, and evaluated with the seq package.
//
//	p := plan.Plan{
//	    Name:     "even squares",
//	    Input:    []int64{1, 2, 3, 4},
//	    Steps:    []plan.Step{{Op: plan.OpEven}, {Op: plan.OpSquare}},
//	    Terminal: plan.TerminalSum,
//	}
//	res, err := plan.Evaluate(p) // res.Value == 20
package plan
