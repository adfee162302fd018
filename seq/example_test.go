package seq_test

import (
	"fmt"
	"strings"

	"github.com/kbukum/seqkit/seq"
)

func Example() {
	words := seq.Of("one", "two", "three", "four", "five")
	upper := seq.Map(seq.Take(seq.Drop(words, 2), 2), strings.ToUpper)

	got, err := seq.ToSlice(upper)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(got)
	// Output: [THREE FOUR]
}

func ExampleDistinct() {
	got, _ := seq.ToSlice(seq.Distinct(seq.Of(1, 2, 2, 3, 1)))
	fmt.Println(got)
	// Output: [1 2 3]
}

func ExampleFlatMap() {
	got, _ := seq.ToSlice(seq.FlatMap(seq.Of(1, 2, 3), func(n int) seq.Seq[int] {
		return seq.Of(n, n*10)
	}))
	fmt.Println(got)
	// Output: [1 10 2 20 3 30]
}

func ExampleMinIntOptional() {
	identity := func(n int) int { return n }

	lo, _ := seq.MinInt(seq.Of(2, 1, 4, 3), identity)
	fmt.Println(lo)

	_, err := seq.MinInt(seq.Empty[int](), identity)
	fmt.Println(err)

	opt, _ := seq.MinIntOptional(seq.Empty[int](), identity)
	fmt.Println(opt.IsPresent())
	// Output:
	// 1
	// EMPTY_SEQUENCE: min of an empty sequence
	// false
}

func ExampleAverageInt() {
	identity := func(n int) int { return n }

	avg, _ := seq.AverageInt(seq.Of(2, 1, 4, 3), identity)
	fmt.Println(avg)

	empty, _ := seq.AverageInt(seq.Empty[int](), identity)
	fmt.Println(empty)
	// Output:
	// 2.5
	// NaN
}

func ExampleOnce() {
	s := seq.Once(seq.Of("a", "b"))

	n, _ := seq.Count(s)
	fmt.Println(n)

	_, err := seq.Count(s)
	fmt.Println(err)
	// Output:
	// 2
	// ALREADY_CONSUMED: sequence can only be iterated once
}

func ExampleValues() {
	for v, err := range seq.Values(seq.Filter(seq.Of(1, 2, 3, 4), func(n int) bool { return n%2 == 0 })) {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(v)
	}
	// Output:
	// 2
	// 4
}
