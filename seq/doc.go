// Package seq provides lazy, composable, pull-based sequences.
//
// A Seq is a factory of iterators: nothing is computed until a terminal
// operation asks for an Iterator and pulls values from it. Each intermediate
// operation wraps the upstream iterator in an adaptor that produces elements on
// demand, so chains never materialize intermediate results.
//
// # Protocol
//
// An Iterator has two methods. HasNext reports whether a value is ready and may
// be called any number of times without pulling upstream more than once per
// element. Next consumes the value; past the end it returns an EXHAUSTED error.
//
// # Operators
//
// Intermediate (lazy):
//
//   - Filter, FilterIndexed: keep values matching a predicate
//   - Map, MapIndexed: transform each value
//   - FlatMap, FlatMapIndexed: expand each value into a sequence and flatten
//   - Distinct: drop values already seen
//   - Drop, Take: skip or limit by count
//   - OnEach, OnEachIndexed: side-effect without altering the value
//   - Sorted, SortedFunc: order all values (buffers on iteration)
//   - Once: allow a single iterator only
//
// Terminal:
//
//   - First, Last, Reduce and their Optional variants
//   - Fold, Any, All, None, Count, CountFunc, ForEach
//   - MinInt/MinInt64/MinFloat64, the Max, Sum, Average and Statistics families
//   - ToSlice, ToSet, ToCollection, AppendTo, Values
//
// # Usage
//
//	words := seq.Of("one", "two", "three", "four", "five")
//	middle, err := seq.ToSlice(seq.Take(seq.Drop(words, 2), 2))
//	// middle == []string{"three", "four"}
//
// Sequences built from slices are reusable. Sequences built from an existing
// Iterator or pull function are single-use: the second iterator request fails
// with an ALREADY_CONSUMED error.
package seq
