package seq

import "reflect"

// Adder is a destination collection for ToCollection.
type Adder[T any] interface {
	Add(T)
}

// ToSlice collects all values into a new slice. An empty sequence yields an
// empty, non-nil slice.
func ToSlice[T any](s Seq[T]) ([]T, error) {
	return AppendTo(s, make([]T, 0))
}

// AppendTo appends all values to dst and returns the extended slice.
func AppendTo[T any](s Seq[T], dst []T) ([]T, error) {
	err := ForEach(s, func(v T) { dst = append(dst, v) })
	return dst, err
}

// ToSet collects the distinct values into a set.
func ToSet[T comparable](s Seq[T]) (map[T]struct{}, error) {
	set := make(map[T]struct{})
	err := ForEach(s, func(v T) { set[v] = struct{}{} })
	return set, err
}

// ToCollection adds every value to dst and returns it. A nil dst, including
// a typed nil pointer, panics before anything is read.
func ToCollection[T any, C Adder[T]](s Seq[T], dst C) (C, error) {
	requireArg(!isNil(dst), "destination")
	err := ForEach(s, dst.Add)
	return dst, err
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
