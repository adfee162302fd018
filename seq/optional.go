package seq

// Optional holds a value that may be absent. A present zero value (a nil
// pointer, an empty string) is still present.
type Optional[T any] struct {
	value   T
	present bool
}

// Present returns an Optional holding v.
func Present[T any](v T) Optional[T] { return Optional[T]{value: v, present: true} }

// Absent returns an Optional with no value.
func Absent[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool { return o.present }

// OrElse returns the held value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}
