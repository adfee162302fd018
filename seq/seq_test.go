package seq

import (
	"maps"
	"reflect"
	"runtime"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/seqkit/errors"
)

// counted wraps items in a reusable sequence that records every upstream pull.
func counted[T any](items []T, pulls *int) Seq[T] {
	return OnEach(FromSlice(items), func(T) { *pulls++ })
}

func TestFromSlice_Reusable(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})

	first, err := ToSlice(s)
	require.NoError(t, err)
	second, err := ToSlice(s)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, first, second)
}

func TestFromSlice_ZeroCopy(t *testing.T) {
	items := []string{"a", "b"}
	s := FromSlice(items)
	items[1] = "z"

	got, err := ToSlice(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "z"}, got)
}

func TestEmpty(t *testing.T) {
	it, err := Empty[int]().Iterator()
	require.NoError(t, err)
	assert.False(t, it.HasNext())

	_, err = it.Next()
	assert.ErrorIs(t, err, errors.ErrExhausted)
}

func TestIterator_NextWithoutHasNext(t *testing.T) {
	it, err := Of("x", "y").Iterator()
	require.NoError(t, err)

	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	v, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, "y", v)

	_, err = it.Next()
	assert.ErrorIs(t, err, errors.ErrExhausted)
	// exhaustion is permanent
	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, errors.ErrExhausted)
}

func TestFrom(t *testing.T) {
	s := Of(1, 2)
	assert.Equal(t, reflect.ValueOf(s).Pointer(), reflect.ValueOf(From(s)).Pointer())
	assert.PanicsWithError(t, "MISSING_ARGUMENT: seq is nil", func() { From[int](nil) })
}

func TestFromIterator_SingleUse(t *testing.T) {
	src, err := Of(1, 2, 3).Iterator()
	require.NoError(t, err)
	s := FromIterator(src)

	got, err := ToSlice(s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	_, err = ToSlice(s)
	assert.ErrorIs(t, err, errors.ErrAlreadyConsumed)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAlreadyConsumed))
}

func TestFromIterator_ChainedStillSingleUse(t *testing.T) {
	src, err := Of(1, 2, 3, 4).Iterator()
	require.NoError(t, err)
	evens := Filter(FromIterator(src), func(n int) bool { return n%2 == 0 })

	got, err := ToSlice(evens)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, got)

	_, err = Count(evens)
	assert.ErrorIs(t, err, errors.ErrAlreadyConsumed)
}

func TestFromPull(t *testing.T) {
	n := 0
	s := FromPull(func() (int, bool) {
		if n == 3 {
			return 0, false
		}
		n++
		return n * n, true
	})

	it, err := s.Iterator()
	require.NoError(t, err)
	assert.True(t, it.HasNext())
	assert.True(t, it.HasNext())
	assert.Equal(t, 1, n, "HasNext must pull at most once per element")

	got, err := AppendTo(FromIterator(it), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9}, got)

	_, err = s.Iterator()
	assert.ErrorIs(t, err, errors.ErrAlreadyConsumed)
}

func TestOnce(t *testing.T) {
	t.Run("second request fails", func(t *testing.T) {
		s := Once(Of("a", "b"))

		got, err := ToSlice(s)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)

		_, err = s.Iterator()
		assert.ErrorIs(t, err, errors.ErrAlreadyConsumed)
	})

	t.Run("wrapping twice returns the same guard", func(t *testing.T) {
		s := Once(Of(1))
		assert.Same(t, s, Once(s))
	})

	t.Run("nil seq", func(t *testing.T) {
		assert.PanicsWithError(t, "MISSING_ARGUMENT: seq is nil", func() { Once[int](nil) })
	})

	t.Run("concurrent first use has a single winner", func(t *testing.T) {
		for range 50 {
			s := Once(Of(1, 2, 3))
			var won, refused atomic.Int32
			var wg conc.WaitGroup
			for range 8 {
				wg.Go(func() {
					if _, err := s.Iterator(); err == nil {
						won.Add(1)
					} else if errors.HasCode(err, errors.ErrCodeAlreadyConsumed) {
						refused.Add(1)
					}
				})
			}
			wg.Wait()
			assert.Equal(t, int32(1), won.Load())
			assert.Equal(t, int32(7), refused.Load())
		}
	})
}

func TestPull(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	s := Pull(maps.Keys(m))

	got, err := ToSlice(s)
	require.NoError(t, err)
	slices.Sort(got)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	// every pass restarts the standard iterator
	n, err := Count(s)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPull_Abandoned(t *testing.T) {
	var released atomic.Bool
	values := func(yield func(int) bool) {
		defer released.Store(true)
		for _, v := range []int{7, 8, 9} {
			if !yield(v) {
				return
			}
		}
	}

	first, err := First(Pull(values))
	require.NoError(t, err)
	assert.Equal(t, 7, first)

	// the abandoned pass is stopped by its cleanup once collected
	assert.Eventually(t, func() bool {
		runtime.GC()
		return released.Load()
	}, 5*time.Second, 10*time.Millisecond)
}

func TestValues(t *testing.T) {
	t.Run("ranges over values", func(t *testing.T) {
		var got []int
		for v, err := range Values(Of(1, 2, 3)) {
			require.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("early break", func(t *testing.T) {
		pulls := 0
		for v, err := range Values(counted([]int{1, 2, 3, 4}, &pulls)) {
			require.NoError(t, err)
			if v == 2 {
				break
			}
		}
		assert.Equal(t, 2, pulls)
	})

	t.Run("yields the consumption error", func(t *testing.T) {
		s := Once(Of(1))
		_, err := Count(s)
		require.NoError(t, err)

		var errs []error
		for _, err := range Values(s) {
			errs = append(errs, err)
		}
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], errors.ErrAlreadyConsumed)
	})
}

func TestFunc(t *testing.T) {
	calls := 0
	s := Func[int](func() (Iterator[int], error) {
		calls++
		return &sliceIter[int]{items: []int{calls}}, nil
	})
	chained := Map(s, func(n int) int { return n * 10 })
	assert.Equal(t, 0, calls, "building a chain must not request iterators")

	got, err := ToSlice(chained)
	require.NoError(t, err)
	assert.Equal(t, []int{10}, got)
	got, err = ToSlice(chained)
	require.NoError(t, err)
	assert.Equal(t, []int{20}, got)
}
