// Package splice edits sequences the way extended-slice assignment does in
// dynamic scripting languages. Every function is generic over the element
// type and works on plain Go slices; slices are resolved by package index.
package splice

import (
	"slices"

	"github.com/jmylchreest/swatch/internal/index"
)

// Fetch copies the elements selected by s, in visiting order.
func Fetch[T any](in []T, s index.Slice) []T {
	out := make([]T, 0, s.Len())
	for i := range s.All() {
		out = append(out, in[i])
	}
	return out
}

// Assign writes in over the elements of out selected by s and returns the
// updated sequence.
//
// When len(in) equals the slice length every visited element is
// overwritten, for any step. Otherwise the step must be 1: a shorter input
// shrinks out by erasing the unused tail of the region, and a longer input
// grows out by inserting the surplus right after the region. A size
// mismatch with any other step reports false and leaves out untouched.
//
// in must not share storage with out.
func Assign[T any](out, in []T, s index.Slice) ([]T, bool) {
	size := s.Len()
	if len(in) == size {
		k := 0
		for i := range s.All() {
			out[i] = in[k]
			k++
		}
		return out, true
	}

	if s.Step != 1 {
		return out, false
	}

	begin := s.Start
	if len(in) < size {
		copy(out[begin:], in)
		return slices.Delete(out, begin+len(in), begin+size), true
	}

	copy(out[begin:begin+size], in[:size])
	return slices.Insert(out, begin+size, in[size:]...), true
}

// Insert places v before index i. Negative indices count from the end; an
// index that is still out of range is clamped to [0, len(out)].
func Insert[T any](out []T, i int, v T) []T {
	if r, ok := index.Resolve(i, len(out)); ok {
		i = r
	} else {
		i = max(0, min(len(out), i))
	}
	return slices.Insert(out, i, v)
}

// Pop removes and returns the element at index i. It reports false when i
// cannot be resolved.
func Pop[T any](out []T, i int) ([]T, T, bool) {
	var zero T
	r, ok := index.Resolve(i, len(out))
	if !ok {
		return out, zero, false
	}
	v := out[r]
	return slices.Delete(out, r, r+1), v, true
}

// Extend appends a copy of in to out.
func Extend[T any](out, in []T) []T {
	return append(out, in...)
}

// Duplicate returns in repeated n times in order. n <= 0 yields an empty
// sequence.
func Duplicate[T any](in []T, n int) []T {
	if n <= 0 {
		return in[:0]
	}
	size := len(in)
	out := slices.Grow(in, size*(n-1))
	for k := 1; k < n; k++ {
		out = append(out, out[:size]...)
	}
	return out
}

// Rotate shifts the elements cyclically n places to the right; negative n
// rotates left. The offset is reduced modulo the length.
func Rotate[T any](s []T, n int) {
	size := len(s)
	if size == 0 {
		return
	}
	n %= size
	if n < 0 {
		n += size
	}
	if n == 0 {
		return
	}
	slices.Reverse(s)
	slices.Reverse(s[:n])
	slices.Reverse(s[n:])
}
