package common

import "slices"

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// AppendIfAbsent appends every value not already present, keeping insertion order.
// Empty strings and other zero values are appended like any other value.
func AppendIfAbsent[S ~[]E, E comparable](s S, values ...E) S {
	for _, v := range values {
		if !slices.Contains(s, v) {
			s = append(s, v)
		}
	}

	return s
}

// Clone returns a copy of s that is never nil.
func Clone[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	copy(out, s)

	return out
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns *p, or def when p is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}
