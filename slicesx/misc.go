package slicesx

func Repeat[T any](t T, count int) []T {
	if count <= 0 {
		return []T{}
	}
	ts := make([]T, count)
	for i := range ts {
		ts[i] = t
	}
	return ts
}

// PadRight appends fill until len(ts) is a multiple of n.
func PadRight[S ~[]E, E any](ts S, n int, fill E) S {
	if n <= 0 || len(ts)%n == 0 {
		return ts
	}
	return append(ts, Repeat(fill, n-len(ts)%n)...)
}
