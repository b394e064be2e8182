package slicesx

// Chunks splits ts into consecutive chunks of chunkSize elements; the last chunk may be shorter.
// The chunks are copies and do not share memory with ts.
func Chunks[S ~[]E, E any](ts S, chunkSize int) [][]E {
	cs := [][]E{}
	if chunkSize <= 0 {
		return cs
	}
	for start := 0; start < len(ts); start += chunkSize {
		end := min(start+chunkSize, len(ts))
		chunk := make([]E, end-start)
		copy(chunk, ts[start:end])
		cs = append(cs, chunk)
	}
	return cs
}
