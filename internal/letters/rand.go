package letters

// Source supplies the randomness used for template and percentage
// selection. *math/rand.Rand satisfies it, which keeps prompt builds
// reproducible under a fixed seed in tests.
type Source interface {
	Intn(n int) int
}

// pick returns a uniformly drawn element. An empty list yields the zero value.
func pick[T any](src Source, list []T) T {
	if len(list) == 0 {
		var zero T
		return zero
	}
	return list[src.Intn(len(list))]
}

// randRange returns a value in [min, max].
func randRange(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}
