package scoring

// TopTied returns every item sharing the maximum value, in input order. Nothing
// qualifies when the maximum is not positive.
func TopTied[T any](items []T, value func(T) float64) ([]T, float64) {
	best := 0.0
	for _, item := range items {
		if v := value(item); v > best {
			best = v
		}
	}
	if best <= 0 {
		return nil, 0
	}

	var out []T
	for _, item := range items {
		if value(item) == best {
			out = append(out, item)
		}
	}
	return out, best
}

// TopOne returns the first item holding the maximum positive value.
func TopOne[T any](items []T, value func(T) float64) (T, bool) {
	var (
		zero  T
		best  float64
		found bool
		pick  T
	)
	for _, item := range items {
		if v := value(item); v > 0 && (!found || v > best) {
			best, pick, found = v, item, true
		}
	}
	if !found {
		return zero, false
	}
	return pick, true
}
