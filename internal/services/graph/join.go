package graph

// distinctKeys returns each present key once, in first-seen order.
func distinctKeys[T any](items []T, key func(T) (int64, bool)) []int64 {
	seen := make(map[int64]struct{}, len(items))
	out := make([]int64, 0, len(items))
	for _, it := range items {
		k, ok := key(it)
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// indexBy maps key to item. Later duplicates win.
func indexBy[T any](items []T, key func(T) (int64, bool)) map[int64]T {
	out := make(map[int64]T, len(items))
	for _, it := range items {
		if k, ok := key(it); ok {
			out[k] = it
		}
	}
	return out
}

// groupBy maps key to every value sharing it, keeping input order within a
// group.
func groupBy[T, V any](items []T, key func(T) (int64, bool), val func(T) V) map[int64][]V {
	out := make(map[int64][]V)
	for _, it := range items {
		if k, ok := key(it); ok {
			out[k] = append(out[k], val(it))
		}
	}
	return out
}

func ptrKey(p *int64) (int64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}
