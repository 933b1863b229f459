package digest

// Group is one bucket of a grouping, in input order.
type Group[T any] struct {
	Key   string
	Items []T
}

// Groups is an ordered partition of a collection. Groups appear in the order
// their key was first seen and every input item lands in exactly one group.
type Groups[T any] struct {
	groups []Group[T]
	index  map[string]int
}

// GroupBy partitions items by key.
func GroupBy[T any](items []T, key func(T) string) *Groups[T] {
	g := &Groups[T]{index: make(map[string]int)}
	for _, item := range items {
		k := key(item)
		i, ok := g.index[k]
		if !ok {
			g.groups = append(g.groups, Group[T]{Key: k})
			i = len(g.groups) - 1
			g.index[k] = i
		}
		g.groups[i].Items = append(g.groups[i].Items, item)
	}
	return g
}

// All returns the groups in first-seen order.
func (g *Groups[T]) All() []Group[T] {
	return g.groups
}

// Without returns the grouping minus the group under key. The receiver is
// not modified.
func (g *Groups[T]) Without(key string) *Groups[T] {
	out := &Groups[T]{index: make(map[string]int, len(g.groups))}
	for _, grp := range g.groups {
		if grp.Key == key {
			continue
		}
		out.index[grp.Key] = len(out.groups)
		out.groups = append(out.groups, grp)
	}
	return out
}

// Filter returns the items for which keep is true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Head splits items into at most limit shown items and the exact number
// left over. A non-positive limit shows everything.
func Head[T any](items []T, limit int) (shown []T, more int) {
	if limit <= 0 || len(items) <= limit {
		return items, 0
	}
	return items[:limit], len(items) - limit
}
