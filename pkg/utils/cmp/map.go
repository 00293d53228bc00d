package cmp

// MapEq reports whether two maps have the same key set and equal values.
func MapEq[K comparable, V comparable](a map[K]V, b map[K]V) bool {
	return MapEqWith(a, b, func(a, b V) bool { return a == b })
}

// MapEqWith reports whether two maps have the same key set and values equal
// under the passed equality.
func MapEqWith[K comparable, V any, W any](a map[K]V, b map[K]W, eq func(V, W) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !eq(av, bv) {
			return false
		}
	}
	return true
}

// MapMatch reports whether a map has exactly the keys of predicators
// and each value satisfies its predicator.
func MapMatch[K comparable, V any](m map[K]V, predicators map[K]func(V) bool) bool {
	if len(m) != len(predicators) {
		return false
	}
	for k, v := range m {
		pred, ok := predicators[k]
		if !ok || !pred(v) {
			return false
		}
	}
	return true
}
