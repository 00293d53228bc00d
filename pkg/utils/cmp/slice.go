package cmp

// SliceEq reports whether two slices have the same content in the same order.
func SliceEq[T comparable](a []T, b []T) bool {
	return SliceEqWith(a, b, func(a, b T) bool { return a == b })
}

// SliceEqWith reports whether two slices are equal, element by element,
// under the passed equality.
func SliceEqWith[T any, U any](a []T, b []U, eq func(T, U) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SliceContentEq reports whether two slices have the same content,
// ignoring order and multiplicity.
func SliceContentEq[T comparable](a []T, b []T) bool {
	return SliceContains(a, b) && SliceContains(b, a)
}

// SliceContentEqWith reports whether each element in a has an equal element
// in b under eq, and vice versa. Order and multiplicity are ignored.
func SliceContentEqWith[T any](a []T, b []T, eq func(T, T) bool) bool {
	return sliceCovers(a, b, eq) && sliceCovers(b, a, eq)
}

// SliceContains reports whether every element in sub occurs in sli.
func SliceContains[T comparable](sli []T, sub []T) bool {
	return sliceCovers(sli, sub, func(a, b T) bool { return a == b })
}

func sliceCovers[T any](sli []T, sub []T, eq func(T, T) bool) bool {
SUB:
	for _, s := range sub {
		for _, v := range sli {
			if eq(v, s) {
				continue SUB
			}
		}
		return false
	}
	return true
}
