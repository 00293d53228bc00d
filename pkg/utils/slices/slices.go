package slices

// map each element in sli.
//
// args:
//   - sli : slice of `T`s
//   - mapper : mapping function from T to R
//
// return:
//
//	slice of `R`s.
//	each element indexed `N` is given with `mapper(sli[N])` .
func Map[T any, R any](sli []T, mapper func(v T) R) []R {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		ret[nth] = mapper(v)
	}
	return ret
}

// collect keys of a map.
//
// The order of keys is not specified.
func KeysOf[K comparable, V any](m map[K]V) []K {
	ret := make([]K, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	return ret
}

// collect values of a map.
//
// The order of values is not specified.
func ValuesOf[K comparable, V any](m map[K]V) []V {
	ret := make([]V, 0, len(m))
	for k := range m {
		ret = append(ret, m[k])
	}
	return ret
}

// convert slice to map, keyed by getkey.
//
// If keys given with getkey collide, a value coming latter takes over previous.
func ToMap[K comparable, V any](sli []V, getkey func(V) K) map[K]V {
	ret := make(map[K]V, len(sli))
	for _, v := range sli {
		ret[getkey(v)] = v
	}
	return ret
}
