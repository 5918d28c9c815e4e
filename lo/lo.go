package lo

// Cond returns the trueValue if the condition is true and the falseValue otherwise.
func Cond[T any](condition bool, trueValue, falseValue T) T {
	if condition {
		return trueValue
	}

	return falseValue
}

// Map iterates over elements of collection, applies the mapper function to each element
// and returns an array of modified TargetType elements.
func Map[SourceType any, TargetType any](source []SourceType, mapper func(SourceType) TargetType) (target []TargetType) {
	target = make([]TargetType, len(source))
	for i, value := range source {
		target[i] = mapper(value)
	}

	return target
}

// Filter iterates over elements of collection, returning an array of all elements predicate returns truthy for.
func Filter[V any](collection []V, predicate func(V) bool) []V {
	var result []V

	for _, item := range collection {
		if predicate(item) {
			result = append(result, item)
		}
	}

	return result
}

// Keys creates a slice of the map keys.
func Keys[K comparable, V any](in map[K]V) []K {
	result := make([]K, 0, len(in))

	for k := range in {
		result = append(result, k)
	}

	return result
}

// Values creates a slice of the map values.
func Values[K comparable, V any](in map[K]V) []V {
	result := make([]V, 0, len(in))

	for _, v := range in {
		result = append(result, v)
	}

	return result
}

// First returns the first element of the given slice or the optional default value if the slice is empty.
func First[T any](slice []T, optDefaultValue ...T) (firstElement T) {
	if len(slice) == 0 {
		if len(optDefaultValue) == 0 {
			return
		}

		return optDefaultValue[0]
	}

	return slice[0]
}

// PanicOnErr returns the value of the given function call and panics if the error is not nil.
func PanicOnErr[T any](result T, err error) T {
	if err != nil {
		panic(err)
	}

	return result
}

// Return1 returns the first of the given parameters.
func Return1[A any](a A, _ ...any) A {
	return a
}

// Return2 returns the second of the given parameters.
func Return2[A any](_ any, a A, _ ...any) A {
	return a
}
