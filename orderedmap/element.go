package orderedmap

// Element is a node of the OrderedMap's internal linked list that holds a single key-value pair.
type Element[K comparable, V any] struct {
	key   K
	value V
	prev  *Element[K, V]
	next  *Element[K, V]
}
