package orderedmap_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statekit/actions.go/orderedmap"
)

func TestNew(t *testing.T) {
	orderedMap := orderedmap.New[int, int]()
	require.NotNil(t, orderedMap)

	require.Equal(t, 0, orderedMap.Size())

	_, _, exists := orderedMap.Head()
	require.False(t, exists)

	_, _, exists = orderedMap.Tail()
	require.False(t, exists)
}

func TestOrderedMap_Size(t *testing.T) {
	orderedMap := orderedmap.New[int, int]()

	require.Equal(t, 0, orderedMap.Size())
	require.True(t, orderedMap.IsEmpty())

	orderedMap.Set(1, 1)

	require.Equal(t, 1, orderedMap.Size())

	orderedMap.Set(3, 1)
	orderedMap.Set(2, 1)

	require.Equal(t, 3, orderedMap.Size())
	require.False(t, orderedMap.IsEmpty())

	orderedMap.Set(2, 2)

	require.Equal(t, 3, orderedMap.Size())

	orderedMap.Delete(2)

	require.Equal(t, 2, orderedMap.Size())

	expectedMap := map[int]int{}
	orderedMap.ForEach(func(key int, value int) bool {
		expectedMap[key] = value

		return true
	})

	clone := orderedMap.Clone()

	clonedMap := map[int]int{}
	clone.ForEach(func(key int, value int) bool {
		clonedMap[key] = value

		return true
	})

	require.EqualValues(t, expectedMap, clonedMap)

	clone.Clear()
	require.True(t, clone.IsEmpty())
	require.False(t, orderedMap.IsEmpty())
}

func TestSetGetDelete(t *testing.T) {
	orderedMap := orderedmap.New[string, string]()
	require.NotNil(t, orderedMap)

	// adding the first new key-value pair must report no previous value
	_, previousValueExisted := orderedMap.Set("key", "value")
	require.False(t, previousValueExisted)

	value, ok := orderedMap.Get("key")
	require.Equal(t, "value", value)
	require.True(t, ok)

	// head and tail must both point at the single element
	k, v, exists := orderedMap.Head()
	require.True(t, exists)
	require.Equal(t, "key", k)
	require.Equal(t, "value", v)

	k, v, exists = orderedMap.Tail()
	require.True(t, exists)
	require.Equal(t, "key", k)
	require.Equal(t, "value", v)

	require.Equal(t, 1, orderedMap.Size())

	// overwriting the same key must report the previous value and keep the size
	_, previousValueExisted = orderedMap.Set("key", "value")
	require.True(t, previousValueExisted)
	require.Equal(t, 1, orderedMap.Size())

	value, ok = orderedMap.Get("keyNotStored")
	require.Empty(t, value)
	require.False(t, ok)

	deleted := orderedMap.Delete("key")
	require.True(t, deleted)
	value, ok = orderedMap.Get("key")
	require.Empty(t, value)
	require.False(t, ok)
	require.Equal(t, 0, orderedMap.Size())

	// deleting the only element resets head and tail
	_, _, exists = orderedMap.Head()
	require.False(t, exists)

	_, _, exists = orderedMap.Tail()
	require.False(t, exists)

	deleted = orderedMap.Delete("key")
	require.False(t, deleted)
}

func TestForEach(t *testing.T) {
	orderedMap := orderedmap.New[string, int]()
	require.NotNil(t, orderedMap)

	keys := []string{"one", "two", "three"}
	values := []int{1, 2, 3}

	for i := 0; i < len(keys); i++ {
		orderedMap.Set(keys[i], values[i])
	}

	testPositive := orderedMap.ForEach(func(key string, value int) bool {
		return value > 0
	})
	require.True(t, testPositive)

	testNegative := orderedMap.ForEach(func(key string, value int) bool {
		return value < 0
	})
	require.False(t, testNegative)

	j := len(keys) - 1
	revKeys := make([]string, len(keys))
	revValues := make([]int, len(keys))
	orderedMap.ForEachReverse(func(key string, value int) bool {
		revKeys[j] = key
		revValues[j] = value
		j--

		return true
	})

	require.ElementsMatch(t, keys, revKeys)
	require.ElementsMatch(t, values, revValues)
}

func TestInsertionOrder(t *testing.T) {
	orderedMap := orderedmap.New[int, string]()

	for i := 0; i < 10; i++ {
		orderedMap.Set(i, fmt.Sprintf("value-%d", i))
	}

	// overwriting a key must not change its position
	orderedMap.Set(4, "overwritten")

	expectedKey := 0
	orderedMap.ForEach(func(key int, value string) bool {
		require.Equal(t, expectedKey, key)
		expectedKey++

		return true
	})
	require.Equal(t, 10, expectedKey)
}

func TestConcurrencySafe(t *testing.T) {
	orderedMap := orderedmap.New[string, int]()
	require.NotNil(t, orderedMap)

	count := 100
	keys := make([]string, count)
	values := make([]int, count)

	for i := 0; i < count; i++ {
		keys[i] = fmt.Sprintf("%d", i)
		values[i] = i
	}

	workers := 10
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for i := 0; i < count; i++ {
				orderedMap.Set(keys[i], values[i])
			}
		}()
	}
	wg.Wait()

	for i := 0; i < count; i++ {
		value, ok := orderedMap.Get(keys[i])
		require.Equal(t, values[i], value)
		require.True(t, ok)
	}
	require.Equal(t, count, orderedMap.Size())

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for i := 0; i < count; i++ {
				orderedMap.Delete(keys[i])
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 0, orderedMap.Size())
}
