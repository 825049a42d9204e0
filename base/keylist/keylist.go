// Copyright (c) 2026, Protoform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items with a map
from a key (e.g., a scope path or name) to indexes, to support fast
lookup by key while preserving insertion order. It backs registries
where both declaration order and by-name access matter.
*/
package keylist

import (
	"fmt"
	"slices"
)

// List implements an ordered list (slice) of Values, with a map from
// a key to indexes, supporting fast lookup by key. The zero value is
// ready to use.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in the same order as [List.Values].
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List]. The zero value is usable without
// initialization, so this is just a standard convenience method.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

func (kl *List[K, V]) makeIndexes() {
	kl.indexes = make(map[K]int)
}

// initIndexes ensures that the index map exists.
func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.makeIndexes()
	}
}

// Reset removes all elements from the list.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.makeIndexes()
}

// Set sets the given key to the given value, adding to the end of the
// list if not already present, and otherwise replacing the existing
// value. This is the same semantics as a Go map.
// See [List.Add] for a version that only adds and does not replace.
func (kl *List[K, V]) Set(key K, val V) {
	kl.initIndexes()
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// Add adds an item to the list with the given key.
// An error is returned if the key is already in the list.
// See [List.Set] for a method that automatically replaces.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already in the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [List.AtTry]
// for one that returns a bool for missing keys.
// For index-based access, use [List.Values] or [List.Keys] directly.
func (kl *List[K, V]) At(key K) V {
	idx, ok := kl.indexes[key]
	if ok {
		return kl.Values[idx]
	}
	var zv V
	return zv
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key, in case the zero value
// is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	idx, ok := kl.indexes[key]
	if ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, with -1 for a missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByIndex deletes item(s) within the index range [i:j].
// This is relatively slow because it needs to regenerate the index map.
func (kl *List[K, V]) DeleteByIndex(i, j int) {
	ndel := j - i
	if ndel <= 0 {
		panic("keylist.DeleteByIndex: index range is <= 0")
	}
	kl.Keys = slices.Delete(kl.Keys, i, j)
	kl.Values = slices.Delete(kl.Values, i, j)
	kl.makeIndexes()
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// DeleteByKey deletes the item with the given key,
// returning false if it is not found.
// This is relatively slow because it needs to regenerate the index map.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	kl.initIndexes()
	idx, ok := kl.indexes[key]
	if !ok {
		return false
	}
	kl.DeleteByIndex(idx, idx+1)
	return true
}

// String returns a string representation of the list.
func (kl *List[K, V]) String() string {
	sv := "{"
	for i, v := range kl.Values {
		sv += fmt.Sprintf("%v: %v, ", kl.Keys[i], v)
	}
	sv += "}"
	return sv
}
