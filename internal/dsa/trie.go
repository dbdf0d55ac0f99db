// Package dsa provides the path index used to answer prefix queries over
// grouped search results and recorded run history.
// Uses go-radix for compressed prefix tree (radix tree).
package dsa

import (
	"strings"

	"github.com/armon/go-radix"
)

// Trie wraps go-radix for a compressed prefix tree (radix tree).
// Much more memory-efficient than standard trie for file paths.
//
// Standard trie: src/internal/search.go → 21 nodes (one per character)
// Radix tree:    src/internal/search.go → 1 node (compressed path)
//
// Time Complexity: O(k) where k is key length
type Trie[V any] struct {
	tree *radix.Tree
	size int
}

// NewTrie creates a new empty radix tree.
func NewTrie[V any]() *Trie[V] {
	return &Trie[V]{
		tree: radix.New(),
	}
}

// Insert adds or replaces the value for key.
func (t *Trie[V]) Insert(key string, value V) {
	_, updated := t.tree.Insert(key, value)
	if !updated {
		t.size++
	}
}

// Search looks up a key in the tree.
func (t *Trie[V]) Search(key string) (V, bool) {
	val, found := t.tree.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	v, ok := val.(V)
	return v, ok
}

// StartsWith returns all keys that start with prefix, in key order.
func (t *Trie[V]) StartsWith(prefix string) []string {
	var results []string
	t.tree.WalkPrefix(prefix, func(k string, _ interface{}) bool {
		results = append(results, k)
		return false
	})
	return results
}

// Under calls fn for every key equal to dir or below it, treating '/' and
// '\' as separators. "src" matches "src/a.go" but not "srcgen/a.go".
// An empty dir visits every key.
func (t *Trie[V]) Under(dir string, fn func(key string, value V)) {
	dir = strings.TrimRight(dir, `/\`)
	t.tree.WalkPrefix(dir, func(k string, v interface{}) bool {
		if dir != "" && len(k) > len(dir) && k[len(dir)] != '/' && k[len(dir)] != '\\' {
			return false
		}
		if val, ok := v.(V); ok {
			fn(k, val)
		}
		return false
	})
}

// Delete removes a key from the tree.
// Returns true if the key was found and deleted.
func (t *Trie[V]) Delete(key string) bool {
	_, deleted := t.tree.Delete(key)
	if deleted {
		t.size--
	}
	return deleted
}

// Size returns the number of keys in the tree.
func (t *Trie[V]) Size() int {
	return t.size
}
