package store

import (
	"bytes"

	"github.com/google/btree"
)

// cacheItem is one entry of the cache layer, staged for iteration. A
// deleted entry shadows whatever the backing store holds under the key.
type cacheItem struct {
	key     []byte
	value   []byte
	deleted bool
}

// ascendBtree stages all cache entries within [start, end) in ascending
// order. A nil start begins at the first key, a nil end runs through
// the last one.
func ascendBtree(bt *btree.BTree, start, end []byte) []cacheItem {
	var items []cacheItem
	collect := func(item btree.Item) bool {
		items = append(items, toCacheItem(item))
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return items
}

// descendBtree stages all cache entries within [start, end) in
// descending order. The btree descend primitives bound the pivot
// inclusively, so the domain is enforced here instead.
func descendBtree(bt *btree.BTree, start, end []byte) []cacheItem {
	var items []cacheItem
	bt.Descend(func(item btree.Item) bool {
		key := item.(keyer).Key()
		if end != nil && bytes.Compare(key, end) >= 0 {
			// Above the domain, keep descending.
			return true
		}
		if start != nil && bytes.Compare(key, start) < 0 {
			// Below the domain, no more matches possible.
			return false
		}
		items = append(items, toCacheItem(item))
		return true
	})
	return items
}

func toCacheItem(item btree.Item) cacheItem {
	switch t := item.(type) {
	case setItem:
		return cacheItem{key: t.key, value: t.value}
	case deletedItem:
		return cacheItem{key: t.key, deleted: true}
	default:
		panic("Unknown item in btree")
	}
}

// cacheIterator merges staged cache entries with the iterator of the
// backing store. Cache entries shadow backing entries under the same
// key; staged deletions drop them from the combined stream.
type cacheIterator struct {
	items   []cacheItem
	idx     int
	parent  Iterator
	reverse bool

	key   []byte
	value []byte
	valid bool
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(items []cacheItem, parent Iterator, reverse bool) *cacheIterator {
	it := &cacheIterator{
		items:   items,
		parent:  parent,
		reverse: reverse,
	}
	it.move()
	return it
}

// before returns true if a comes before b in the iteration order.
func (it *cacheIterator) before(a, b []byte) bool {
	if it.reverse {
		return bytes.Compare(a, b) > 0
	}
	return bytes.Compare(a, b) < 0
}

// move advances to the next visible entry of the combined stream.
func (it *cacheIterator) move() {
	for {
		haveCache := it.idx < len(it.items)
		haveParent := it.parent.Valid()

		if !haveCache && !haveParent {
			it.valid = false
			return
		}

		useCache := haveCache &&
			(!haveParent || !it.before(it.parent.Key(), it.items[it.idx].key))
		if !useCache {
			it.key = it.parent.Key()
			it.value = it.parent.Value()
			it.valid = true
			it.parent.Next()
			return
		}

		item := it.items[it.idx]
		it.idx++
		// The cache entry shadows the backing one under the same key.
		if haveParent && bytes.Equal(item.key, it.parent.Key()) {
			it.parent.Next()
		}
		if item.deleted {
			continue
		}
		it.key = item.key
		it.value = item.value
		it.valid = true
		return
	}
}

// Valid implements Iterator and returns true iff it can be read.
func (it *cacheIterator) Valid() bool {
	return it.valid
}

// Next moves the iterator to the next sequential key.
//
// If Valid returns false, this method will panic.
func (it *cacheIterator) Next() {
	if !it.valid {
		panic("Next() called on invalid iterator")
	}
	it.move()
}

// Key returns the key of the cursor.
func (it *cacheIterator) Key() []byte {
	if !it.valid {
		panic("Key() called on invalid iterator")
	}
	return it.key
}

// Value returns the value of the cursor.
func (it *cacheIterator) Value() []byte {
	if !it.valid {
		panic("Value() called on invalid iterator")
	}
	return it.value
}

// Close releases the Iterator.
func (it *cacheIterator) Close() {
	it.parent.Close()
	it.items = nil
	it.valid = false
}
