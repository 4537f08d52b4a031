package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")
	assert.Nil(t, base.Get(k))
	assert.False(t, base.Has(k))

	base.Set(k, v)
	assert.Equal(t, v, base.Get(k))
	assert.True(t, base.Has(k))

	base.Delete(k)
	assert.Nil(t, base.Get(k))
	assert.False(t, base.Has(k))
}

func TestBTreeCacheConflicts(t *testing.T) {
	k1, v1 := []byte("top"), []byte("of the world")
	k2, v2 := []byte("all"), []byte("i can see")
	v3 := []byte("of the benefits")

	cases := map[string]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model // Key is what we query, Value is expected
		childQueries  []Model
	}{
		"overwrite in child only visible there until write": {
			parentOps:     []Op{SetOp(k1, v1)},
			childOps:      []Op{SetOp(k1, v3), SetOp(k2, v2)},
			parentQueries: []Model{{Key: k1, Value: v1}, {Key: k2}},
			childQueries:  []Model{{Key: k1, Value: v3}, {Key: k2, Value: v2}},
		},
		"delete in child shadows parent": {
			parentOps:     []Op{SetOp(k1, v1), SetOp(k2, v2)},
			childOps:      []Op{DelOp(k1)},
			parentQueries: []Model{{Key: k1, Value: v1}, {Key: k2, Value: v2}},
			childQueries:  []Model{{Key: k1}, {Key: k2, Value: v2}},
		},
		"set after delete in child": {
			parentOps:     []Op{SetOp(k1, v1)},
			childOps:      []Op{DelOp(k1), SetOp(k1, v3)},
			parentQueries: []Model{{Key: k1, Value: v1}},
			childQueries:  []Model{{Key: k1, Value: v3}},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent := MemStore()
			for _, op := range tc.parentOps {
				op.Apply(parent)
			}

			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				op.Apply(child)
			}

			for _, q := range tc.childQueries {
				assert.Equal(t, q.Value, child.Get(q.Key))
				assert.Equal(t, q.Value != nil, child.Has(q.Key))
			}
			for _, q := range tc.parentQueries {
				assert.Equal(t, q.Value, parent.Get(q.Key))
				assert.Equal(t, q.Value != nil, parent.Has(q.Key))
			}

			// Write flushes all child changes into the parent.
			child.Write()
			for _, q := range tc.childQueries {
				assert.Equal(t, q.Value, parent.Get(q.Key))
			}
		})
	}
}

func TestBTreeCacheDiscard(t *testing.T) {
	parent := MemStore()
	parent.Set([]byte("a"), []byte("1"))

	child := parent.CacheWrap()
	child.Set([]byte("b"), []byte("2"))
	child.Delete([]byte("a"))
	child.Discard()

	assert.Equal(t, []byte("1"), parent.Get([]byte("a")))
	assert.Nil(t, parent.Get([]byte("b")))
}

// collectModels drains an iterator and returns all models in order.
func collectModels(t testing.TB, it Iterator) []Model {
	t.Helper()
	var ms []Model
	for ; it.Valid(); it.Next() {
		ms = append(ms, Model{Key: it.Key(), Value: it.Value()})
	}
	it.Close()
	return ms
}

func TestBTreeCacheIterator(t *testing.T) {
	ka, va := []byte("aloha"), []byte("hi")
	kb, vb := []byte("batch"), []byte("job")
	kc, vc := []byte("check"), []byte("mate")
	vx := []byte("replaced")

	cases := map[string]struct {
		parentOps []Op
		childOps  []Op
		start     []byte
		end       []byte
		expected  []Model
		reverse   []Model
	}{
		"parent only": {
			parentOps: []Op{SetOp(kb, vb), SetOp(ka, va)},
			expected:  []Model{{Key: ka, Value: va}, {Key: kb, Value: vb}},
			reverse:   []Model{{Key: kb, Value: vb}, {Key: ka, Value: va}},
		},
		"child only": {
			childOps: []Op{SetOp(kc, vc), SetOp(ka, va)},
			expected: []Model{{Key: ka, Value: va}, {Key: kc, Value: vc}},
			reverse:  []Model{{Key: kc, Value: vc}, {Key: ka, Value: va}},
		},
		"interleaved with shadowing and deletes": {
			parentOps: []Op{SetOp(ka, va), SetOp(kc, vc)},
			childOps:  []Op{SetOp(kb, vb), SetOp(ka, vx), DelOp(kc)},
			expected:  []Model{{Key: ka, Value: vx}, {Key: kb, Value: vb}},
			reverse:   []Model{{Key: kb, Value: vb}, {Key: ka, Value: vx}},
		},
		"bounded range excludes end": {
			parentOps: []Op{SetOp(ka, va), SetOp(kc, vc)},
			childOps:  []Op{SetOp(kb, vb)},
			start:     kb,
			end:       kc,
			expected:  []Model{{Key: kb, Value: vb}},
			reverse:   []Model{{Key: kb, Value: vb}},
		},
		"open ended range from start": {
			parentOps: []Op{SetOp(ka, va), SetOp(kc, vc)},
			childOps:  []Op{SetOp(kb, vb)},
			start:     kb,
			expected:  []Model{{Key: kb, Value: vb}, {Key: kc, Value: vc}},
			reverse:   []Model{{Key: kc, Value: vc}, {Key: kb, Value: vb}},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent := MemStore()
			for _, op := range tc.parentOps {
				op.Apply(parent)
			}
			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				op.Apply(child)
			}

			got := collectModels(t, child.Iterator(tc.start, tc.end))
			require.Equal(t, tc.expected, got)

			rev := collectModels(t, child.ReverseIterator(tc.start, tc.end))
			require.Equal(t, tc.reverse, rev)
		})
	}
}

func TestIteratorPanicsWhenInvalid(t *testing.T) {
	db := MemStore()
	it := db.Iterator(nil, nil)
	assert.False(t, it.Valid())
	assert.Panics(t, func() { it.Key() })
	assert.Panics(t, func() { it.Value() })
	assert.Panics(t, func() { it.Next() })
}
