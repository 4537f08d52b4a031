package orm

import (
	"testing"

	"github.com/diap-network/diap/codec"
	"github.com/diap-network/diap/errors"
	"github.com/diap-network/diap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a minimal payload to exercise bucket plumbing.
type counter struct {
	Count int64 `json:"count"`
}

var _ CloneableData = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	return codec.Marshal(c)
}

func (c *counter) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, c)
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func (c *counter) Copy() CloneableData {
	return &counter{Count: c.Count}
}

func newCounterBucket(name string) Bucket {
	return NewBucket(name, NewSimpleObj(nil, &counter{}))
}

func TestBucketName(t *testing.T) {
	assert.Panics(t, func() { NewBucket("l", NewSimpleObj(nil, &counter{})) })
	assert.Panics(t, func() { NewBucket("TOOBIG", NewSimpleObj(nil, &counter{})) })
	assert.Equal(t, "some", newCounterBucket("some").Name())
}

func TestBucketSaveGet(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket("cnts")

	key := []byte("first")
	obj, err := b.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, obj)
	assert.False(t, b.Has(db, key))

	err = b.Save(db, NewSimpleObj(key, &counter{Count: 55}))
	require.NoError(t, err)
	assert.True(t, b.Has(db, key))

	obj, err = b.Get(db, key)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, key, obj.Key())
	assert.Equal(t, int64(55), obj.Value().(*counter).Count)

	// an invalid object must never be persisted
	err = b.Save(db, NewSimpleObj(key, &counter{Count: -3}))
	assert.True(t, errors.ErrState.Is(err))

	require.NoError(t, b.Delete(db, key))
	obj, err = b.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBucketPrefixIsolation(t *testing.T) {
	db := store.MemStore()
	one := newCounterBucket("one")
	two := newCounterBucket("two")

	key := []byte("shared")
	require.NoError(t, one.Save(db, NewSimpleObj(key, &counter{Count: 1})))
	require.NoError(t, two.Save(db, NewSimpleObj(key, &counter{Count: 2})))

	o1, err := one.Get(db, key)
	require.NoError(t, err)
	o2, err := two.Get(db, key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), o1.Value().(*counter).Count)
	assert.Equal(t, int64(2), o2.Value().(*counter).Count)
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket("mins")

	require.NoError(t, b.Save(db, NewSimpleObj([]byte("add"), &counter{Count: 1})))
	require.NoError(t, b.Save(db, NewSimpleObj([]byte("adz"), &counter{Count: 2})))
	require.NoError(t, b.Save(db, NewSimpleObj([]byte("bet"), &counter{Count: 3})))

	// key query returns exactly the hit, or nothing
	res, err := b.Query(db, "", []byte("add"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, b.DBKey([]byte("add")), res[0].Key)

	res, err = b.Query(db, "", []byte("missing"))
	require.NoError(t, err)
	assert.Len(t, res, 0)

	// prefix query returns all matches in key order
	res, err = b.Query(db, "prefix", []byte("ad"))
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, b.DBKey([]byte("add")), res[0].Key)
	assert.Equal(t, b.DBKey([]byte("adz")), res[1].Key)

	_, err = b.Query(db, "unknown", nil)
	assert.True(t, errors.ErrInput.Is(err))
}
