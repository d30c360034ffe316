package orm

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a minimal model implementation for testing.
type counter struct {
	Count int64
}

func (c *counter) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *counter) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative count")
	}
	return nil
}

func TestModelBucketPutAndOne(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	key, err := b.Put(db, []byte("two"), &counter{Count: 2})
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), key)

	var c counter
	require.NoError(t, b.One(db, []byte("two"), &c))
	assert.Equal(t, int64(2), c.Count)

	err = b.One(db, []byte("unknown"), &c)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketPutValidates(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	_, err := b.Put(db, []byte("bad"), &counter{Count: -1})
	assert.True(t, errors.ErrModel.Is(err))
	assert.True(t, errors.ErrNotFound.Is(b.Has(db, []byte("bad"))))
}

func TestModelBucketPutMissingKey(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	// Without an ID sequence a nil key must be rejected.
	_, err := b.Put(db, nil, &counter{Count: 1})
	assert.True(t, errors.ErrInput.Is(err))
}

func TestModelBucketSequence(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", WithIDSequence(NewSequence("cnts", "id")))

	first, err := b.Put(db, nil, &counter{Count: 1})
	require.NoError(t, err)
	assert.Equal(t, EncodeSequence(1), first)

	second, err := b.Put(db, nil, &counter{Count: 2})
	require.NoError(t, err)
	assert.Equal(t, EncodeSequence(2), second)

	var c counter
	require.NoError(t, b.One(db, first, &c))
	assert.Equal(t, int64(1), c.Count)
}

func TestModelBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")

	_, err := b.Put(db, []byte("one"), &counter{Count: 1})
	require.NoError(t, err)
	require.NoError(t, b.Has(db, []byte("one")))

	require.NoError(t, b.Delete(db, []byte("one")))
	assert.True(t, errors.ErrNotFound.Is(b.Has(db, []byte("one"))))
	assert.True(t, errors.ErrNotFound.Is(b.Delete(db, []byte("one"))))
}

func TestModelBucketHasEmptyKey(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts")
	assert.True(t, errors.ErrNotFound.Is(b.Has(db, nil)))
}

func TestModelBucketIterAll(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", WithIDSequence(NewSequence("cnts", "id")))

	for i := int64(1); i <= 3; i++ {
		_, err := b.Put(db, nil, &counter{Count: i * 10})
		require.NoError(t, err)
	}

	iter := b.IterAll(db)
	defer iter.Release()

	var got []int64
	for {
		var c counter
		if err := iter.LoadNext(&c); err != nil {
			require.True(t, ErrIteratorDone.Is(err))
			break
		}
		got = append(got, c.Count)
	}
	assert.Equal(t, []int64{10, 20, 30}, got)
}

func TestBucketNameValidation(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("l") })
	assert.Panics(t, func() { NewModelBucket("UPPER") })
	assert.Panics(t, func() { NewModelBucket("with space") })
	assert.NotPanics(t, func() { NewModelBucket("good_name") })
}
