package gconf

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type limits struct {
	MaxItems int32 `json:"max_items"`
}

func (l limits) Validate() error {
	if l.MaxItems <= 0 {
		return errors.Wrap(errors.ErrInput, "max items must be positive")
	}
	return nil
}

func (l limits) Marshal() ([]byte, error) {
	return json.Marshal(l)
}

func (l *limits) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, l)
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()
	require.NoError(t, Save(db, "testpkg", limits{MaxItems: 10}))

	var got limits
	require.NoError(t, Load(db, "testpkg", &got))
	assert.Equal(t, int32(10), got.MaxItems)

	// saving again replaces the value
	require.NoError(t, Save(db, "testpkg", limits{MaxItems: 20}))
	require.NoError(t, Load(db, "testpkg", &got))
	assert.Equal(t, int32(20), got.MaxItems)
}

func TestSaveInvalid(t *testing.T) {
	db := store.MemStore()
	err := Save(db, "testpkg", limits{MaxItems: -1})
	assert.True(t, errors.ErrInput.Is(err))

	var got limits
	err = Load(db, "testpkg", &got)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestLoadIsPerPackage(t *testing.T) {
	db := store.MemStore()
	require.NoError(t, Save(db, "one", limits{MaxItems: 1}))

	var got limits
	err := Load(db, "two", &got)
	assert.True(t, errors.ErrNotFound.Is(err))
}
