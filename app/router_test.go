package app

import (
	"context"
	"testing"

	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()
	h := &custodytest.Handler{}
	r.Handle("test/good", h)

	tx := &custodytest.Tx{Msg: &custodytest.Msg{RoutePath: "test/good"}}
	db := store.MemStore()

	_, err := r.Check(context.Background(), db, tx)
	require.NoError(t, err)
	_, err = r.Deliver(context.Background(), db, tx)
	require.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestRouterNoHandler(t *testing.T) {
	r := NewRouter()
	tx := &custodytest.Tx{Msg: &custodytest.Msg{RoutePath: "test/missing"}}
	db := store.MemStore()

	_, err := r.Check(context.Background(), db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(context.Background(), db, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	h := &custodytest.Handler{}

	assert.Panics(t, func() { r.Handle("bad path!", h) })

	r.Handle("test/good", h)
	// duplicate registration must not be allowed
	assert.Panics(t, func() { r.Handle("test/good", h) })
}
