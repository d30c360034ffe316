package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tmlibs/log"
)

func TestLoggingDeliverSuccess(t *testing.T) {
	var buf bytes.Buffer
	ctx := custody.WithLogger(context.Background(), log.NewTMLogger(&buf))

	h := &custodytest.Handler{
		DeliverResult: custody.DeliverResult{Log: "transfer settled"},
	}
	stack := custodytest.Decorate(h, NewLogging())

	_, err := stack.Deliver(ctx, store.MemStore(), &custodytest.Tx{})
	require.NoError(t, err)
	assert.Equal(t, 1, h.DeliverCallCount())

	out := buf.String()
	assert.True(t, strings.Contains(out, "transfer settled"))
	assert.True(t, strings.Contains(out, "duration"))
}

func TestLoggingDeliverFailure(t *testing.T) {
	var buf bytes.Buffer
	ctx := custody.WithLogger(context.Background(), log.NewTMLogger(&buf))

	h := &custodytest.Handler{
		DeliverErr: errors.Wrap(errors.ErrUnauthorized, "not an owner"),
	}
	stack := custodytest.Decorate(h, NewLogging())

	_, err := stack.Deliver(ctx, store.MemStore(), &custodytest.Tx{})
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.True(t, strings.Contains(buf.String(), "not an owner"))
}

func TestLoggingCheck(t *testing.T) {
	var buf bytes.Buffer
	ctx := custody.WithLogger(context.Background(), log.NewTMLogger(&buf))

	h := &custodytest.Handler{
		CheckResult: custody.CheckResult{Log: "precheck ok"},
	}
	stack := custodytest.Decorate(h, NewLogging())

	_, err := stack.Check(ctx, store.MemStore(), &custodytest.Tx{})
	require.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
}

func TestLoggingDefaultsToNopLogger(t *testing.T) {
	// a context without a logger must not panic
	h := &custodytest.Handler{}
	stack := custodytest.Decorate(h, NewLogging())

	_, err := stack.Deliver(context.Background(), store.MemStore(), &custodytest.Tx{})
	require.NoError(t, err)
}
