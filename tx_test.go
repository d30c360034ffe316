package custody

import (
	"testing"

	"github.com/iov-one/custody/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingMsg struct {
	Memo string
	err  error
}

func (pingMsg) Path() string             { return "test/ping" }
func (m pingMsg) Validate() error        { return m.err }
func (pingMsg) Marshal() ([]byte, error) { return nil, nil }
func (pingMsg) Unmarshal([]byte) error   { return nil }

type pongMsg struct{}

func (pongMsg) Path() string             { return "test/pong" }
func (pongMsg) Validate() error          { return nil }
func (pongMsg) Marshal() ([]byte, error) { return nil, nil }
func (pongMsg) Unmarshal([]byte) error   { return nil }

type msgTx struct {
	msg Msg
	err error
}

func (tx *msgTx) GetMsg() (Msg, error)     { return tx.msg, tx.err }
func (tx *msgTx) Marshal() ([]byte, error) { return nil, nil }
func (tx *msgTx) Unmarshal([]byte) error   { return nil }

func TestLoadMsg(t *testing.T) {
	tx := &msgTx{msg: &pingMsg{Memo: "hello"}}

	var msg pingMsg
	require.NoError(t, LoadMsg(tx, &msg))
	assert.Equal(t, "hello", msg.Memo)
}

func TestLoadMsgWrongType(t *testing.T) {
	tx := &msgTx{msg: &pingMsg{}}

	var msg pongMsg
	err := LoadMsg(tx, &msg)
	assert.True(t, errors.ErrType.Is(err))
}

func TestLoadMsgInvalid(t *testing.T) {
	tx := &msgTx{msg: &pingMsg{err: errors.ErrHuman}}

	var msg pingMsg
	err := LoadMsg(tx, &msg)
	assert.True(t, errors.ErrHuman.Is(err))
}

func TestLoadMsgNilDestination(t *testing.T) {
	tx := &msgTx{msg: &pingMsg{}}
	err := LoadMsg(tx, (*pingMsg)(nil))
	assert.True(t, errors.ErrType.Is(err))
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/ping", GetPath(&msgTx{msg: &pingMsg{}}))
	assert.Equal(t, "(missing)", GetPath(&msgTx{err: errors.ErrHuman}))
	assert.Equal(t, "(missing)", GetPath(&msgTx{}))
}
