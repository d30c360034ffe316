package multisig

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
)

const (
	pathCreate  = "multisig/create"
	pathPropose = "multisig/propose"
	pathConfirm = "multisig/confirm"
	pathRevoke  = "multisig/revoke"
	pathExecute = "multisig/execute"

	maxPayloadSize = 1024
)

// CreateWalletMsg creates a new multi signature wallet from an owner set
// and a confirmation threshold.
type CreateWalletMsg struct {
	Owners    []custody.Address
	Threshold int32
}

var _ custody.Msg = (*CreateWalletMsg)(nil)

func (CreateWalletMsg) Path() string {
	return pathCreate
}

func (m *CreateWalletMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *CreateWalletMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *CreateWalletMsg) Validate() error {
	wallet := Wallet{Owners: m.Owners, Threshold: m.Threshold}
	return wallet.Validate()
}

// ProposeMsg records a new transaction proposal on a wallet. The record
// starts with no confirmations.
type ProposeMsg struct {
	WalletID    []byte
	Destination custody.Address
	Amount      coin.Coin
	Payload     []byte
}

var _ custody.Msg = (*ProposeMsg)(nil)

func (ProposeMsg) Path() string {
	return pathPropose
}

func (m *ProposeMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ProposeMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *ProposeMsg) Validate() error {
	if len(m.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %s", m.Amount)
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if len(m.Payload) > maxPayloadSize {
		return errors.Wrap(errors.ErrInput, "payload too big")
	}
	return nil
}

// ConfirmMsg adds the confirmation of the signing owner to a transaction
// record.
type ConfirmMsg struct {
	TransactionID []byte
}

var _ custody.Msg = (*ConfirmMsg)(nil)

func (ConfirmMsg) Path() string {
	return pathConfirm
}

func (m *ConfirmMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ConfirmMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *ConfirmMsg) Validate() error {
	if len(m.TransactionID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "transaction id")
	}
	return nil
}

// RevokeMsg withdraws a confirmation the signing owner gave earlier, as
// long as the transaction was not executed yet.
type RevokeMsg struct {
	TransactionID []byte
}

var _ custody.Msg = (*RevokeMsg)(nil)

func (RevokeMsg) Path() string {
	return pathRevoke
}

func (m *RevokeMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *RevokeMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *RevokeMsg) Validate() error {
	if len(m.TransactionID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "transaction id")
	}
	return nil
}

// ExecuteMsg triggers the transfer of a transaction that collected enough
// confirmations. Any owner can trigger the execution.
type ExecuteMsg struct {
	TransactionID []byte
}

var _ custody.Msg = (*ExecuteMsg)(nil)

func (ExecuteMsg) Path() string {
	return pathExecute
}

func (m *ExecuteMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ExecuteMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *ExecuteMsg) Validate() error {
	if len(m.TransactionID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "transaction id")
	}
	return nil
}
