package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
)

const (
	pathCreate  = "escrow/create"
	pathFund    = "escrow/fund"
	pathRelease = "escrow/release"
	pathDispute = "escrow/dispute"
	pathResolve = "escrow/resolve"
)

// CreateMsg opens a new escrow record. The main signer becomes the buyer.
// No funds move yet.
type CreateMsg struct {
	Seller  custody.Address
	Arbiter custody.Address
	Memo    string
	Amount  coin.Coin
}

var _ custody.Msg = (*CreateMsg)(nil)

func (CreateMsg) Path() string {
	return pathCreate
}

func (m *CreateMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *CreateMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *CreateMsg) Validate() error {
	if err := m.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	if err := m.Arbiter.Validate(); err != nil {
		return errors.Wrap(err, "arbiter")
	}
	if len(m.Memo) > maxMemoSize {
		return errors.Wrap(errors.ErrInput, "memo too long")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %s", m.Amount)
	}
	return m.Amount.Validate()
}

// FundMsg moves the agreed amount from the buyer to the custody address.
// The amount must be repeated and match the record exactly.
type FundMsg struct {
	EscrowID []byte
	Amount   coin.Coin
}

var _ custody.Msg = (*FundMsg)(nil)

func (FundMsg) Path() string {
	return pathFund
}

func (m *FundMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *FundMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *FundMsg) Validate() error {
	if len(m.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %s", m.Amount)
	}
	return m.Amount.Validate()
}

// ReleaseMsg pays the escrowed funds out to the seller, minus the service
// fee. Only the buyer can release.
type ReleaseMsg struct {
	EscrowID []byte
}

var _ custody.Msg = (*ReleaseMsg)(nil)

func (ReleaseMsg) Path() string {
	return pathRelease
}

func (m *ReleaseMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ReleaseMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *ReleaseMsg) Validate() error {
	if len(m.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	return nil
}

// DisputeMsg freezes a funded escrow until the arbiter resolves it. Either
// party can dispute.
type DisputeMsg struct {
	EscrowID []byte
}

var _ custody.Msg = (*DisputeMsg)(nil)

func (DisputeMsg) Path() string {
	return pathDispute
}

func (m *DisputeMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *DisputeMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *DisputeMsg) Validate() error {
	if len(m.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	return nil
}

// ResolveMsg disburses a disputed escrow according to the arbiter's
// verdict.
type ResolveMsg struct {
	EscrowID   []byte
	Resolution Resolution
}

var _ custody.Msg = (*ResolveMsg)(nil)

func (ResolveMsg) Path() string {
	return pathResolve
}

func (m *ResolveMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ResolveMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func (m *ResolveMsg) Validate() error {
	if len(m.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	return m.Resolution.Validate()
}
