package escrow

import (
	"fmt"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/coin"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

const (
	// BucketName is where we store the escrow records
	BucketName = "esc"
	// SequenceName is an auto-increment ID counter for escrows
	SequenceName = "id"

	maxMemoSize = 128

	// feeDenominator is the basis point scale: a rate of 10000 is 100%.
	feeDenominator int64 = 10000
)

// EscrowState is the lifecycle position of an escrow record.
//
// Legal transitions are exactly
//   Created -> Funded -> Released
//                     -> Disputed -> Resolved
// Released and Resolved are terminal.
type EscrowState int32

const (
	// StateCreated is the initial state, record exists but holds no funds.
	StateCreated EscrowState = 1
	// StateFunded means the custody address holds the full amount.
	StateFunded EscrowState = 2
	// StateReleased means the funds were paid out to the seller.
	StateReleased EscrowState = 3
	// StateDisputed freezes the funds until the arbiter resolves.
	StateDisputed EscrowState = 4
	// StateResolved means the arbiter disbursed the funds.
	StateResolved EscrowState = 5
)

func (s EscrowState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateFunded:
		return "funded"
	case StateReleased:
		return "released"
	case StateDisputed:
		return "disputed"
	case StateResolved:
		return "resolved"
	default:
		return fmt.Sprintf("invalid (%d)", int32(s))
	}
}

func (s EscrowState) validate() error {
	if s < StateCreated || s > StateResolved {
		return errors.Wrapf(errors.ErrState, "unknown state %d", int32(s))
	}
	return nil
}

// Escrow is a single custody record. Amount and FeeRate are fixed at
// creation, the state walks the lifecycle above. Records are never deleted.
type Escrow struct {
	Buyer   custody.Address
	Seller  custody.Address
	Arbiter custody.Address
	Memo    string
	Amount  coin.Coin
	State   EscrowState
	// FeeRate in basis points, snapshot of the engine configuration at
	// creation time.
	FeeRate int32
}

var _ orm.Model = (*Escrow)(nil)

func (e *Escrow) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(e)
}

func (e *Escrow) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, e)
}

// Validate ensures the escrow is valid
func (e *Escrow) Validate() error {
	if err := e.Buyer.Validate(); err != nil {
		return errors.Wrap(err, "buyer")
	}
	if err := e.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	if err := e.Arbiter.Validate(); err != nil {
		return errors.Wrap(err, "arbiter")
	}
	if e.Buyer.Equals(e.Seller) {
		return errors.Wrap(errors.ErrModel, "buyer and seller are the same")
	}
	if len(e.Memo) > maxMemoSize {
		return errors.Wrapf(errors.ErrInput, "memo %s", e.Memo)
	}
	if !e.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount %s", e.Amount)
	}
	if err := e.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if e.FeeRate < 0 || int64(e.FeeRate) > feeDenominator {
		return errors.Wrapf(errors.ErrInput, "fee rate %d out of basis point range", e.FeeRate)
	}
	return e.State.validate()
}

// IsParty returns true if the address is the buyer or the seller.
func (e *Escrow) IsParty(addr custody.Address) bool {
	return e.Buyer.Equals(addr) || e.Seller.Equals(addr)
}

// Fee returns the service fee due on disbursement, truncated towards zero.
func (e *Escrow) Fee() (coin.Coin, error) {
	return e.Amount.Share(int64(e.FeeRate), feeDenominator)
}

// Condition calculates the per-record custody condition given the key. Its
// address holds the escrowed funds.
func Condition(key []byte) custody.Condition {
	return custody.NewCondition("escrow", "seq", key)
}

// ResolutionKind selects how a disputed escrow is disbursed.
type ResolutionKind int32

const (
	// ResolveToBuyer returns the net amount to the buyer.
	ResolveToBuyer ResolutionKind = 1
	// ResolveToSeller pays the net amount out to the seller.
	ResolveToSeller ResolutionKind = 2
	// ResolveSplit divides the net amount between buyer and seller.
	ResolveSplit ResolutionKind = 3
)

// Resolution is the arbiter's verdict on a disputed escrow. For a split the
// ratio declares the buyer's share of the net amount, the seller receives
// the remainder.
type Resolution struct {
	Kind  ResolutionKind
	Ratio *custody.Fraction
}

func (r Resolution) Validate() error {
	switch r.Kind {
	case ResolveToBuyer, ResolveToSeller:
		if r.Ratio != nil {
			return errors.Wrap(errors.ErrInput, "ratio only valid for a split")
		}
	case ResolveSplit:
		if r.Ratio == nil {
			return errors.Wrap(errors.ErrInput, "split requires a ratio")
		}
		if err := r.Ratio.Validate(); err != nil {
			return errors.Wrap(err, "ratio")
		}
		if r.Ratio.Denominator == 0 {
			return errors.Wrap(errors.ErrInput, "split ratio denominator cannot be zero")
		}
		if r.Ratio.Numerator > r.Ratio.Denominator {
			return errors.Wrap(errors.ErrInput, "buyer share cannot exceed the whole")
		}
	default:
		return errors.Wrapf(errors.ErrInput, "unknown resolution kind %d", int32(r.Kind))
	}
	return nil
}

// NewBucket returns a bucket for keeping track of escrow records, with an
// ID sequence assigning record ids at creation.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName,
		orm.WithIDSequence(orm.NewSequence(BucketName, SequenceName)))
}
