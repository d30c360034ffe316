package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x"
	"github.com/iov-one/custody/x/cash"
)

const (
	createEscrowCost  int64 = 300
	fundEscrowCost    int64 = 100
	releaseEscrowCost int64 = 100
	disputeEscrowCost int64 = 50
	resolveEscrowCost int64 = 150
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r custody.Registry, auth x.Authenticator, cashctrl cash.Controller) {
	bucket := NewBucket()
	ctrl := newController(cashctrl, bucket)

	r.Handle(pathCreate, CreateHandler{auth: auth, bucket: bucket})
	r.Handle(pathFund, FundHandler{auth: auth, bucket: bucket, ctrl: ctrl})
	r.Handle(pathRelease, ReleaseHandler{auth: auth, bucket: bucket, ctrl: ctrl})
	r.Handle(pathDispute, DisputeHandler{auth: auth, bucket: bucket})
	r.Handle(pathResolve, ResolveHandler{auth: auth, bucket: bucket, ctrl: ctrl})
}

// signer returns the address of the main signer, or an error if the
// transaction carries no authentication.
func signer(ctx custody.Context, auth x.Authenticator) (custody.Address, error) {
	c := x.MainSigner(ctx, auth)
	if c == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return c.Address(), nil
}

// loadEscrow returns the escrow with the given id in the given state. A
// record in any other state is rejected with ErrState naming the current
// state.
func loadEscrow(db custody.ReadOnlyKVStore, bucket orm.ModelBucket, id []byte, state EscrowState) (*Escrow, error) {
	var esc Escrow
	if err := bucket.One(db, id, &esc); err != nil {
		return nil, errors.Wrapf(err, "escrow %d", orm.DecodeSequence(id))
	}
	if esc.State != state {
		return nil, errors.Wrapf(errors.ErrState, "escrow is %s, not %s", esc.State, state)
	}
	return &esc, nil
}

// CreateHandler opens new escrow records.
type CreateHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ custody.Handler = CreateHandler{}

func (h CreateHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return custody.NewCheck(createEscrowCost, ""), nil
}

func (h CreateHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, buyer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// The fee rate is a snapshot. Later configuration changes do not
	// affect existing records.
	conf, err := loadFeeConfig(db)
	if err != nil {
		return nil, err
	}

	esc := &Escrow{
		Buyer:   buyer,
		Seller:  msg.Seller,
		Arbiter: msg.Arbiter,
		Memo:    msg.Memo,
		Amount:  msg.Amount,
		State:   StateCreated,
		FeeRate: conf.Rate,
	}
	id, err := h.bucket.Put(db, nil, esc)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	return &custody.DeliverResult{Data: id}, nil
}

func (h CreateHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*CreateMsg, custody.Address, error) {
	var msg CreateMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	buyer, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	if buyer.Equals(msg.Seller) {
		return nil, nil, errors.Wrap(errors.ErrInput, "buyer and seller are the same")
	}
	return &msg, buyer, nil
}

// FundHandler moves the agreed amount under custody.
type FundHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   *controller
}

var _ custody.Handler = FundHandler{}

func (h FundHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return custody.NewCheck(fundEscrowCost, ""), nil
}

func (h FundHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, esc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.deposit(db, esc, msg.EscrowID, esc.Buyer); err != nil {
		return nil, err
	}
	return &custody.DeliverResult{}, nil
}

func (h FundHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*FundMsg, *Escrow, error) {
	var msg FundMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	sender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	esc, err := loadEscrow(db, h.bucket, msg.EscrowID, StateCreated)
	if err != nil {
		return nil, nil, err
	}
	if !esc.Buyer.Equals(sender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the buyer can fund")
	}
	if !msg.Amount.Equals(esc.Amount) {
		return nil, nil, errors.Wrapf(ErrAmountMismatch, "expected %s, got %s", esc.Amount, msg.Amount)
	}
	return &msg, esc, nil
}

// ReleaseHandler pays a funded escrow out to the seller.
type ReleaseHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   *controller
}

var _ custody.Handler = ReleaseHandler{}

func (h ReleaseHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return custody.NewCheck(releaseEscrowCost, ""), nil
}

func (h ReleaseHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, esc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadFeeConfig(db)
	if err != nil {
		return nil, err
	}
	// Everything net of the fee goes to the seller.
	if err := h.ctrl.disburse(db, esc, msg.EscrowID, conf.Collector, nil, StateReleased); err != nil {
		return nil, err
	}
	return &custody.DeliverResult{}, nil
}

func (h ReleaseHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*ReleaseMsg, *Escrow, error) {
	var msg ReleaseMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	sender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	esc, err := loadEscrow(db, h.bucket, msg.EscrowID, StateFunded)
	if err != nil {
		return nil, nil, err
	}
	// The seller cannot release to themselves, only the buyer decides.
	if !esc.Buyer.Equals(sender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the buyer can release")
	}
	return &msg, esc, nil
}

// DisputeHandler freezes funded escrows.
type DisputeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ custody.Handler = DisputeHandler{}

func (h DisputeHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return custody.NewCheck(disputeEscrowCost, ""), nil
}

func (h DisputeHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, esc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	esc.State = StateDisputed
	if _, err := h.bucket.Put(db, msg.EscrowID, esc); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	return &custody.DeliverResult{}, nil
}

func (h DisputeHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*DisputeMsg, *Escrow, error) {
	var msg DisputeMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	sender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	esc, err := loadEscrow(db, h.bucket, msg.EscrowID, StateFunded)
	if err != nil {
		return nil, nil, err
	}
	if !esc.IsParty(sender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only a party can dispute")
	}
	return &msg, esc, nil
}

// ResolveHandler disburses disputed escrows per the arbiter's verdict.
type ResolveHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   *controller
}

var _ custody.Handler = ResolveHandler{}

func (h ResolveHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return custody.NewCheck(resolveEscrowCost, ""), nil
}

func (h ResolveHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, esc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadFeeConfig(db)
	if err != nil {
		return nil, err
	}

	var buyerShare *custody.Fraction
	switch msg.Resolution.Kind {
	case ResolveToBuyer:
		buyerShare = &custody.Fraction{Numerator: 1, Denominator: 1}
	case ResolveToSeller:
		buyerShare = nil
	case ResolveSplit:
		buyerShare = msg.Resolution.Ratio
	default:
		// Validate catches this earlier. Kept exhaustive so a new
		// kind cannot silently disburse to the seller.
		return nil, errors.Wrapf(errors.ErrHuman, "unknown resolution kind %d", int32(msg.Resolution.Kind))
	}

	if err := h.ctrl.disburse(db, esc, msg.EscrowID, conf.Collector, buyerShare, StateResolved); err != nil {
		return nil, err
	}
	return &custody.DeliverResult{}, nil
}

func (h ResolveHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*ResolveMsg, *Escrow, error) {
	var msg ResolveMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	sender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	esc, err := loadEscrow(db, h.bucket, msg.EscrowID, StateDisputed)
	if err != nil {
		return nil, nil, err
	}
	// Only the arbiter recorded on this escrow. Parties cannot resolve
	// their own dispute.
	if !esc.Arbiter.Equals(sender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the arbiter can resolve")
	}
	return &msg, esc, nil
}
