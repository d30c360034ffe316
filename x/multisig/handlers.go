package multisig

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
	"github.com/iov-one/custody/x"
	"github.com/iov-one/custody/x/cash"
)

const (
	creationCost int64 = 300
	proposeCost  int64 = 150
	voteCost     int64 = 50
	executeCost  int64 = 200
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r custody.Registry, auth x.Authenticator, mover cash.CoinMover) {
	wallets := NewWalletBucket()
	txs := NewTransactionBucket()

	r.Handle(pathCreate, CreateWalletHandler{auth: auth, wallets: wallets})
	r.Handle(pathPropose, ProposeHandler{auth: auth, wallets: wallets, txs: txs})
	r.Handle(pathConfirm, ConfirmHandler{auth: auth, wallets: wallets, txs: txs})
	r.Handle(pathRevoke, RevokeHandler{auth: auth, wallets: wallets, txs: txs})
	r.Handle(pathExecute, ExecuteHandler{auth: auth, wallets: wallets, txs: txs, mover: mover})
}

// signer returns the address of the main signer of this transaction, or an
// error if the transaction carries no authentication at all.
func signer(ctx custody.Context, auth x.Authenticator) (custody.Address, error) {
	c := x.MainSigner(ctx, auth)
	if c == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return c.Address(), nil
}

// loadWallet returns the wallet with the given id, ErrNotFound wrapped with
// the id otherwise.
func loadWallet(db custody.ReadOnlyKVStore, wallets orm.ModelBucket, id []byte) (*Wallet, error) {
	var wallet Wallet
	if err := wallets.One(db, id, &wallet); err != nil {
		return nil, errors.Wrapf(err, "wallet %d", orm.DecodeSequence(id))
	}
	return &wallet, nil
}

// loadTransaction returns the transaction record with the given id together
// with its wallet.
func loadTransaction(db custody.ReadOnlyKVStore, wallets, txs orm.ModelBucket, id []byte) (*Transaction, *Wallet, error) {
	var t Transaction
	if err := txs.One(db, id, &t); err != nil {
		return nil, nil, errors.Wrapf(err, "transaction %d", orm.DecodeSequence(id))
	}
	wallet, err := loadWallet(db, wallets, t.WalletID)
	if err != nil {
		return nil, nil, err
	}
	return &t, wallet, nil
}

// CreateWalletHandler creates new wallets.
type CreateWalletHandler struct {
	auth    x.Authenticator
	wallets orm.ModelBucket
}

var _ custody.Handler = CreateWalletHandler{}

func (h CreateWalletHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return custody.NewCheck(creationCost, ""), nil
}

func (h CreateWalletHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	wallet := &Wallet{
		Owners:    msg.Owners,
		Threshold: msg.Threshold,
	}
	id, err := h.wallets.Put(db, nil, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store wallet")
	}
	return &custody.DeliverResult{Data: id}, nil
}

func (h CreateWalletHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*CreateWalletMsg, error) {
	var msg CreateWalletMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if _, err := signer(ctx, h.auth); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ProposeHandler records transaction proposals on a wallet.
type ProposeHandler struct {
	auth    x.Authenticator
	wallets orm.ModelBucket
	txs     orm.ModelBucket
}

var _ custody.Handler = ProposeHandler{}

func (h ProposeHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return custody.NewCheck(proposeCost, ""), nil
}

func (h ProposeHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	record := &Transaction{
		WalletID:    msg.WalletID,
		Destination: msg.Destination,
		Amount:      msg.Amount,
		Payload:     msg.Payload,
		// The proposer does not confirm implicitly. Confirmation is
		// a separate, explicit operation.
		Confirmations: nil,
		Executed:      false,
	}
	id, err := h.txs.Put(db, nil, record)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store transaction")
	}
	return &custody.DeliverResult{Data: id}, nil
}

func (h ProposeHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*ProposeMsg, error) {
	var msg ProposeMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	sender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	wallet, err := loadWallet(db, h.wallets, msg.WalletID)
	if err != nil {
		return nil, err
	}
	if !wallet.IsOwner(sender) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", sender)
	}
	return &msg, nil
}

// ConfirmHandler adds owner confirmations to transaction records.
type ConfirmHandler struct {
	auth    x.Authenticator
	wallets orm.ModelBucket
	txs     orm.ModelBucket
}

var _ custody.Handler = ConfirmHandler{}

func (h ConfirmHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return custody.NewCheck(voteCost, ""), nil
}

func (h ConfirmHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, record, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	record.Confirmations = append(record.Confirmations, sender)
	if _, err := h.txs.Put(db, msg.TransactionID, record); err != nil {
		return nil, errors.Wrap(err, "cannot store transaction")
	}
	return &custody.DeliverResult{}, nil
}

func (h ConfirmHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*ConfirmMsg, *Transaction, custody.Address, error) {
	var msg ConfirmMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	sender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	record, wallet, err := loadTransaction(db, h.wallets, h.txs, msg.TransactionID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !wallet.IsOwner(sender) {
		return nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", sender)
	}
	if record.Executed {
		return nil, nil, nil, errors.Wrapf(ErrAlreadyExecuted, "transaction %d", orm.DecodeSequence(msg.TransactionID))
	}
	if record.Confirmed(sender) {
		return nil, nil, nil, errors.Wrapf(ErrAlreadyConfirmed, "owner %s", sender)
	}
	return &msg, record, sender, nil
}

// RevokeHandler removes owner confirmations from transaction records.
type RevokeHandler struct {
	auth    x.Authenticator
	wallets orm.ModelBucket
	txs     orm.ModelBucket
}

var _ custody.Handler = RevokeHandler{}

func (h RevokeHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return custody.NewCheck(voteCost, ""), nil
}

func (h RevokeHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, record, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	confirmations := record.Confirmations[:0]
	for _, c := range record.Confirmations {
		if !c.Equals(sender) {
			confirmations = append(confirmations, c)
		}
	}
	record.Confirmations = confirmations
	if _, err := h.txs.Put(db, msg.TransactionID, record); err != nil {
		return nil, errors.Wrap(err, "cannot store transaction")
	}
	return &custody.DeliverResult{}, nil
}

func (h RevokeHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*RevokeMsg, *Transaction, custody.Address, error) {
	var msg RevokeMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	sender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	record, wallet, err := loadTransaction(db, h.wallets, h.txs, msg.TransactionID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !wallet.IsOwner(sender) {
		return nil, nil, nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", sender)
	}
	if record.Executed {
		return nil, nil, nil, errors.Wrapf(ErrAlreadyExecuted, "transaction %d", orm.DecodeSequence(msg.TransactionID))
	}
	if !record.Confirmed(sender) {
		return nil, nil, nil, errors.Wrapf(ErrNotConfirmed, "owner %s", sender)
	}
	return &msg, record, sender, nil
}

// ExecuteHandler moves the funds of transactions that collected enough
// confirmations.
type ExecuteHandler struct {
	auth    x.Authenticator
	wallets orm.ModelBucket
	txs     orm.ModelBucket
	mover   cash.CoinMover
}

var _ custody.Handler = ExecuteHandler{}

func (h ExecuteHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return custody.NewCheck(executeCost, ""), nil
}

func (h ExecuteHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	msg, record, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Move first. If the transfer fails the record keeps executed=false
	// and the whole operation can be retried after funding the wallet.
	source := MultiSigCondition(record.WalletID).Address()
	if err := h.mover.MoveCoins(db, source, record.Destination, record.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot move coins")
	}

	record.Executed = true
	if _, err := h.txs.Put(db, msg.TransactionID, record); err != nil {
		return nil, errors.Wrap(err, "cannot store transaction")
	}
	return &custody.DeliverResult{}, nil
}

func (h ExecuteHandler) validate(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*ExecuteMsg, *Transaction, error) {
	var msg ExecuteMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	sender, err := signer(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	record, wallet, err := loadTransaction(db, h.wallets, h.txs, msg.TransactionID)
	if err != nil {
		return nil, nil, err
	}
	// Any owner can trigger the execution, not only confirmers.
	if !wallet.IsOwner(sender) {
		return nil, nil, errors.Wrapf(errors.ErrUnauthorized, "%s is not an owner", sender)
	}
	if record.Executed {
		return nil, nil, errors.Wrapf(ErrAlreadyExecuted, "transaction %d", orm.DecodeSequence(msg.TransactionID))
	}
	// The threshold predicate is evaluated now, not at confirmation
	// time. Revokes in between count.
	if record.ConfirmationCount() < int(wallet.Threshold) {
		return nil, nil, errors.Wrapf(ErrInsufficientConfirmations,
			"%d of %d", record.ConfirmationCount(), wallet.Threshold)
	}
	return &msg, record, nil
}
