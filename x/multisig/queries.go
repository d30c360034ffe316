package multisig

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/orm"
)

// GetWallet returns the wallet with the given id.
func GetWallet(db custody.ReadOnlyKVStore, id []byte) (*Wallet, error) {
	return loadWallet(db, NewWalletBucket(), id)
}

// GetTransaction returns the transaction record with the given id.
func GetTransaction(db custody.ReadOnlyKVStore, id []byte) (*Transaction, error) {
	var t Transaction
	if err := NewTransactionBucket().One(db, id, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// TransactionCount returns the number of transaction records ever proposed.
// Records are never deleted, so this equals the latest sequence value.
func TransactionCount(db custody.ReadOnlyKVStore) int64 {
	seq := orm.NewSequence(TransactionBucketName, SequenceName)
	count, _ := seq.Latest(db)
	return count
}

// WalletCount returns the number of wallets ever created.
func WalletCount(db custody.ReadOnlyKVStore) int64 {
	seq := orm.NewSequence(WalletBucketName, SequenceName)
	count, _ := seq.Latest(db)
	return count
}
