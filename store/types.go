package store

import "github.com/iov-one/custody"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = custody.ReadOnlyKVStore
type KVStore = custody.KVStore
type Iterator = custody.Iterator
type SetDeleter = custody.SetDeleter
type Batch = custody.Batch
type CacheableKVStore = custody.CacheableKVStore
type KVCacheWrap = custody.KVCacheWrap
