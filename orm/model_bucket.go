package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	custody.Persistent
	Validate() error
}

// ModelBucket is implemented by buckets that operate on Models rather than
// raw bytes. A bucket is a prefixed subspace of the database holding
// entities of a single type.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is done
	// by the primary key. The result is loaded into the given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	One(db custody.ReadOnlyKVStore, key []byte, dest Model) error

	// Put saves given model in the database. Before inserting into the
	// database, the model is validated using its Validate method.
	// If the key is nil and the bucket was created with an ID sequence,
	// the next sequence value is used as the key.
	// Returns the key of the stored entity.
	Put(db custody.KVStore, key []byte, m Model) ([]byte, error)

	// Delete removes an entity with the given primary key from the
	// database. It returns ErrNotFound if an entity with the given key
	// does not exist.
	Delete(db custody.KVStore, key []byte) error

	// Has returns nil if an entity with the given primary key exists,
	// ErrNotFound otherwise.
	Has(db custody.ReadOnlyKVStore, key []byte) error

	// IterAll returns an iterator walking all entities of this bucket in
	// ascending primary key order.
	IterAll(db custody.ReadOnlyKVStore) ModelIterator
}

// ModelIterator walks bucket entities one at a time.
type ModelIterator interface {
	// LoadNext moves the iterator to the next entity and loads it into
	// the given destination. It returns ErrIteratorDone when all
	// entities were consumed.
	LoadNext(dest Model) error

	// Release releases the iterator.
	Release()
}

// NewModelBucket returns a ModelBucket instance operating on a prefixed
// subspace of the database.
func NewModelBucket(name string, opts ...ModelBucketOption) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %q", name))
	}
	b := &modelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
	for _, fn := range opts {
		fn(b)
	}
	return b
}

// ModelBucketOption is implemented by any function that can configure
// ModelBucket during creation.
type ModelBucketOption func(mb *modelBucket)

// WithIDSequence configures the bucket to use the given sequence instance
// for generating the primary key, whenever an entity is stored with a nil
// key.
func WithIDSequence(s Sequence) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.idSeq = &s
	}
}

type modelBucket struct {
	name   string
	prefix []byte
	idSeq  *Sequence
}

var _ ModelBucket = (*modelBucket)(nil)

// dbKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (mb *modelBucket) dbKey(key []byte) []byte {
	l := len(mb.prefix)
	out := make([]byte, l+len(key))
	copy(out, mb.prefix)
	copy(out[l:], key)
	return out
}

func (mb *modelBucket) One(db custody.ReadOnlyKVStore, key []byte, dest Model) error {
	raw := db.Get(mb.dbKey(key))
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T with key %X", dest, key)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal into %T", dest)
	}
	return nil
}

func (mb *modelBucket) Put(db custody.KVStore, key []byte, m Model) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, errors.WithType(err, m)
	}
	if len(key) == 0 {
		if mb.idSeq == nil {
			return nil, errors.Wrap(errors.ErrInput, "missing key")
		}
		key = mb.idSeq.NextVal(db)
	}
	raw, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot marshal %T", m)
	}
	db.Set(mb.dbKey(key), raw)
	return key, nil
}

func (mb *modelBucket) Delete(db custody.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	db.Delete(mb.dbKey(key))
	return nil
}

func (mb *modelBucket) Has(db custody.ReadOnlyKVStore, key []byte) error {
	if len(key) == 0 {
		// The empty key is never present, and would match the raw
		// prefix of another entity otherwise.
		return errors.ErrNotFound
	}
	if !db.Has(mb.dbKey(key)) {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) IterAll(db custody.ReadOnlyKVStore) ModelIterator {
	start, end := prefixRange(mb.prefix)
	return &idModelIterator{
		iterator: db.Iterator(start, end),
	}
}

type idModelIterator struct {
	iterator custody.Iterator
}

var _ ModelIterator = (*idModelIterator)(nil)

func (i *idModelIterator) LoadNext(dest Model) error {
	if !i.iterator.Valid() {
		return ErrIteratorDone
	}
	raw := i.iterator.Value()
	i.iterator.Next()
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal into %T", dest)
	}
	return nil
}

func (i *idModelIterator) Release() {
	i.iterator.Close()
}

// prefixRange turns a prefix into (start, end) key range that covers
// exactly all keys with that prefix.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return prefix, end[:i+1]
		}
	}
	// the prefix is all 0xff, no end of range exists
	return prefix, nil
}
