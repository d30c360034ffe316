package gconf

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

func configKey(pkg string) []byte {
	return []byte("_c." + pkg)
}

// ValidMarshaler is implemented by configuration objects that can serialize
// themselves to a binary representation.
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

// Unmarshaler is implemented by configuration objects that can load their
// state from a binary representation.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration combines both directions of serialization.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

// Save validates the given object and writes it to the configuration
// singleton of the named package, replacing any previous value.
func Save(db custody.KVStore, pkg string, src ValidMarshaler) error {
	key := configKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	db.Set(key, raw)
	return nil
}

// Load reads the configuration singleton of the named package into dst. It
// returns ErrNotFound if no configuration was ever stored.
func Load(db custody.ReadOnlyKVStore, pkg string, dst Unmarshaler) error {
	key := configKey(pkg)
	raw := db.Get(key)
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}
