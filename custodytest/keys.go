package custodytest

import (
	"crypto/rand"

	"github.com/iov-one/custody"
)

// NewCondition returns a random signature condition. Each call returns a
// condition with a different, unique address.
func NewCondition() custody.Condition {
	data := make([]byte, 32)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return custody.NewCondition("sigs", "ed25519", data)
}
