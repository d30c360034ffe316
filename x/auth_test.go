package x

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/stretchr/testify/assert"
)

func TestMainSigner(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()

	auth := &custodytest.Auth{Signers: []custody.Condition{a, b}}
	ctx := context.Background()

	signer := MainSigner(ctx, auth)
	assert.True(t, a.Equals(signer))

	none := MainSigner(ctx, &custodytest.Auth{})
	assert.Nil(t, none)
}

func TestGetAddresses(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()

	auth := &custodytest.Auth{Signers: []custody.Condition{a, b}}
	addrs := GetAddresses(context.Background(), auth)
	assert.Equal(t, 2, len(addrs))
	assert.True(t, addrs[0].Equals(a.Address()))
	assert.True(t, addrs[1].Equals(b.Address()))
}

func TestChainAuth(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()
	stranger := custodytest.NewCondition()

	first := &custodytest.Auth{Signer: a}
	second := &custodytest.CtxAuth{Key: "auth"}
	auth := ChainAuth(first, second)

	ctx := second.SetConditions(context.Background(), b)

	// conditions from all authenticators are combined
	conds := auth.GetConditions(ctx)
	assert.Equal(t, 2, len(conds))

	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.True(t, auth.HasAddress(ctx, b.Address()))
	assert.False(t, auth.HasAddress(ctx, stranger.Address()))
}

func TestHasAllAddresses(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()
	c := custodytest.NewCondition()

	auth := &custodytest.Auth{Signers: []custody.Condition{a, b}}
	ctx := context.Background()

	assert.True(t, HasAllAddresses(ctx, auth, []custody.Address{a.Address(), b.Address()}))
	assert.False(t, HasAllAddresses(ctx, auth, []custody.Address{a.Address(), c.Address()}))
	// an empty requirement is always met
	assert.True(t, HasAllAddresses(ctx, auth, nil))
}

func TestHasNAddresses(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()
	c := custodytest.NewCondition()

	auth := &custodytest.Auth{Signers: []custody.Condition{a, b}}
	ctx := context.Background()
	required := []custody.Address{a.Address(), b.Address(), c.Address()}

	assert.True(t, HasNAddresses(ctx, auth, required, 0))
	assert.True(t, HasNAddresses(ctx, auth, required, 2))
	assert.False(t, HasNAddresses(ctx, auth, required, 3))
}

func TestHasNConditions(t *testing.T) {
	a := custodytest.NewCondition()
	b := custodytest.NewCondition()
	c := custodytest.NewCondition()

	auth := &custodytest.Auth{Signers: []custody.Condition{a, b}}
	ctx := context.Background()

	assert.True(t, HasAllConditions(ctx, auth, []custody.Condition{a, b}))
	assert.False(t, HasAllConditions(ctx, auth, []custody.Condition{a, c}))
	assert.True(t, HasNConditions(ctx, auth, []custody.Condition{a, b, c}, 2))
	assert.False(t, HasNConditions(ctx, auth, []custody.Condition{a, b, c}, 3))
	assert.True(t, HasNConditions(ctx, auth, nil, 0))
}
