package cash

import (
	amino "github.com/tendermint/go-amino"
)

// cdc is the codec used to persist all entities of this package.
var cdc = amino.NewCodec()
