package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	// OwnerKey is the storage key of the contract that owns privileged
	// methods of a registry. For the curation and spotlight registries
	// it is always the relay contract hash.
	OwnerKey = "owner"

	// ErrUnauthorized appears when a privileged method is invoked by
	// anyone other than the owner contract.
	ErrUnauthorized = "unauthorized"
)

// SetOwner stores hash of the owner contract. Must be called from _deploy
// only.
func SetOwner(ctx storage.Context, owner interop.Hash160) {
	if len(owner) != interop.Hash160Len {
		panic("incorrect length of owner script hash")
	}
	storage.Put(ctx, OwnerKey, owner)
}

// Owner returns hash of the owner contract.
func Owner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, OwnerKey).(interop.Hash160)
}

// CheckOwnerContract panics with ErrUnauthorized unless the direct caller
// is the owner contract. Witnesses are not considered, privileged methods
// are reachable through the owner contract only.
func CheckOwnerContract(ctx storage.Context) {
	caller := runtime.GetCallingScriptHash()
	if !BytesEqual(caller, Owner(ctx)) {
		panic(ErrUnauthorized)
	}
}
