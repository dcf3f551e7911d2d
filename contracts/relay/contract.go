package relay

import (
	"github.com/flowsight/flowsight-contract/common"
	cst "github.com/flowsight/flowsight-contract/contracts/relay/relayconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	administratorKey     = "administrator"
	curationContractKey  = "curationScriptHash"
	spotlightContractKey = "spotlightScriptHash"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		administrator interop.Hash160
		addrCuration  interop.Hash160
		addrSpotlight interop.Hash160
	})

	if len(args.administrator) != interop.Hash160Len ||
		len(args.addrCuration) != interop.Hash160Len ||
		len(args.addrSpotlight) != interop.Hash160Len {
		panic("incorrect length of script hash")
	}

	storage.Put(ctx, administratorKey, args.administrator)
	storage.Put(ctx, curationContractKey, args.addrCuration)
	storage.Put(ctx, spotlightContractKey, args.addrSpotlight)

	runtime.Log("relay contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("relay contract updated")
}

// ExecuteCuration re-dispatches a privileged method of the curation
// registry. It can be invoked only by the administrator. The selector must
// belong to the fixed privileged set of the registry; that and any fault of
// the inner call surface as a uniform ErrExecutionFailed fault wrapping the
// cause.
func ExecuteCuration(method string, args []any) any {
	ctx := storage.GetReadOnlyContext()
	return execute(ctx, curationContractKey, method, isCurationMethod(method), args)
}

// ExecuteSpotlight re-dispatches a privileged method of the spotlight
// registry. It can be invoked only by the administrator. The selector must
// belong to the fixed privileged set of the registry; that and any fault of
// the inner call surface as a uniform ErrExecutionFailed fault wrapping the
// cause.
func ExecuteSpotlight(method string, args []any) any {
	ctx := storage.GetReadOnlyContext()
	return execute(ctx, spotlightContractKey, method, isSpotlightMethod(method), args)
}

// SetAdministrator hands the administrative authority over to another
// account. It can be invoked only by the current administrator.
func SetAdministrator(account interop.Hash160) {
	ctx := storage.GetContext()
	checkAdministrator(ctx)

	if len(account) != interop.Hash160Len {
		panic("incorrect length of script hash")
	}

	storage.Put(ctx, administratorKey, account)
	runtime.Notify("AdministratorChanged", account)
}

// Administrator returns the current administrator account.
func Administrator() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, administratorKey).(interop.Hash160)
}

// Verify method returns true if the transaction is signed by the
// administrator.
func Verify() bool {
	ctx := storage.GetReadOnlyContext()
	admin := storage.Get(ctx, administratorKey).(interop.Hash160)
	return runtime.CheckWitness(admin)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func execute(ctx storage.Context, targetKey string, method string, known bool, args []any) any {
	checkAdministrator(ctx)

	// The selector is checked up front: a call to a nonexistent method
	// fails inside the call syscall and could not be recovered into the
	// uniform fault below.
	if !known {
		panic(cst.ErrExecutionFailed + ": " + cst.ErrUnknownMethod + " " + method)
	}

	defer func() {
		if r := recover(); r != nil {
			panic(cst.ErrExecutionFailed + ": " + r.(string))
		}
	}()

	target := storage.Get(ctx, targetKey).(interop.Hash160)
	return contract.Call(target, method, contract.All, args...)
}

// isCurationMethod reports whether the selector is one of the privileged
// methods of the curation registry.
func isCurationMethod(method string) bool {
	switch method {
	case "resolveReport", "setMinStake", "setSlashPercentage",
		"pause", "unpause", "fundRewardPool", "distributeRewards":
		return true
	}
	return false
}

// isSpotlightMethod reports whether the selector is one of the privileged
// methods of the spotlight registry.
func isSpotlightMethod(method string) bool {
	switch method {
	case "burnBiddingFees", "pause", "unpause":
		return true
	}
	return false
}

func checkAdministrator(ctx storage.Context) {
	admin := storage.Get(ctx, administratorKey).(interop.Hash160)
	if !runtime.CheckWitness(admin) {
		panic(cst.ErrUnauthorized)
	}
}
