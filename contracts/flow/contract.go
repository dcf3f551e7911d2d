package flow

import (
	"github.com/flowsight/flowsight-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
}

const (
	symbol   = "FLOW"
	decimals = 18

	supplyKey = "supply"

	balancePrefix   = 'b'
	allowancePrefix = 'l'

	// ErrInsufficientAllowance appears when transferFrom is invoked for
	// more than the spender is approved for.
	ErrInsufficientAllowance = "insufficient allowance"
)

var token Token

func init() {
	token = Token{
		Symbol:   symbol,
		Decimals: decimals,
	}
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("flow token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("flow token contract updated")
}

// Symbol is a NEP-17 standard method that returns FLOW token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of FLOW
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of FLOW
// in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, supplyKey)
}

// BalanceOf is a NEP-17 standard method that returns FLOW balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, balanceKey(account))
}

// Transfer is a NEP-17 standard method that transfers FLOW from one account
// to another. It can be invoked by the account owner or by a contract moving
// assets out of its own custody.
//
// Produces Transfer notification. Returns false if sender's balance is not
// enough.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	checkAccounts(from, to)
	checkAmount(amount)

	if !common.BytesEqual(from, runtime.GetCallingScriptHash()) {
		common.CheckWitness(from)
	}

	ctx := storage.GetContext()
	return transfer(ctx, from, to, amount, data)
}

// Approve sets the amount the spender contract is allowed to pull from the
// owner account with transferFrom. It can be invoked only by the account
// owner. Repeated calls overwrite the previous allowance.
//
// Produces Approval notification.
func Approve(owner interop.Hash160, spender interop.Hash160, amount int) {
	checkAccounts(owner, spender)
	checkAmount(amount)
	common.CheckWitness(owner)

	ctx := storage.GetContext()
	if amount == 0 {
		storage.Delete(ctx, allowanceKey(owner, spender))
	} else {
		storage.Put(ctx, allowanceKey(owner, spender), amount)
	}

	runtime.Notify("Approval", owner, spender, amount)
}

// Allowance returns the amount the spender is still allowed to pull from the
// owner account.
func Allowance(owner interop.Hash160, spender interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, allowanceKey(owner, spender))
}

// TransferFrom pulls FLOW from the owner account using the allowance granted
// to the calling contract. The spender identity is always the calling script
// hash, there is no way to spend someone else's allowance.
//
// Produces Transfer notification. Returns false if the owner's balance is
// not enough, panics with ErrInsufficientAllowance if the allowance is.
func TransferFrom(from, to interop.Hash160, amount int, data any) bool {
	checkAccounts(from, to)
	checkAmount(amount)

	spender := runtime.GetCallingScriptHash()
	ctx := storage.GetContext()

	key := allowanceKey(from, spender)
	allowed := common.GetInt(ctx, key)
	if allowed < amount {
		panic(ErrInsufficientAllowance)
	}

	if !transfer(ctx, from, to, amount, data) {
		return false
	}

	if allowed == amount {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, allowed-amount)
	}

	return true
}

// Burn destroys FLOW held by the from account and decreases total supply.
// It can be invoked by the account owner or by a contract burning its own
// custody.
//
// Produces Transfer and Burn notifications.
func Burn(from interop.Hash160, amount int) {
	checkAccount(from)
	checkAmount(amount)

	if !common.BytesEqual(from, runtime.GetCallingScriptHash()) {
		common.CheckWitness(from)
	}

	ctx := storage.GetContext()
	if !transfer(ctx, from, nil, amount, nil) {
		panic("insufficient balance")
	}

	supply := common.GetInt(ctx, supplyKey)
	if supply < amount {
		panic("negative supply after burn")
	}
	storage.Put(ctx, supplyKey, supply-amount)

	runtime.Notify("Burn", from, amount)
}

// Mint creates FLOW on the to account and increases total supply. It can be
// invoked only by committee.
//
// Produces Transfer and Mint notifications.
func Mint(to interop.Hash160, amount int) {
	checkAccount(to)
	checkAmount(amount)

	if !common.HasUpdateAccess() {
		panic("only committee can mint")
	}

	ctx := storage.GetContext()
	transfer(ctx, nil, to, amount, nil)

	supply := common.GetInt(ctx, supplyKey)
	storage.Put(ctx, supplyKey, supply+amount)

	runtime.Notify("Mint", to, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func transfer(ctx storage.Context, from, to interop.Hash160, amount int, data any) bool {
	if len(from) == interop.Hash160Len {
		fromKey := balanceKey(from)
		fromBalance := common.GetInt(ctx, fromKey)
		if fromBalance < amount {
			return false
		}

		if fromBalance == amount {
			storage.Delete(ctx, fromKey)
		} else {
			storage.Put(ctx, fromKey, fromBalance-amount)
		}
	}

	if len(to) == interop.Hash160Len {
		toKey := balanceKey(to)
		toBalance := common.GetInt(ctx, toKey)
		storage.Put(ctx, toKey, toBalance+amount)
	}

	runtime.Notify("Transfer", from, to, amount)

	return true
}

func balanceKey(acc interop.Hash160) []byte {
	return append([]byte{balancePrefix}, acc...)
}

func allowanceKey(owner, spender interop.Hash160) []byte {
	key := append([]byte{allowancePrefix}, owner...)
	return append(key, spender...)
}

func checkAccounts(a, b interop.Hash160) {
	checkAccount(a)
	checkAccount(b)
}

func checkAccount(acc interop.Hash160) {
	if len(acc) != interop.Hash160Len {
		panic("invalid account")
	}
}

func checkAmount(amount int) {
	if amount < 0 {
		panic("invalid amount")
	}
}
