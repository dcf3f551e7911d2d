package spotlight

import (
	"github.com/flowsight/flowsight-contract/common"
	cst "github.com/flowsight/flowsight-contract/contracts/spotlight/spotlightconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Bid is the current highest bid on a tracked whale wallet.
type Bid struct {
	Bidder    interop.Hash160
	Amount    int
	Timestamp int
	Active    bool
}

const (
	flowContractKey = "flowScriptHash"
	totalBurnedKey  = "totalBurned"

	bidPrefix      = 'b'
	totalBidPrefix = 't'
	entityPrefix   = 'e'

	// minBid is one FLOW in the smallest token units.
	minBid = 1_000_000_000_000_000_000
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
		owner        interop.Hash160
		flowContract interop.Hash160
	})

	if len(args.flowContract) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	common.SetOwner(ctx, args.owner)
	storage.Put(ctx, flowContractKey, args.flowContract)

	runtime.Log("spotlight contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("spotlight contract updated")
}

// PlaceBid locks FLOW of the bidder to put a whale wallet into the
// spotlight. The bid must strictly exceed the current one; the outbid
// party is refunded in the same invocation. The bidder must have approved
// the spotlight contract for the amount beforehand.
//
// Produces BidPlaced notification.
func PlaceBid(bidder interop.Hash160, entity interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckNotPaused(ctx)
	common.CheckWitness(bidder)

	if isNullEntity(entity) {
		panic(cst.ErrInvalidEntity)
	}
	if amount < minBid {
		panic(cst.ErrBelowMinimum)
	}

	prev := getBid(ctx, entity)
	if amount <= prev.Amount {
		panic(cst.ErrBidNotHigher)
	}

	pull(ctx, bidder, amount)

	prevBidder := prev.Bidder
	prevAmount := prev.Amount
	if prev.Active {
		push(ctx, prevBidder, prevAmount)
		addTotalBid(ctx, prevBidder, -prevAmount)
	}

	common.SetSerialized(ctx, bidKey(entity), Bid{
		Bidder:    bidder,
		Amount:    amount,
		Timestamp: runtime.GetTime(),
		Active:    true,
	})
	addTotalBid(ctx, bidder, amount)
	trackEntity(ctx, entity)

	runtime.Notify("BidPlaced", entity, bidder, amount, prevBidder, prevAmount)
}

// WithdrawBid refunds the current bid of the caller on the entity and
// resets the bid record. The entity stays in the tracked set as a
// historical record.
//
// Produces BidWithdrawn notification.
func WithdrawBid(bidder interop.Hash160, entity interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckWitness(bidder)

	b := getBid(ctx, entity)
	if !common.BytesEqual(b.Bidder, bidder) {
		panic(cst.ErrNotYourBid)
	}
	if !b.Active {
		panic(cst.ErrNoActiveBid)
	}

	common.SetSerialized(ctx, bidKey(entity), emptyBid())
	addTotalBid(ctx, bidder, -b.Amount)

	push(ctx, bidder, b.Amount)

	runtime.Notify("BidWithdrawn", entity, bidder, b.Amount)
}

// BurnBiddingFees destroys FLOW held in contract custody and increases the
// burned-fees counter. It can be invoked only by the relay contract.
//
// Produces FeesBurned notification.
func BurnBiddingFees(amount int) {
	ctx := storage.GetContext()
	common.CheckOwnerContract(ctx)

	if amount <= 0 {
		panic(cst.ErrInvalidAmount)
	}

	self := runtime.GetExecutingScriptHash()
	flowHash := flowContract(ctx)
	custody := contract.Call(flowHash, "balanceOf", contract.ReadOnly, self).(int)
	if amount > custody {
		panic(cst.ErrContractBalance)
	}

	contract.Call(flowHash, "burn", contract.All, self, amount)

	burned := common.GetInt(ctx, totalBurnedKey) + amount
	storage.Put(ctx, totalBurnedKey, burned)

	runtime.Notify("FeesBurned", amount, burned)
}

// Pause halts bid placement. It can be invoked only by the relay contract.
// Withdrawals stay available so bidders can exit while the registry is
// halted.
func Pause() {
	ctx := storage.GetContext()
	common.CheckOwnerContract(ctx)
	common.SetPaused(ctx, true)
	runtime.Log("spotlight registry paused")
}

// Unpause lifts the registry halt. It can be invoked only by the relay
// contract.
func Unpause() {
	ctx := storage.GetContext()
	common.CheckOwnerContract(ctx)
	common.SetPaused(ctx, false)
	runtime.Log("spotlight registry unpaused")
}

// CurrentBid returns the bid record of the entity. An entity without an
// active bid yields an inactive record with a zero bidder.
func CurrentBid(entity interop.Hash160) Bid {
	ctx := storage.GetReadOnlyContext()
	return getBid(ctx, entity)
}

// TotalBidOf returns the sum of all active bids of the account.
func TotalBidOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, totalBidKey(account))
}

// TrackedEntities returns an iterator over all whale wallets that ever
// received a bid. Withdrawn entities are retained.
func TrackedEntities() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{entityPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// TotalBurned returns the amount of FLOW destroyed through fee burns.
func TotalBurned() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, totalBurnedKey)
}

// MinBid returns the minimum bid in the smallest token units.
func MinBid() int {
	return minBid
}

// IsPaused returns true if the registry is administratively halted.
func IsPaused() bool {
	ctx := storage.GetReadOnlyContext()
	return common.IsPaused(ctx)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getBid(ctx storage.Context, entity interop.Hash160) Bid {
	data := storage.Get(ctx, bidKey(entity))
	if data == nil {
		return emptyBid()
	}
	return std.Deserialize(data.([]byte)).(Bid)
}

// emptyBid is the record of an entity without an active bid. The bidder is a
// zero Hash160 rather than nil so that the record always serializes to the
// manifest Bid type.
func emptyBid() Bid {
	return Bid{Bidder: make([]byte, interop.Hash160Len)}
}

func addTotalBid(ctx storage.Context, account interop.Hash160, delta int) {
	key := totalBidKey(account)
	total := common.GetInt(ctx, key) + delta
	if total == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, total)
	}
}

// trackEntity inserts the entity into the tracked set once; duplicate
// inserts are no-ops.
func trackEntity(ctx storage.Context, entity interop.Hash160) {
	key := entityKey(entity)
	if storage.Get(ctx, key) == nil {
		storage.Put(ctx, key, true)
	}
}

func isNullEntity(entity interop.Hash160) bool {
	if len(entity) != interop.Hash160Len {
		return true
	}
	for i := 0; i < len(entity); i++ {
		if entity[i] != 0 {
			return false
		}
	}
	return true
}

func bidKey(entity interop.Hash160) []byte {
	return append([]byte{bidPrefix}, entity...)
}

func totalBidKey(account interop.Hash160) []byte {
	return append([]byte{totalBidPrefix}, account...)
}

func entityKey(entity interop.Hash160) []byte {
	return append([]byte{entityPrefix}, entity...)
}

func flowContract(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, flowContractKey).(interop.Hash160)
}

// pull moves FLOW from the account into contract custody using the
// allowance granted to this contract.
func pull(ctx storage.Context, from interop.Hash160, amount int) {
	self := runtime.GetExecutingScriptHash()
	ok := contract.Call(flowContract(ctx), "transferFrom", contract.All, from, self, amount, nil).(bool)
	if !ok {
		panic(cst.ErrInsufficientBalance)
	}
}

// push moves FLOW out of contract custody back to the account.
func push(ctx storage.Context, to interop.Hash160, amount int) {
	self := runtime.GetExecutingScriptHash()
	ok := contract.Call(flowContract(ctx), "transfer", contract.All, self, to, amount, nil).(bool)
	if !ok {
		panic("insufficient contract custody")
	}
}
