package curation

import (
	"github.com/flowsight/flowsight-contract/common"
	cst "github.com/flowsight/flowsight-contract/contracts/curation/curationconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Curator is the collateral record of a single account.
	Curator struct {
		StakedAmount    int
		StakedAt        int
		Active          bool
		TotalSlashCount int
		TotalRewards    int
	}

	// Report is a challenge raised against a curator. It is immutable
	// after creation except for the Resolved flag.
	Report struct {
		ID            int
		Curator       interop.Hash160
		Reporter      interop.Hash160
		ReporterStake int
		Reason        string
		Resolved      bool
	}
)

const (
	flowContractKey = "flowScriptHash"

	minStakeKey     = "minStake"
	slashBpsKey     = "slashPercentage"
	totalStakedKey  = "totalStaked"
	totalSlashedKey = "totalSlashed"
	reportCountKey  = "reportCount"
	rewardPoolKey   = "rewardPool"

	curatorPrefix      = 'c'
	reportPrefix       = 'r'
	activeReportPrefix = 'a'

	defaultSlashBps = 500
	bpsDenominator  = 10_000

	// minStake floor is a quarter of which the report bond is computed
	// from; both are runtime values, see _deploy.
	defaultMinStakeFlow = 10_000
)

// flowUnit is 10^18, the smallest-unit scale of one FLOW. Kept as a
// variable so that amounts above the int64 range stay runtime VM
// arithmetic.
var flowUnit = 1_000_000_000_000_000_000

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
	storage.Put(ctx, minStakeKey, defaultMinStakeFlow*flowUnit)
	storage.Put(ctx, slashBpsKey, defaultSlashBps)

	runtime.Log("curation contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("curation contract updated")
}

// Stake locks FLOW collateral of the curator account. On the first stake the
// amount must not be below the minimum, later top-ups have no per-call
// minimum. The account must have approved the curation contract for the
// amount beforehand.
//
// Produces CuratorStaked notification.
func Stake(curator interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckNotPaused(ctx)
	common.CheckWitness(curator)

	if amount <= 0 {
		panic(cst.ErrInvalidAmount)
	}
	if activeReportID(ctx, curator) != 0 {
		panic(cst.ErrAlreadyReported)
	}

	pull(ctx, curator, amount)

	c := getCurator(ctx, curator)
	minStake := common.GetInt(ctx, minStakeKey)
	if c.StakedAmount == 0 && amount < minStake {
		panic(cst.ErrBelowMinimum)
	}

	c.StakedAmount += amount
	c.StakedAt = runtime.GetTime()
	c.Active = c.StakedAmount >= minStake
	putCurator(ctx, curator, c)

	storage.Put(ctx, totalStakedKey, common.GetInt(ctx, totalStakedKey)+amount)

	runtime.Notify("CuratorStaked", curator, amount, c.StakedAmount)
}

// Unstake returns FLOW collateral to the curator account. Removing the whole
// remaining stake is always permitted and deactivates the curator; a partial
// withdrawal must leave at least the minimum stake. Both are blocked while an
// unresolved report exists against the curator.
//
// Produces CuratorUnstaked notification.
func Unstake(curator interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckNotPaused(ctx)
	common.CheckWitness(curator)

	if amount <= 0 {
		panic(cst.ErrInvalidAmount)
	}

	c := getCurator(ctx, curator)
	if c.StakedAmount == 0 {
		panic(cst.ErrNotACurator)
	}
	if activeReportID(ctx, curator) != 0 {
		panic(cst.ErrAlreadyReported)
	}
	if amount > c.StakedAmount {
		panic(cst.ErrInvalidAmount)
	}

	minStake := common.GetInt(ctx, minStakeKey)
	if amount < c.StakedAmount && c.StakedAmount-amount < minStake {
		panic(cst.ErrBelowMinimumLeft)
	}

	c.StakedAmount -= amount
	c.StakedAt = runtime.GetTime()
	c.Active = c.StakedAmount >= minStake
	putCurator(ctx, curator, c)

	storage.Put(ctx, totalStakedKey, common.GetInt(ctx, totalStakedKey)-amount)

	push(ctx, curator, amount)

	runtime.Notify("CuratorUnstaked", curator, amount, c.StakedAmount)
}

// ReportCurator opens a challenge against an active curator and locks the
// reporter bond, a quarter of the minimum stake but never less than one
// token unit. At most one unresolved report per curator may exist; until it
// is resolved the curator can neither stake nor unstake. Returns id of the
// new report.
//
// Produces CuratorReported notification.
func ReportCurator(reporter, curator interop.Hash160, reason string) int {
	ctx := storage.GetContext()
	common.CheckNotPaused(ctx)
	common.CheckWitness(reporter)

	if common.BytesEqual(reporter, curator) {
		panic(cst.ErrSelfReport)
	}

	c := getCurator(ctx, curator)
	if !c.Active {
		panic(cst.ErrNotAnActiveCurator)
	}
	if activeReportID(ctx, curator) != 0 {
		panic(cst.ErrAlreadyReported)
	}

	bond := common.GetInt(ctx, minStakeKey) / 4
	if bond < 1 {
		bond = 1
	}

	if balanceOf(ctx, reporter) < bond {
		panic(cst.ErrReporterBalance)
	}
	pull(ctx, reporter, bond)

	id := common.GetInt(ctx, reportCountKey)
	r := Report{
		ID:            id,
		Curator:       curator,
		Reporter:      reporter,
		ReporterStake: bond,
		Reason:        reason,
	}
	common.SetSerialized(ctx, reportKey(id), r)
	storage.Put(ctx, activeReportKey(curator), id+1)
	storage.Put(ctx, reportCountKey, id+1)

	runtime.Notify("CuratorReported", id, curator, reporter, bond)

	return id
}

// ResolveReport applies the arbiter decision to an unresolved report. It can
// be invoked only by the relay contract.
//
// DecisionPenalize slashes the configured percentage off the curator stake
// (floor division), deactivates the curator if the remainder falls below the
// minimum, and refunds the reporter bond. DecisionClear leaves the stake
// untouched and forfeits the bond to contract custody. Either way the report
// becomes resolved and the curator lock is cleared; this is the only path
// that ever clears it.
//
// Produces ReportResolved notification.
func ResolveReport(id int, decision int) {
	ctx := storage.GetContext()
	common.CheckOwnerContract(ctx)

	r := getReport(ctx, id)
	if r.Resolved {
		panic(cst.ErrAlreadyResolved)
	}

	slashAmount := 0
	switch decision {
	case cst.DecisionPenalize:
		c := getCurator(ctx, r.Curator)
		bps := common.GetInt(ctx, slashBpsKey)
		slashAmount = c.StakedAmount * bps / bpsDenominator

		c.StakedAmount -= slashAmount
		c.TotalSlashCount = c.TotalSlashCount + 1
		c.Active = c.StakedAmount >= common.GetInt(ctx, minStakeKey)
		putCurator(ctx, r.Curator, c)

		storage.Put(ctx, totalStakedKey, common.GetInt(ctx, totalStakedKey)-slashAmount)
		storage.Put(ctx, totalSlashedKey, common.GetInt(ctx, totalSlashedKey)+slashAmount)

		push(ctx, r.Reporter, r.ReporterStake)
	case cst.DecisionClear:
		// Bond is forfeited: it stays in contract custody and is not
		// redistributed.
	default:
		panic(cst.ErrInvalidDecision)
	}

	r.Resolved = true
	common.SetSerialized(ctx, reportKey(id), r)
	storage.Delete(ctx, activeReportKey(r.Curator))

	runtime.Notify("ReportResolved", id, decision, slashAmount)
}

// SetMinStake sets the minimum collateral floor. It can be invoked only by
// the relay contract. Activity flags of existing curators are not
// recomputed until their next stake mutation.
func SetMinStake(value int) {
	ctx := storage.GetContext()
	common.CheckOwnerContract(ctx)

	if value <= 0 {
		panic(cst.ErrInvalidAmount)
	}
	storage.Put(ctx, minStakeKey, value)
}

// SetSlashPercentage sets the slash rate in basis points out of 10000. It
// can be invoked only by the relay contract.
func SetSlashPercentage(bps int) {
	ctx := storage.GetContext()
	common.CheckOwnerContract(ctx)

	if bps < 0 || bps > bpsDenominator {
		panic(cst.ErrInvalidPercentage)
	}
	storage.Put(ctx, slashBpsKey, bps)
}

// Pause halts all collateral-moving methods of the registry. It can be
// invoked only by the relay contract.
func Pause() {
	ctx := storage.GetContext()
	common.CheckOwnerContract(ctx)
	common.SetPaused(ctx, true)
	runtime.Log("curation registry paused")
}

// Unpause lifts the registry halt. It can be invoked only by the relay
// contract.
func Unpause() {
	ctx := storage.GetContext()
	common.CheckOwnerContract(ctx)
	common.SetPaused(ctx, false)
	runtime.Log("curation registry unpaused")
}

// FundRewardPool pulls FLOW from the given account into the reward pool. It
// can be invoked only by the relay contract; the account must have approved
// the curation contract for the amount beforehand.
//
// Produces RewardPoolFunded notification.
func FundRewardPool(from interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckOwnerContract(ctx)

	if amount <= 0 {
		panic(cst.ErrInvalidAmount)
	}

	pull(ctx, from, amount)
	pool := common.GetInt(ctx, rewardPoolKey) + amount
	storage.Put(ctx, rewardPoolKey, pool)

	runtime.Notify("RewardPoolFunded", from, amount, pool)
}

// DistributeRewards pays FLOW out of the reward pool to a curator. It can be
// invoked only by the relay contract.
//
// Produces RewardsDistributed notification.
func DistributeRewards(curator interop.Hash160, amount int) {
	ctx := storage.GetContext()
	common.CheckOwnerContract(ctx)

	if amount <= 0 {
		panic(cst.ErrInvalidAmount)
	}

	pool := common.GetInt(ctx, rewardPoolKey)
	if amount > pool {
		panic(cst.ErrRewardPool)
	}

	data := storage.Get(ctx, curatorKey(curator))
	if data == nil {
		panic(cst.ErrNotACurator)
	}
	c := std.Deserialize(data.([]byte)).(Curator)
	c.TotalRewards += amount
	putCurator(ctx, curator, c)

	storage.Put(ctx, rewardPoolKey, pool-amount)
	push(ctx, curator, amount)

	runtime.Notify("RewardsDistributed", curator, amount)
}

// GetCurator returns the collateral record of the account. An account that
// never staked yields the zero record.
func GetCurator(account interop.Hash160) Curator {
	ctx := storage.GetReadOnlyContext()
	return getCurator(ctx, account)
}

// GetReport returns a report by id, resolved or not.
func GetReport(id int) Report {
	ctx := storage.GetReadOnlyContext()
	return getReport(ctx, id)
}

// ActiveReportOf returns id of the unresolved report against the curator
// increased by one, or 0 if there is none. The shift keeps report id 0
// representable.
func ActiveReportOf(curator interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return activeReportID(ctx, curator)
}

// MinStake returns the minimum collateral floor in the smallest token units.
func MinStake() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, minStakeKey)
}

// SlashPercentage returns the slash rate in basis points.
func SlashPercentage() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, slashBpsKey)
}

// TotalStaked returns the sum of all curator collateral.
func TotalStaked() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, totalStakedKey)
}

// TotalSlashed returns the total collateral ever slashed.
func TotalSlashed() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, totalSlashedKey)
}

// ReportCount returns the number of reports ever created.
func ReportCount() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, reportCountKey)
}

// RewardPool returns the undistributed reward pool balance.
func RewardPool() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, rewardPoolKey)
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

func getCurator(ctx storage.Context, account interop.Hash160) Curator {
	data := storage.Get(ctx, curatorKey(account))
	if data == nil {
		return Curator{}
	}
	return std.Deserialize(data.([]byte)).(Curator)
}

func putCurator(ctx storage.Context, account interop.Hash160, c Curator) {
	common.SetSerialized(ctx, curatorKey(account), c)
}

func getReport(ctx storage.Context, id int) Report {
	data := storage.Get(ctx, reportKey(id))
	if data == nil {
		panic(cst.ErrReportNotFound)
	}
	return std.Deserialize(data.([]byte)).(Report)
}

func activeReportID(ctx storage.Context, curator interop.Hash160) int {
	return common.GetInt(ctx, activeReportKey(curator))
}

func curatorKey(account interop.Hash160) []byte {
	return append([]byte{curatorPrefix}, account...)
}

func reportKey(id int) []byte {
	return append([]byte{reportPrefix}, convert.ToBytes(id)...)
}

func activeReportKey(curator interop.Hash160) []byte {
	return append([]byte{activeReportPrefix}, curator...)
}

func flowContract(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, flowContractKey).(interop.Hash160)
}

func balanceOf(ctx storage.Context, account interop.Hash160) int {
	return contract.Call(flowContract(ctx), "balanceOf", contract.ReadOnly, account).(int)
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
