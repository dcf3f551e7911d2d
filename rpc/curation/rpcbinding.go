// Package curation contains RPC wrappers for FlowSight Curation contract.
package curation

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// CurationCurator is a contract-specific curation.Curator type used by its methods.
type CurationCurator struct {
	StakedAmount *big.Int
	StakedAt *big.Int
	Active bool
	TotalSlashCount *big.Int
	TotalRewards *big.Int
}

// CurationReport is a contract-specific curation.Report type used by its methods.
type CurationReport struct {
	ID *big.Int
	Curator util.Uint160
	Reporter util.Uint160
	ReporterStake *big.Int
	Reason string
	Resolved bool
}

// CuratorStakedEvent represents "CuratorStaked" event emitted by the contract.
type CuratorStakedEvent struct {
	Curator util.Uint160
	Amount *big.Int
	TotalStake *big.Int
}

// CuratorUnstakedEvent represents "CuratorUnstaked" event emitted by the contract.
type CuratorUnstakedEvent struct {
	Curator util.Uint160
	Amount *big.Int
	RemainingStake *big.Int
}

// CuratorReportedEvent represents "CuratorReported" event emitted by the contract.
type CuratorReportedEvent struct {
	ReportId *big.Int
	Curator util.Uint160
	Reporter util.Uint160
	Bond *big.Int
}

// ReportResolvedEvent represents "ReportResolved" event emitted by the contract.
type ReportResolvedEvent struct {
	ReportId *big.Int
	Decision *big.Int
	SlashAmount *big.Int
}

// RewardPoolFundedEvent represents "RewardPoolFunded" event emitted by the contract.
type RewardPoolFundedEvent struct {
	From util.Uint160
	Amount *big.Int
	Pool *big.Int
}

// RewardsDistributedEvent represents "RewardsDistributed" event emitted by the contract.
type RewardsDistributedEvent struct {
	Curator util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// ActiveReportOf invokes `activeReportOf` method of contract.
func (c *ContractReader) ActiveReportOf(curator util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "activeReportOf", curator))
}

// GetCurator invokes `getCurator` method of contract.
func (c *ContractReader) GetCurator(curator util.Uint160) (*CurationCurator, error) {
	return itemToCurationCurator(unwrap.Item(c.invoker.Call(c.hash, "getCurator", curator)))
}

// GetReport invokes `getReport` method of contract.
func (c *ContractReader) GetReport(id *big.Int) (*CurationReport, error) {
	return itemToCurationReport(unwrap.Item(c.invoker.Call(c.hash, "getReport", id)))
}

// IsPaused invokes `isPaused` method of contract.
func (c *ContractReader) IsPaused() (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isPaused"))
}

// MinStake invokes `minStake` method of contract.
func (c *ContractReader) MinStake() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "minStake"))
}

// ReportCount invokes `reportCount` method of contract.
func (c *ContractReader) ReportCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "reportCount"))
}

// RewardPool invokes `rewardPool` method of contract.
func (c *ContractReader) RewardPool() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rewardPool"))
}

// SlashPercentage invokes `slashPercentage` method of contract.
func (c *ContractReader) SlashPercentage() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "slashPercentage"))
}

// TotalSlashed invokes `totalSlashed` method of contract.
func (c *ContractReader) TotalSlashed() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalSlashed"))
}

// TotalStaked invokes `totalStaked` method of contract.
func (c *ContractReader) TotalStaked() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalStaked"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// DistributeRewards creates a transaction invoking `distributeRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DistributeRewards(curator util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "distributeRewards", curator, amount)
}

// DistributeRewardsTransaction creates a transaction invoking `distributeRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DistributeRewardsTransaction(curator util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "distributeRewards", curator, amount)
}

// DistributeRewardsUnsigned creates a transaction invoking `distributeRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DistributeRewardsUnsigned(curator util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "distributeRewards", nil, curator, amount)
}

// FundRewardPool creates a transaction invoking `fundRewardPool` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) FundRewardPool(from util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "fundRewardPool", from, amount)
}

// FundRewardPoolTransaction creates a transaction invoking `fundRewardPool` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) FundRewardPoolTransaction(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "fundRewardPool", from, amount)
}

// FundRewardPoolUnsigned creates a transaction invoking `fundRewardPool` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) FundRewardPoolUnsigned(from util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "fundRewardPool", nil, from, amount)
}

// Pause creates a transaction invoking `pause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Pause() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pause")
}

// PauseTransaction creates a transaction invoking `pause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PauseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pause")
}

// PauseUnsigned creates a transaction invoking `pause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PauseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pause", nil)
}

// ReportCurator creates a transaction invoking `reportCurator` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReportCurator(reporter util.Uint160, curator util.Uint160, reason string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "reportCurator", reporter, curator, reason)
}

// ReportCuratorTransaction creates a transaction invoking `reportCurator` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReportCuratorTransaction(reporter util.Uint160, curator util.Uint160, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "reportCurator", reporter, curator, reason)
}

// ReportCuratorUnsigned creates a transaction invoking `reportCurator` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReportCuratorUnsigned(reporter util.Uint160, curator util.Uint160, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "reportCurator", nil, reporter, curator, reason)
}

// ResolveReport creates a transaction invoking `resolveReport` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ResolveReport(id *big.Int, decision *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resolveReport", id, decision)
}

// ResolveReportTransaction creates a transaction invoking `resolveReport` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResolveReportTransaction(id *big.Int, decision *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resolveReport", id, decision)
}

// ResolveReportUnsigned creates a transaction invoking `resolveReport` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResolveReportUnsigned(id *big.Int, decision *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resolveReport", nil, id, decision)
}

// SetMinStake creates a transaction invoking `setMinStake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetMinStake(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setMinStake", amount)
}

// SetMinStakeTransaction creates a transaction invoking `setMinStake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetMinStakeTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setMinStake", amount)
}

// SetMinStakeUnsigned creates a transaction invoking `setMinStake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetMinStakeUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setMinStake", nil, amount)
}

// SetSlashPercentage creates a transaction invoking `setSlashPercentage` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetSlashPercentage(bps *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setSlashPercentage", bps)
}

// SetSlashPercentageTransaction creates a transaction invoking `setSlashPercentage` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetSlashPercentageTransaction(bps *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setSlashPercentage", bps)
}

// SetSlashPercentageUnsigned creates a transaction invoking `setSlashPercentage` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetSlashPercentageUnsigned(bps *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setSlashPercentage", nil, bps)
}

// Stake creates a transaction invoking `stake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Stake(curator util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "stake", curator, amount)
}

// StakeTransaction creates a transaction invoking `stake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StakeTransaction(curator util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "stake", curator, amount)
}

// StakeUnsigned creates a transaction invoking `stake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StakeUnsigned(curator util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "stake", nil, curator, amount)
}

// Unpause creates a transaction invoking `unpause` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unpause() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unpause")
}

// UnpauseTransaction creates a transaction invoking `unpause` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnpauseTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unpause")
}

// UnpauseUnsigned creates a transaction invoking `unpause` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnpauseUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unpause", nil)
}

// Unstake creates a transaction invoking `unstake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unstake(curator util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unstake", curator, amount)
}

// UnstakeTransaction creates a transaction invoking `unstake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnstakeTransaction(curator util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unstake", curator, amount)
}

// UnstakeUnsigned creates a transaction invoking `unstake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnstakeUnsigned(curator util.Uint160, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unstake", nil, curator, amount)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToCurationCurator converts stack item into *CurationCurator.
func itemToCurationCurator(item stackitem.Item, err error) (*CurationCurator, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CurationCurator)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CurationCurator from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CurationCurator) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.StakedAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StakedAmount: %w", err)
	}

	index++
	res.StakedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StakedAt: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	res.TotalSlashCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalSlashCount: %w", err)
	}

	index++
	res.TotalRewards, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalRewards: %w", err)
	}

	return nil
}

// itemToCurationReport converts stack item into *CurationReport.
func itemToCurationReport(item stackitem.Item, err error) (*CurationReport, error) {
	if err != nil {
		return nil, err
	}
	var res = new(CurationReport)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of CurationReport from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *CurationReport) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Curator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Curator: %w", err)
	}

	index++
	res.Reporter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reporter: %w", err)
	}

	index++
	res.ReporterStake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReporterStake: %w", err)
	}

	index++
	res.Reason, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reason: %w", err)
	}

	index++
	res.Resolved, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Resolved: %w", err)
	}

	return nil
}

// CuratorStakedEventsFromApplicationLog retrieves a set of all emitted events
// with "CuratorStaked" name from the provided [result.ApplicationLog].
func CuratorStakedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CuratorStakedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CuratorStakedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CuratorStaked" {
				continue
			}
			event := new(CuratorStakedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CuratorStakedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CuratorStakedEvent or
// returns an error if it's not possible to do to so.
func (e *CuratorStakedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Curator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Curator: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.TotalStake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalStake: %w", err)
	}

	return nil
}

// CuratorUnstakedEventsFromApplicationLog retrieves a set of all emitted events
// with "CuratorUnstaked" name from the provided [result.ApplicationLog].
func CuratorUnstakedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CuratorUnstakedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CuratorUnstakedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CuratorUnstaked" {
				continue
			}
			event := new(CuratorUnstakedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CuratorUnstakedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CuratorUnstakedEvent or
// returns an error if it's not possible to do to so.
func (e *CuratorUnstakedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Curator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Curator: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.RemainingStake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RemainingStake: %w", err)
	}

	return nil
}

// CuratorReportedEventsFromApplicationLog retrieves a set of all emitted events
// with "CuratorReported" name from the provided [result.ApplicationLog].
func CuratorReportedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CuratorReportedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CuratorReportedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CuratorReported" {
				continue
			}
			event := new(CuratorReportedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CuratorReportedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CuratorReportedEvent or
// returns an error if it's not possible to do to so.
func (e *CuratorReportedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ReportId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportId: %w", err)
	}

	index++
	e.Curator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Curator: %w", err)
	}

	index++
	e.Reporter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Reporter: %w", err)
	}

	index++
	e.Bond, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bond: %w", err)
	}

	return nil
}

// ReportResolvedEventsFromApplicationLog retrieves a set of all emitted events
// with "ReportResolved" name from the provided [result.ApplicationLog].
func ReportResolvedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ReportResolvedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ReportResolvedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ReportResolved" {
				continue
			}
			event := new(ReportResolvedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ReportResolvedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ReportResolvedEvent or
// returns an error if it's not possible to do to so.
func (e *ReportResolvedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ReportId, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ReportId: %w", err)
	}

	index++
	e.Decision, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Decision: %w", err)
	}

	index++
	e.SlashAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SlashAmount: %w", err)
	}

	return nil
}

// RewardPoolFundedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardPoolFunded" name from the provided [result.ApplicationLog].
func RewardPoolFundedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardPoolFundedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardPoolFundedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardPoolFunded" {
				continue
			}
			event := new(RewardPoolFundedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardPoolFundedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardPoolFundedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardPoolFundedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Pool, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Pool: %w", err)
	}

	return nil
}

// RewardsDistributedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardsDistributed" name from the provided [result.ApplicationLog].
func RewardsDistributedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardsDistributedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardsDistributedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardsDistributed" {
				continue
			}
			event := new(RewardsDistributedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardsDistributedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardsDistributedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardsDistributedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Curator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Curator: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
