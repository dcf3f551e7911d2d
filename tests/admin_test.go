package tests

import (
	"math/big"
	"testing"

	"github.com/flowsight/flowsight-contract/common"
	"github.com/flowsight/flowsight-contract/contracts/curation/curationconst"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestConfiguration(t *testing.T) {
	s := newSuite(t)

	// Defaults.
	require.Equal(t, toFlow(10_000), intReader(t, s.curation, "minStake"))
	require.Equal(t, int64(500), intReader(t, s.curation, "slashPercentage").Int64())

	// Registries reject direct privileged calls no matter the witness.
	s.curation.InvokeFail(t, common.ErrUnauthorized, "setMinStake", toFlow(5_000))
	s.curation.InvokeFail(t, common.ErrUnauthorized, "setSlashPercentage", 100)
	s.curation.InvokeFail(t, common.ErrUnauthorized, "pause")

	s.execCuration(t, "setMinStake", toFlow(5_000))
	require.Equal(t, toFlow(5_000), intReader(t, s.curation, "minStake"))

	s.execCuration(t, "setSlashPercentage", 2_000)
	require.Equal(t, int64(2_000), intReader(t, s.curation, "slashPercentage").Int64())

	s.relay.InvokeFail(t, curationconst.ErrInvalidPercentage, "executeCuration",
		"setSlashPercentage", []any{10_001})
	s.relay.InvokeFail(t, curationconst.ErrInvalidAmount, "executeCuration",
		"setMinStake", []any{0})
}

func TestPause(t *testing.T) {
	s := newSuite(t)

	acc := s.curation.NewAccount(t)
	cAcc := s.curation.WithSigners(acc)
	s.fund(t, acc, s.curationHash, toFlow(20_000))
	cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), toFlow(10_000))

	s.execCuration(t, "pause")
	require.True(t, boolReader(t, s.curation, "isPaused"))

	// Every collateral-moving entry point rejects before touching state.
	cAcc.InvokeFail(t, common.ErrPaused, "stake", acc.ScriptHash(), toFlow(1))
	cAcc.InvokeFail(t, common.ErrPaused, "unstake", acc.ScriptHash(), toFlow(10_000))
	reporter := s.curation.NewAccount(t)
	s.curation.WithSigners(reporter).InvokeFail(t, common.ErrPaused, "reportCurator",
		reporter.ScriptHash(), acc.ScriptHash(), "paused")

	// Resolution stays available while paused.
	s.execCuration(t, "setMinStake", toFlow(10_000))

	s.execCuration(t, "unpause")
	require.False(t, boolReader(t, s.curation, "isPaused"))
	cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), toFlow(1))
}

func TestRewardPool(t *testing.T) {
	s := newSuite(t)

	curator, _ := newActiveCurator(t, s)

	// The administrator funds the pool out of its own balance after
	// approving the registry.
	s.mint(t, s.e.CommitteeHash, toFlow(1_000))
	s.flow.Invoke(t, stackitem.Null{}, "approve", s.e.CommitteeHash, s.curationHash, toFlow(1_000))

	h := s.execCuration(t, "fundRewardPool", s.e.CommitteeHash, toFlow(1_000))
	aer := s.relay.CheckHalt(t, h)
	ev := findEvent(t, aer, "RewardPoolFunded")
	require.Equal(t, toFlow(1_000), bigIntItem(t, ev[1]))
	require.Equal(t, toFlow(1_000), bigIntItem(t, ev[2]))
	require.Equal(t, toFlow(1_000), intReader(t, s.curation, "rewardPool"))

	s.relay.InvokeFail(t, curationconst.ErrRewardPool, "executeCuration",
		"distributeRewards", []any{curator.ScriptHash(), toFlow(2_000)})

	stranger := s.curation.NewAccount(t)
	s.relay.InvokeFail(t, curationconst.ErrNotACurator, "executeCuration",
		"distributeRewards", []any{stranger.ScriptHash(), toFlow(100)})

	balanceBefore := s.balanceOf(t, curator.ScriptHash())
	h = s.execCuration(t, "distributeRewards", curator.ScriptHash(), toFlow(400))
	aer = s.relay.CheckHalt(t, h)
	ev = findEvent(t, aer, "RewardsDistributed")
	require.Equal(t, toFlow(400), bigIntItem(t, ev[1]))

	require.Equal(t, toFlow(600), intReader(t, s.curation, "rewardPool"))
	require.Equal(t, new(big.Int).Add(balanceBefore, toFlow(400)), s.balanceOf(t, curator.ScriptHash()))

	c := s.curatorOf(t, curator.ScriptHash())
	require.Equal(t, toFlow(400), c.rewards)
}
