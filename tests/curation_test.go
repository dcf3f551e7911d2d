package tests

import (
	"math/big"
	"testing"

	"github.com/flowsight/flowsight-contract/common"
	"github.com/flowsight/flowsight-contract/contracts/curation/curationconst"
	"github.com/flowsight/flowsight-contract/contracts/relay/relayconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestStake(t *testing.T) {
	s := newSuite(t)

	acc := s.curation.NewAccount(t)
	cAcc := s.curation.WithSigners(acc)
	s.fund(t, acc, s.curationHash, toFlow(20_000))

	cAcc.InvokeFail(t, curationconst.ErrInvalidAmount, "stake", acc.ScriptHash(), big.NewInt(0))
	cAcc.InvokeFail(t, curationconst.ErrBelowMinimum, "stake", acc.ScriptHash(), toFlow(9_999))

	// Somebody else's witness is not enough.
	other := s.curation.NewAccount(t)
	s.curation.WithSigners(other).InvokeFail(t, common.ErrWitnessFailed, "stake", acc.ScriptHash(), toFlow(10_000))

	h := cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), toFlow(10_000))
	aer := cAcc.CheckHalt(t, h)
	ev := findEvent(t, aer, "CuratorStaked")
	require.Equal(t, acc.ScriptHash().BytesBE(), mustBytes(t, ev[0]))
	require.Equal(t, toFlow(10_000), bigIntItem(t, ev[1]))
	require.Equal(t, toFlow(10_000), bigIntItem(t, ev[2]))

	c := s.curatorOf(t, acc.ScriptHash())
	require.Equal(t, toFlow(10_000), c.staked)
	require.True(t, c.active)
	require.Positive(t, c.stakedAt.Sign())

	require.Equal(t, toFlow(10_000), intReader(t, s.curation, "totalStaked"))
	require.Equal(t, toFlow(10_000), s.balanceOf(t, s.curationHash))
	require.Equal(t, toFlow(10_000), s.balanceOf(t, acc.ScriptHash()))

	// Top-ups have no per-call minimum.
	cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), toFlow(1))
	c = s.curatorOf(t, acc.ScriptHash())
	require.Equal(t, toFlow(10_001), c.staked)
	require.True(t, c.active)
}

func TestStakeLedgerFailures(t *testing.T) {
	s := newSuite(t)

	acc := s.curation.NewAccount(t)
	cAcc := s.curation.WithSigners(acc)

	// No allowance at all.
	s.mint(t, acc.ScriptHash(), toFlow(10_000))
	cAcc.InvokeFail(t, "insufficient allowance", "stake", acc.ScriptHash(), toFlow(10_000))

	// Allowance without the balance behind it.
	s.approve(t, acc, s.curationHash, toFlow(50_000))
	cAcc.InvokeFail(t, curationconst.ErrInsufficientBalance, "stake", acc.ScriptHash(), toFlow(20_000))

	// A failed pull leaves no trace.
	c := s.curatorOf(t, acc.ScriptHash())
	require.Equal(t, int64(0), c.staked.Int64())
	require.Equal(t, toFlow(10_000), s.balanceOf(t, acc.ScriptHash()))
}

func TestUnstake(t *testing.T) {
	s := newSuite(t)

	acc := s.curation.NewAccount(t)
	cAcc := s.curation.WithSigners(acc)

	cAcc.InvokeFail(t, curationconst.ErrNotACurator, "unstake", acc.ScriptHash(), toFlow(1))

	s.fund(t, acc, s.curationHash, toFlow(15_000))
	cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), toFlow(15_000))

	cAcc.InvokeFail(t, curationconst.ErrInvalidAmount, "unstake", acc.ScriptHash(), big.NewInt(0))
	cAcc.InvokeFail(t, curationconst.ErrInvalidAmount, "unstake", acc.ScriptHash(), toFlow(16_000))
	cAcc.InvokeFail(t, curationconst.ErrBelowMinimumLeft, "unstake", acc.ScriptHash(), toFlow(6_000))

	// Partial withdrawal keeping the minimum.
	h := cAcc.Invoke(t, stackitem.Null{}, "unstake", acc.ScriptHash(), toFlow(5_000))
	aer := cAcc.CheckHalt(t, h)
	ev := findEvent(t, aer, "CuratorUnstaked")
	require.Equal(t, toFlow(5_000), bigIntItem(t, ev[1]))
	require.Equal(t, toFlow(10_000), bigIntItem(t, ev[2]))

	c := s.curatorOf(t, acc.ScriptHash())
	require.Equal(t, toFlow(10_000), c.staked)
	require.True(t, c.active)
	require.Equal(t, toFlow(5_000), s.balanceOf(t, acc.ScriptHash()))

	// Removing the entire remaining stake is always permitted.
	cAcc.Invoke(t, stackitem.Null{}, "unstake", acc.ScriptHash(), toFlow(10_000))
	c = s.curatorOf(t, acc.ScriptHash())
	require.Equal(t, int64(0), c.staked.Int64())
	require.False(t, c.active)
	require.Equal(t, toFlow(15_000), s.balanceOf(t, acc.ScriptHash()))
	require.Equal(t, int64(0), intReader(t, s.curation, "totalStaked").Int64())

	// A fresh first stake is held to the minimum again.
	s.approve(t, acc, s.curationHash, toFlow(15_000))
	cAcc.InvokeFail(t, curationconst.ErrBelowMinimum, "stake", acc.ScriptHash(), toFlow(1))
}

func newActiveCurator(t *testing.T, s *suite) (neotest.Signer, *neotest.ContractInvoker) {
	acc := s.curation.NewAccount(t)
	s.fund(t, acc, s.curationHash, toFlow(10_000))
	cAcc := s.curation.WithSigners(acc)
	cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), toFlow(10_000))
	return acc, cAcc
}

func TestReportCurator(t *testing.T) {
	s := newSuite(t)

	curator, cCurator := newActiveCurator(t, s)
	reporter := s.curation.NewAccount(t)
	cReporter := s.curation.WithSigners(reporter)

	cReporter.InvokeFail(t, curationconst.ErrSelfReport, "reportCurator",
		reporter.ScriptHash(), reporter.ScriptHash(), "self")

	inactive := s.curation.NewAccount(t)
	cReporter.InvokeFail(t, curationconst.ErrNotAnActiveCurator, "reportCurator",
		reporter.ScriptHash(), inactive.ScriptHash(), "not staked")

	// Bond is minStake/4, the reporter cannot cover it yet.
	cReporter.InvokeFail(t, curationconst.ErrReporterBalance, "reportCurator",
		reporter.ScriptHash(), curator.ScriptHash(), "mislabeled wallet")

	s.fund(t, reporter, s.curationHash, toFlow(2_500))
	h := cReporter.Invoke(t, stackitem.Make(0), "reportCurator",
		reporter.ScriptHash(), curator.ScriptHash(), "mislabeled wallet")
	aer := cReporter.CheckHalt(t, h)
	ev := findEvent(t, aer, "CuratorReported")
	require.Equal(t, int64(0), bigIntItem(t, ev[0]).Int64())
	require.Equal(t, curator.ScriptHash().BytesBE(), mustBytes(t, ev[1]))
	require.Equal(t, reporter.ScriptHash().BytesBE(), mustBytes(t, ev[2]))
	require.Equal(t, toFlow(2_500), bigIntItem(t, ev[3]))

	require.Equal(t, int64(0), s.balanceOf(t, reporter.ScriptHash()).Int64())
	require.Equal(t, int64(1), intReader(t, s.curation, "reportCount").Int64())
	require.Equal(t, int64(1), intReader(t, s.curation, "activeReportOf", curator.ScriptHash()).Int64())

	// One active report per curator.
	other := s.curation.NewAccount(t)
	s.fund(t, other, s.curationHash, toFlow(2_500))
	s.curation.WithSigners(other).InvokeFail(t, curationconst.ErrAlreadyReported, "reportCurator",
		other.ScriptHash(), curator.ScriptHash(), "dup")

	// The reported curator is locked out of collateral moves.
	s.fund(t, curator, s.curationHash, toFlow(1))
	cCurator.InvokeFail(t, curationconst.ErrAlreadyReported, "stake", curator.ScriptHash(), toFlow(1))
	cCurator.InvokeFail(t, curationconst.ErrAlreadyReported, "unstake", curator.ScriptHash(), toFlow(10_000))
}

func TestReportBondFloor(t *testing.T) {
	s := newSuite(t)

	// An operator-configured minStake smaller than 4 units must never
	// yield a zero-cost report.
	s.execCuration(t, "setMinStake", big.NewInt(3))

	curator := s.curation.NewAccount(t)
	s.mint(t, curator.ScriptHash(), big.NewInt(3))
	s.approve(t, curator, s.curationHash, big.NewInt(3))
	s.curation.WithSigners(curator).Invoke(t, stackitem.Null{}, "stake", curator.ScriptHash(), big.NewInt(3))

	reporter := s.curation.NewAccount(t)
	s.mint(t, reporter.ScriptHash(), big.NewInt(1))
	s.approve(t, reporter, s.curationHash, big.NewInt(1))

	h := s.curation.WithSigners(reporter).Invoke(t, stackitem.Make(0), "reportCurator",
		reporter.ScriptHash(), curator.ScriptHash(), "cheap minimum")
	aer := s.curation.CheckHalt(t, h)
	ev := findEvent(t, aer, "CuratorReported")
	require.Equal(t, int64(1), bigIntItem(t, ev[3]).Int64())
	require.Equal(t, int64(0), s.balanceOf(t, reporter.ScriptHash()).Int64())
}

func reportOn(t *testing.T, s *suite, reporter neotest.Signer, curator neotest.Signer) int64 {
	s.fund(t, reporter, s.curationHash, toFlow(2_500))
	id := intReader(t, s.curation, "reportCount").Int64()
	s.curation.WithSigners(reporter).Invoke(t, stackitem.Make(id), "reportCurator",
		reporter.ScriptHash(), curator.ScriptHash(), "suspicious tags")
	return id
}

func TestResolveReportPenalize(t *testing.T) {
	s := newSuite(t)

	curator, _ := newActiveCurator(t, s)
	reporter := s.curation.NewAccount(t)
	id := reportOn(t, s, reporter, curator)

	// Not reachable around the relay.
	s.curation.InvokeFail(t, common.ErrUnauthorized, "resolveReport", id, curationconst.DecisionPenalize)

	// 500 bps of 10000 FLOW.
	h := s.execCuration(t, "resolveReport", id, curationconst.DecisionPenalize)
	aer := s.relay.CheckHalt(t, h)
	ev := findEvent(t, aer, "ReportResolved")
	require.Equal(t, id, bigIntItem(t, ev[0]).Int64())
	require.Equal(t, int64(curationconst.DecisionPenalize), bigIntItem(t, ev[1]).Int64())
	require.Equal(t, toFlow(500), bigIntItem(t, ev[2]))

	// 9500 FLOW is below the minimum, so the slash also deactivates.
	c := s.curatorOf(t, curator.ScriptHash())
	require.Equal(t, toFlow(9_500), c.staked)
	require.False(t, c.active)
	require.Equal(t, int64(1), c.slashes)

	// Bond refunded in full.
	require.Equal(t, toFlow(2_500), s.balanceOf(t, reporter.ScriptHash()))

	require.Equal(t, toFlow(500), intReader(t, s.curation, "totalSlashed"))
	require.Equal(t, toFlow(9_500), intReader(t, s.curation, "totalStaked"))
	require.Equal(t, int64(0), intReader(t, s.curation, "activeReportOf", curator.ScriptHash()).Int64())

	// Exactly once.
	s.relay.InvokeFail(t, relayconst.ErrExecutionFailed, "executeCuration",
		"resolveReport", []any{id, curationconst.DecisionPenalize})
}

func TestResolveReportPenalizeBelowMinimum(t *testing.T) {
	s := newSuite(t)

	curator, _ := newActiveCurator(t, s)
	reporter := s.curation.NewAccount(t)

	s.execCuration(t, "setSlashPercentage", 6000)
	id := reportOn(t, s, reporter, curator)
	s.execCuration(t, "resolveReport", id, curationconst.DecisionPenalize)

	c := s.curatorOf(t, curator.ScriptHash())
	require.Equal(t, toFlow(4_000), c.staked)
	require.False(t, c.active)
	require.Equal(t, int64(1), c.slashes)
	require.Equal(t, toFlow(6_000), intReader(t, s.curation, "totalSlashed"))
}

func TestResolveReportClear(t *testing.T) {
	s := newSuite(t)

	curator, _ := newActiveCurator(t, s)
	reporter := s.curation.NewAccount(t)
	id := reportOn(t, s, reporter, curator)

	custodyBefore := s.balanceOf(t, s.curationHash)

	h := s.execCuration(t, "resolveReport", id, curationconst.DecisionClear)
	aer := s.relay.CheckHalt(t, h)
	ev := findEvent(t, aer, "ReportResolved")
	require.Equal(t, int64(curationconst.DecisionClear), bigIntItem(t, ev[1]).Int64())
	require.Equal(t, int64(0), bigIntItem(t, ev[2]).Int64())

	// Stake untouched, bond forfeited to custody.
	c := s.curatorOf(t, curator.ScriptHash())
	require.Equal(t, toFlow(10_000), c.staked)
	require.True(t, c.active)
	require.Equal(t, int64(0), c.slashes)
	require.Equal(t, int64(0), s.balanceOf(t, reporter.ScriptHash()).Int64())
	require.Equal(t, custodyBefore, s.balanceOf(t, s.curationHash))

	// Lock cleared, the curator can move collateral again.
	require.Equal(t, int64(0), intReader(t, s.curation, "activeReportOf", curator.ScriptHash()).Int64())
	s.fund(t, curator, s.curationHash, toFlow(1))
	s.curation.WithSigners(curator).Invoke(t, stackitem.Null{}, "stake", curator.ScriptHash(), toFlow(1))
}

func TestResolveReportBadInput(t *testing.T) {
	s := newSuite(t)

	curator, _ := newActiveCurator(t, s)
	reporter := s.curation.NewAccount(t)
	id := reportOn(t, s, reporter, curator)

	s.relay.InvokeFail(t, curationconst.ErrInvalidDecision, "executeCuration",
		"resolveReport", []any{id, 3})
	s.relay.InvokeFail(t, curationconst.ErrReportNotFound, "executeCuration",
		"resolveReport", []any{id + 42, curationconst.DecisionPenalize})
}
