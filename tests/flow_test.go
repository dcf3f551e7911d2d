package tests

import (
	"math/big"
	"testing"

	"github.com/flowsight/flowsight-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestFlowTokenInfo(t *testing.T) {
	s := newSuite(t)

	sym, err := testInvoke(t, s.flow, "symbol").TryBytes()
	require.NoError(t, err)
	require.Equal(t, "FLOW", string(sym))
	require.Equal(t, int64(18), intReader(t, s.flow, "decimals").Int64())
	require.Equal(t, int64(0), intReader(t, s.flow, "totalSupply").Int64())
}

func TestFlowMint(t *testing.T) {
	s := newSuite(t)

	acc := s.flow.NewAccount(t)
	cAcc := s.flow.WithSigners(acc)

	cAcc.InvokeFail(t, "only committee can mint", "mint", acc.ScriptHash(), toFlow(100))
	s.flow.InvokeFail(t, "invalid amount", "mint", acc.ScriptHash(), big.NewInt(-1))
	s.flow.InvokeFail(t, "invalid account", "mint", []byte{1, 2, 3}, toFlow(100))

	h := s.flow.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), toFlow(100))
	aer := s.flow.CheckHalt(t, h)
	ev := findEvent(t, aer, "Mint")
	require.Equal(t, acc.ScriptHash().BytesBE(), mustBytes(t, ev[0]))
	require.Equal(t, toFlow(100), bigIntItem(t, ev[1]))

	require.Equal(t, toFlow(100), s.balanceOf(t, acc.ScriptHash()))
	require.Equal(t, toFlow(100), intReader(t, s.flow, "totalSupply"))
}

func TestFlowTransfer(t *testing.T) {
	s := newSuite(t)

	accA := s.flow.NewAccount(t)
	accB := s.flow.NewAccount(t)
	cA := s.flow.WithSigners(accA)
	cB := s.flow.WithSigners(accB)

	s.mint(t, accA.ScriptHash(), toFlow(100))

	// Only the owner witness moves funds.
	cB.InvokeFail(t, common.ErrWitnessFailed, "transfer",
		accA.ScriptHash(), accB.ScriptHash(), toFlow(10), nil)

	h := cA.Invoke(t, stackitem.NewBool(true), "transfer",
		accA.ScriptHash(), accB.ScriptHash(), toFlow(10), nil)
	aer := cA.CheckHalt(t, h)
	ev := findEvent(t, aer, "Transfer")
	require.Equal(t, accA.ScriptHash().BytesBE(), mustBytes(t, ev[0]))
	require.Equal(t, accB.ScriptHash().BytesBE(), mustBytes(t, ev[1]))
	require.Equal(t, toFlow(10), bigIntItem(t, ev[2]))

	require.Equal(t, toFlow(90), s.balanceOf(t, accA.ScriptHash()))
	require.Equal(t, toFlow(10), s.balanceOf(t, accB.ScriptHash()))

	// An overdraft returns false and moves nothing.
	cA.Invoke(t, stackitem.NewBool(false), "transfer",
		accA.ScriptHash(), accB.ScriptHash(), toFlow(1_000), nil)
	require.Equal(t, toFlow(90), s.balanceOf(t, accA.ScriptHash()))
}

func TestFlowApprove(t *testing.T) {
	s := newSuite(t)

	acc := s.flow.NewAccount(t)
	cAcc := s.flow.WithSigners(acc)
	spender := randomHash160()

	s.flow.InvokeFail(t, common.ErrWitnessFailed, "approve",
		acc.ScriptHash(), spender, toFlow(50))

	h := cAcc.Invoke(t, stackitem.Null{}, "approve", acc.ScriptHash(), spender, toFlow(50))
	aer := cAcc.CheckHalt(t, h)
	ev := findEvent(t, aer, "Approval")
	require.Equal(t, acc.ScriptHash().BytesBE(), mustBytes(t, ev[0]))
	require.Equal(t, spender.BytesBE(), mustBytes(t, ev[1]))
	require.Equal(t, toFlow(50), bigIntItem(t, ev[2]))

	require.Equal(t, toFlow(50), intReader(t, s.flow, "allowance", acc.ScriptHash(), spender))

	// A repeated approval overwrites, it does not accumulate.
	cAcc.Invoke(t, stackitem.Null{}, "approve", acc.ScriptHash(), spender, toFlow(20))
	require.Equal(t, toFlow(20), intReader(t, s.flow, "allowance", acc.ScriptHash(), spender))

	// Zero clears the allowance record.
	cAcc.Invoke(t, stackitem.Null{}, "approve", acc.ScriptHash(), spender, big.NewInt(0))
	require.Equal(t, int64(0), intReader(t, s.flow, "allowance", acc.ScriptHash(), spender).Int64())
}

// Allowance consumption is covered through the registries, which are the only
// spender contracts in the system.
func TestFlowTransferFromAllowance(t *testing.T) {
	s := newSuite(t)

	acc := s.curation.NewAccount(t)
	cAcc := s.curation.WithSigners(acc)

	s.mint(t, acc.ScriptHash(), toFlow(100_000))
	s.approve(t, acc, s.curationHash, toFlow(10_000))

	cAcc.Invoke(t, stackitem.Null{}, "stake", acc.ScriptHash(), toFlow(10_000))

	// The allowance is spent down to zero and its record deleted.
	require.Equal(t, int64(0),
		intReader(t, s.flow, "allowance", acc.ScriptHash(), s.curationHash).Int64())
	require.Equal(t, toFlow(10_000), s.balanceOf(t, s.curationHash))
}

func TestFlowBurn(t *testing.T) {
	s := newSuite(t)

	acc := s.flow.NewAccount(t)
	cAcc := s.flow.WithSigners(acc)

	s.mint(t, acc.ScriptHash(), toFlow(100))

	s.flow.InvokeFail(t, common.ErrWitnessFailed, "burn", acc.ScriptHash(), toFlow(10))
	cAcc.InvokeFail(t, "insufficient balance", "burn", acc.ScriptHash(), toFlow(1_000))

	h := cAcc.Invoke(t, stackitem.Null{}, "burn", acc.ScriptHash(), toFlow(10))
	aer := cAcc.CheckHalt(t, h)
	ev := findEvent(t, aer, "Burn")
	require.Equal(t, acc.ScriptHash().BytesBE(), mustBytes(t, ev[0]))
	require.Equal(t, toFlow(10), bigIntItem(t, ev[1]))

	require.Equal(t, toFlow(90), s.balanceOf(t, acc.ScriptHash()))
	require.Equal(t, toFlow(90), intReader(t, s.flow, "totalSupply"))
}
