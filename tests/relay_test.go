package tests

import (
	"testing"

	"github.com/flowsight/flowsight-contract/contracts/relay/relayconst"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestRelayAuthorization(t *testing.T) {
	s := newSuite(t)

	acc := s.relay.NewAccount(t)
	cStranger := s.relay.WithSigners(acc)

	cStranger.InvokeFail(t, relayconst.ErrUnauthorized, "executeCuration",
		"pause", []any{})
	cStranger.InvokeFail(t, relayconst.ErrUnauthorized, "executeSpotlight",
		"pause", []any{})
	cStranger.InvokeFail(t, relayconst.ErrUnauthorized, "setAdministrator",
		acc.ScriptHash())

	// Witness checks need the transaction context, so verify goes through
	// real transactions.
	cStranger.Invoke(t, stackitem.NewBool(false), "verify")
	s.relay.Invoke(t, stackitem.NewBool(true), "verify")
}

func TestRelayFaultWrapping(t *testing.T) {
	s := newSuite(t)

	// An inner fault keeps its cause but gains the uniform relay prefix.
	s.relay.InvokeFail(t, relayconst.ErrExecutionFailed, "executeCuration",
		"setMinStake", []any{0})
	s.relay.InvokeFail(t, "invalid amount", "executeCuration",
		"setMinStake", []any{0})

	// A selector outside the privileged set is rejected before dispatch,
	// under the same uniform prefix. Existing but unprivileged methods are
	// rejected the same way.
	s.relay.InvokeFail(t, relayconst.ErrExecutionFailed, "executeSpotlight",
		"noSuchMethod", []any{})
	s.relay.InvokeFail(t, relayconst.ErrUnknownMethod, "executeSpotlight",
		"noSuchMethod", []any{})
	s.relay.InvokeFail(t, relayconst.ErrUnknownMethod, "executeCuration",
		"stake", []any{})
}

func TestSetAdministrator(t *testing.T) {
	s := newSuite(t)

	acc := s.relay.NewAccount(t)
	cNext := s.relay.WithSigners(acc)

	h := s.relay.Invoke(t, stackitem.Null{}, "setAdministrator", acc.ScriptHash())
	aer := s.relay.CheckHalt(t, h)
	ev := findEvent(t, aer, "AdministratorChanged")
	require.Equal(t, acc.ScriptHash().BytesBE(), mustBytes(t, ev[0]))

	admin := testInvoke(t, s.relay, "administrator")
	require.Equal(t, acc.ScriptHash().BytesBE(), mustBytes(t, admin))

	// The old administrator lost the authority in full.
	s.relay.InvokeFail(t, relayconst.ErrUnauthorized, "executeCuration",
		"pause", []any{})
	s.relay.Invoke(t, stackitem.NewBool(false), "verify")

	cNext.Invoke(t, stackitem.Null{}, "executeCuration", "pause", []any{})
	require.True(t, boolReader(t, s.curation, "isPaused"))
	cNext.Invoke(t, stackitem.NewBool(true), "verify")

	// And the handover itself can be reversed by the new administrator.
	cNext.Invoke(t, stackitem.Null{}, "setAdministrator", s.e.CommitteeHash)
	s.relay.Invoke(t, stackitem.NewBool(true), "verify")
}
