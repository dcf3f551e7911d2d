package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const (
	flowPath      = "../contracts/flow"
	curationPath  = "../contracts/curation"
	spotlightPath = "../contracts/spotlight"
	relayPath     = "../contracts/relay"
)

// suite holds the fully wired FlowSight contract set deployed on a fresh
// chain. The committee account doubles as the relay administrator.
type suite struct {
	e *neotest.Executor

	flowHash      util.Uint160
	curationHash  util.Uint160
	spotlightHash util.Uint160
	relayHash     util.Uint160

	flow      *neotest.ContractInvoker
	curation  *neotest.ContractInvoker
	spotlight *neotest.ContractInvoker
	relay     *neotest.ContractInvoker
}

// newSuite compiles and deploys all four contracts. Registry owners are set
// to the relay hash, which is known before deployment from the compiled
// artifact.
func newSuite(t *testing.T) *suite {
	e := newExecutor(t)

	ctrFlow := neotest.CompileFile(t, e.CommitteeHash, flowPath, path.Join(flowPath, "config.yml"))
	ctrCuration := neotest.CompileFile(t, e.CommitteeHash, curationPath, path.Join(curationPath, "config.yml"))
	ctrSpotlight := neotest.CompileFile(t, e.CommitteeHash, spotlightPath, path.Join(spotlightPath, "config.yml"))
	ctrRelay := neotest.CompileFile(t, e.CommitteeHash, relayPath, path.Join(relayPath, "config.yml"))

	e.DeployContract(t, ctrFlow, nil)
	e.DeployContract(t, ctrCuration, []any{ctrRelay.Hash, ctrFlow.Hash})
	e.DeployContract(t, ctrSpotlight, []any{ctrRelay.Hash, ctrFlow.Hash})
	e.DeployContract(t, ctrRelay, []any{e.CommitteeHash, ctrCuration.Hash, ctrSpotlight.Hash})

	return &suite{
		e:             e,
		flowHash:      ctrFlow.Hash,
		curationHash:  ctrCuration.Hash,
		spotlightHash: ctrSpotlight.Hash,
		relayHash:     ctrRelay.Hash,
		flow:          e.CommitteeInvoker(ctrFlow.Hash),
		curation:      e.CommitteeInvoker(ctrCuration.Hash),
		spotlight:     e.CommitteeInvoker(ctrSpotlight.Hash),
		relay:         e.CommitteeInvoker(ctrRelay.Hash),
	}
}

// mint creates FLOW on the account. Committee-only on the token contract.
func (s *suite) mint(t *testing.T, to util.Uint160, amount *big.Int) {
	s.flow.Invoke(t, stackitem.Null{}, "mint", to, amount)
}

// approve grants the spender contract an allowance from the account.
func (s *suite) approve(t *testing.T, owner neotest.Signer, spender util.Uint160, amount *big.Int) {
	s.flow.WithSigners(owner).Invoke(t, stackitem.Null{}, "approve", owner.ScriptHash(), spender, amount)
}

// fund mints FLOW to the account and approves the spender contract for the
// whole amount in one go.
func (s *suite) fund(t *testing.T, acc neotest.Signer, spender util.Uint160, amount *big.Int) {
	s.mint(t, acc.ScriptHash(), amount)
	s.approve(t, acc, spender, amount)
}

func (s *suite) balanceOf(t *testing.T, acc util.Uint160) *big.Int {
	res, err := s.flow.TestInvoke(t, "balanceOf", acc)
	if err != nil {
		t.Fatal(err)
	}
	return res.Pop().BigInt()
}

// execCuration dispatches a privileged curation method through the relay
// with the administrator (committee) witness.
func (s *suite) execCuration(t *testing.T, method string, args ...any) util.Uint256 {
	return s.relay.Invoke(t, stackitem.Null{}, "executeCuration", method, args)
}

// execSpotlight dispatches a privileged spotlight method through the relay
// with the administrator (committee) witness.
func (s *suite) execSpotlight(t *testing.T, method string, args ...any) util.Uint256 {
	return s.relay.Invoke(t, stackitem.Null{}, "executeSpotlight", method, args)
}
