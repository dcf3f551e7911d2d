package tests

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// flowUnit is 10^18, the smallest-unit scale of one FLOW.
var flowUnit = big.NewInt(1_000_000_000_000_000_000)

// toFlow converts whole FLOW to the smallest token units.
func toFlow(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), flowUnit)
}

func randomHash160() util.Uint160 {
	var h util.Uint160
	rand.Read(h[:]) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return h
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}
