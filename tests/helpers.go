package tests

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// curatorState mirrors the curation contract Curator structure.
type curatorState struct {
	staked   *big.Int
	stakedAt *big.Int
	active   bool
	slashes  int64
	rewards  *big.Int
}

// bidState mirrors the spotlight contract Bid structure.
type bidState struct {
	bidder    []byte
	amount    *big.Int
	timestamp *big.Int
	active    bool
}

func testInvoke(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) stackitem.Item {
	res, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return res.Pop().Item()
}

func intReader(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) *big.Int {
	item := testInvoke(t, c, method, args...)
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v
}

func (s *suite) curatorOf(t *testing.T, acc any) curatorState {
	arr, ok := testInvoke(t, s.curation, "getCurator", acc).Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 5)

	active, err := arr[2].TryBool()
	require.NoError(t, err)

	return curatorState{
		staked:   bigIntItem(t, arr[0]),
		stakedAt: bigIntItem(t, arr[1]),
		active:   active,
		slashes:  bigIntItem(t, arr[3]).Int64(),
		rewards:  bigIntItem(t, arr[4]),
	}
}

func (s *suite) bidOn(t *testing.T, entity any) bidState {
	arr, ok := testInvoke(t, s.spotlight, "currentBid", entity).Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 4)

	bidder, err := arr[0].TryBytes()
	require.NoError(t, err)
	active, err := arr[3].TryBool()
	require.NoError(t, err)

	return bidState{
		bidder:    bidder,
		amount:    bigIntItem(t, arr[1]),
		timestamp: bigIntItem(t, arr[2]),
		active:    active,
	}
}

func boolReader(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) bool {
	v, err := testInvoke(t, c, method, args...).TryBool()
	require.NoError(t, err)
	return v
}

func mustBytes(t *testing.T, item stackitem.Item) []byte {
	b, err := item.TryBytes()
	require.NoError(t, err)
	return b
}

func bigIntItem(t *testing.T, item stackitem.Item) *big.Int {
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v
}

// trackedEntities drains the trackedEntities iterator into raw hash bytes.
func trackedEntities(t *testing.T, s *suite) [][]byte {
	res, err := s.spotlight.TestInvoke(t, "trackedEntities")
	require.NoError(t, err)

	iter, ok := res.Pop().Value().(*storage.Iterator)
	require.True(t, ok)

	var hashes [][]byte
	for _, item := range iteratorToArray(iter) {
		hashes = append(hashes, mustBytes(t, item))
	}
	return hashes
}

// findEvent returns the single notification with the given name emitted by
// the transaction. Token Transfer notifications emitted by nested FLOW
// calls are skipped this way.
func findEvent(t *testing.T, aer *state.AppExecResult, name string) []stackitem.Item {
	var found []stackitem.Item
	for _, ev := range aer.Events {
		if ev.Name == name {
			require.Nil(t, found, "duplicate %s event", name)
			items, ok := ev.Item.Value().([]stackitem.Item)
			require.True(t, ok)
			found = items
		}
	}
	require.NotNil(t, found, "missing %s event", name)
	return found
}
