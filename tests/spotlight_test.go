package tests

import (
	"math/big"
	"testing"

	"github.com/flowsight/flowsight-contract/common"
	"github.com/flowsight/flowsight-contract/contracts/spotlight/spotlightconst"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func newBidder(t *testing.T, s *suite, funds int64) (neotest.Signer, *neotest.ContractInvoker) {
	acc := s.spotlight.NewAccount(t)
	s.fund(t, acc, s.spotlightHash, toFlow(funds))
	return acc, s.spotlight.WithSigners(acc)
}

func TestPlaceBid(t *testing.T) {
	s := newSuite(t)

	whale := randomHash160()
	accA, cA := newBidder(t, s, 1_000)
	accB, cB := newBidder(t, s, 1_000)

	// An entity nobody ever bid on yields a decodable inactive record.
	b := s.bidOn(t, whale)
	require.False(t, b.active)
	require.Equal(t, util.Uint160{}.BytesBE(), b.bidder)

	cA.InvokeFail(t, spotlightconst.ErrInvalidEntity, "placeBid",
		accA.ScriptHash(), util.Uint160{}, toFlow(200))
	cA.InvokeFail(t, spotlightconst.ErrBelowMinimum, "placeBid",
		accA.ScriptHash(), whale, big.NewInt(1))

	h := cA.Invoke(t, stackitem.Null{}, "placeBid", accA.ScriptHash(), whale, toFlow(200))
	aer := cA.CheckHalt(t, h)
	ev := findEvent(t, aer, "BidPlaced")
	require.Equal(t, accA.ScriptHash().BytesBE(), mustBytes(t, ev[1]))
	require.Equal(t, toFlow(200), bigIntItem(t, ev[2]))
	require.Equal(t, int64(0), bigIntItem(t, ev[4]).Int64())

	b = s.bidOn(t, whale)
	require.True(t, b.active)
	require.Equal(t, accA.ScriptHash().BytesBE(), b.bidder)
	require.Equal(t, toFlow(200), b.amount)
	require.Positive(t, b.timestamp.Sign())

	// An equal bid is rejected, only strictly higher ones replace.
	cB.InvokeFail(t, spotlightconst.ErrBidNotHigher, "placeBid",
		accB.ScriptHash(), whale, toFlow(200))

	h = cB.Invoke(t, stackitem.Null{}, "placeBid", accB.ScriptHash(), whale, toFlow(300))
	aer = cB.CheckHalt(t, h)
	ev = findEvent(t, aer, "BidPlaced")
	require.Equal(t, accA.ScriptHash().BytesBE(), mustBytes(t, ev[3]))
	require.Equal(t, toFlow(200), bigIntItem(t, ev[4]))

	// The outbid party got the exact prior amount back in the same tx.
	require.Equal(t, toFlow(1_000), s.balanceOf(t, accA.ScriptHash()))
	require.Equal(t, toFlow(700), s.balanceOf(t, accB.ScriptHash()))

	b = s.bidOn(t, whale)
	require.Equal(t, accB.ScriptHash().BytesBE(), b.bidder)
	require.Equal(t, toFlow(300), b.amount)

	require.Equal(t, int64(0), intReader(t, s.spotlight, "totalBidOf", accA.ScriptHash()).Int64())
	require.Equal(t, toFlow(300), intReader(t, s.spotlight, "totalBidOf", accB.ScriptHash()))
}

func TestWithdrawBid(t *testing.T) {
	s := newSuite(t)

	whale := randomHash160()
	accA, cA := newBidder(t, s, 1_000)
	accB, cB := newBidder(t, s, 1_000)

	cA.Invoke(t, stackitem.Null{}, "placeBid", accA.ScriptHash(), whale, toFlow(200))
	cB.InvokeFail(t, spotlightconst.ErrNotYourBid, "withdrawBid", accB.ScriptHash(), whale)

	h := cA.Invoke(t, stackitem.Null{}, "withdrawBid", accA.ScriptHash(), whale)
	aer := cA.CheckHalt(t, h)
	ev := findEvent(t, aer, "BidWithdrawn")
	require.Equal(t, toFlow(200), bigIntItem(t, ev[2]))

	require.Equal(t, toFlow(1_000), s.balanceOf(t, accA.ScriptHash()))
	require.Equal(t, int64(0), intReader(t, s.spotlight, "totalBidOf", accA.ScriptHash()).Int64())

	// The reset record still decodes as a Bid, with a zero bidder.
	b := s.bidOn(t, whale)
	require.False(t, b.active)
	require.Equal(t, int64(0), b.amount.Int64())
	require.Equal(t, util.Uint160{}.BytesBE(), b.bidder)

	// The record is reset, so a second withdrawal has nothing to own.
	cA.InvokeFail(t, spotlightconst.ErrNotYourBid, "withdrawBid", accA.ScriptHash(), whale)

	// Re-bidding after a withdrawal is permitted, at the minimum again.
	cB.Invoke(t, stackitem.Null{}, "placeBid", accB.ScriptHash(), whale, toFlow(1))
	b = s.bidOn(t, whale)
	require.True(t, b.active)
	require.Equal(t, toFlow(1), b.amount)
}

func TestTrackedEntities(t *testing.T) {
	s := newSuite(t)

	whaleX := randomHash160()
	whaleY := randomHash160()
	accA, cA := newBidder(t, s, 1_000)

	cA.Invoke(t, stackitem.Null{}, "placeBid", accA.ScriptHash(), whaleX, toFlow(10))
	cA.Invoke(t, stackitem.Null{}, "placeBid", accA.ScriptHash(), whaleY, toFlow(10))
	// A second bid on a tracked entity does not duplicate it.
	cA.Invoke(t, stackitem.Null{}, "placeBid", accA.ScriptHash(), whaleX, toFlow(20))
	require.Equal(t, toFlow(30), intReader(t, s.spotlight, "totalBidOf", accA.ScriptHash()))

	require.ElementsMatch(t, [][]byte{whaleX.BytesBE(), whaleY.BytesBE()}, trackedEntities(t, s))

	// Withdrawal keeps the entity tracked as a historical record.
	cA.Invoke(t, stackitem.Null{}, "withdrawBid", accA.ScriptHash(), whaleY)
	require.ElementsMatch(t, [][]byte{whaleX.BytesBE(), whaleY.BytesBE()}, trackedEntities(t, s))
}

func TestSpotlightPause(t *testing.T) {
	s := newSuite(t)

	whale := randomHash160()
	accA, cA := newBidder(t, s, 1_000)
	cA.Invoke(t, stackitem.Null{}, "placeBid", accA.ScriptHash(), whale, toFlow(200))

	s.spotlight.InvokeFail(t, common.ErrUnauthorized, "pause")
	s.execSpotlight(t, "pause")
	require.True(t, boolReader(t, s.spotlight, "isPaused"))

	cA.InvokeFail(t, common.ErrPaused, "placeBid", accA.ScriptHash(), whale, toFlow(300))

	// Bidders can still exit while the registry is halted.
	cA.Invoke(t, stackitem.Null{}, "withdrawBid", accA.ScriptHash(), whale)
	require.Equal(t, toFlow(1_000), s.balanceOf(t, accA.ScriptHash()))

	s.execSpotlight(t, "unpause")
	cA.Invoke(t, stackitem.Null{}, "placeBid", accA.ScriptHash(), whale, toFlow(300))
}

func TestBurnBiddingFees(t *testing.T) {
	s := newSuite(t)

	whale := randomHash160()
	accA, cA := newBidder(t, s, 1_000)
	cA.Invoke(t, stackitem.Null{}, "placeBid", accA.ScriptHash(), whale, toFlow(200))

	s.spotlight.InvokeFail(t, common.ErrUnauthorized, "burnBiddingFees", toFlow(50))
	s.relay.InvokeFail(t, spotlightconst.ErrInvalidAmount, "executeSpotlight",
		"burnBiddingFees", []any{0})
	s.relay.InvokeFail(t, spotlightconst.ErrContractBalance, "executeSpotlight",
		"burnBiddingFees", []any{toFlow(500)})

	supplyBefore := intReader(t, s.flow, "totalSupply")

	h := s.execSpotlight(t, "burnBiddingFees", toFlow(50))
	aer := s.relay.CheckHalt(t, h)
	ev := findEvent(t, aer, "FeesBurned")
	require.Equal(t, toFlow(50), bigIntItem(t, ev[0]))
	require.Equal(t, toFlow(50), bigIntItem(t, ev[1]))

	require.Equal(t, toFlow(50), intReader(t, s.spotlight, "totalBurned"))
	require.Equal(t, toFlow(150), s.balanceOf(t, s.spotlightHash))
	require.Equal(t, new(big.Int).Sub(supplyBefore, toFlow(50)), intReader(t, s.flow, "totalSupply"))
}
