/*
Package spotlight implements the whale-spotlight bidding contract of
FlowSight.

Accounts bid FLOW to put a tracked whale wallet into priority
visibility. Each wallet carries at most one active bid; a strictly
higher bid replaces it and refunds the outbid party within the same
invocation, a withdrawal refunds and clears it. Wallets that ever
received a bid stay in the tracked set as a historical record. Fees
accumulated in contract custody can be destroyed through the relay
with burnBiddingFees.

Ownership and pausing follow the curation registry: the relay contract
hash is fixed at deployment as the owner of the privileged methods
(pause, unpause, burnBiddingFees), and bid placement is rejected while
the registry is paused. Withdrawals stay available during a pause.

# Contract notifications

BidPlaced notification.

	BidPlaced:
	  - name: entity
	    type: Hash160
	  - name: bidder
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: previousBidder
	    type: Hash160
	  - name: refund
	    type: Integer

BidWithdrawn notification.

	BidWithdrawn:
	  - name: entity
	    type: Hash160
	  - name: bidder
	    type: Hash160
	  - name: amount
	    type: Integer

FeesBurned notification.

	FeesBurned:
	  - name: amount
	    type: Integer
	  - name: totalBurned
	    type: Integer
*/
package spotlight
