/*
Package flow implements the FLOW token ledger contract.

FLOW is the collateral token of the FlowSight curation economy. The
contract is NEP-17 compatible and additionally carries an allowance
surface (approve, allowance, transferFrom) so that the curation and
spotlight registries can pull collateral from accounts that granted
them an allowance, and a burn method used by the spotlight registry to
destroy collected bidding fees.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer

Mint notification.

	Mint:
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification.

	Burn:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package flow
