/*
Package curation implements the curation registry contract of FlowSight.

Accounts lock FLOW collateral to become curators and earn the right to
tag whale wallets. Any other account can challenge a curator by locking
a report bond; the administrative relay resolves the challenge by
either slashing the curator (and refunding the bond) or clearing the
curator (and forfeiting the bond). While a report is unresolved the
curator can neither stake nor unstake. The contract also holds a
reward pool funded and distributed through the relay.

All privileged methods (resolveReport, setMinStake, setSlashPercentage,
pause, unpause, fundRewardPool, distributeRewards) are callable only by
the relay contract whose hash is fixed at deployment as the registry
owner. Collateral moves through the FLOW token contract: stakes and
bonds are pulled with transferFrom against an allowance granted by the
account, refunds and rewards are paid out of contract custody.

# Contract notifications

CuratorStaked notification.

	CuratorStaked:
	  - name: curator
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: totalStake
	    type: Integer

CuratorUnstaked notification.

	CuratorUnstaked:
	  - name: curator
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: remainingStake
	    type: Integer

CuratorReported notification.

	CuratorReported:
	  - name: reportId
	    type: Integer
	  - name: curator
	    type: Hash160
	  - name: reporter
	    type: Hash160
	  - name: bond
	    type: Integer

ReportResolved notification.

	ReportResolved:
	  - name: reportId
	    type: Integer
	  - name: decision
	    type: Integer
	  - name: slashAmount
	    type: Integer

RewardPoolFunded notification.

	RewardPoolFunded:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: pool
	    type: Integer

RewardsDistributed notification.

	RewardsDistributed:
	  - name: curator
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package curation
