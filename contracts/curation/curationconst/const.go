// Package curationconst contains public constants of the curation contract
// shared between the contract itself, its RPC binding and clients.
package curationconst

const (
	// DecisionPenalize slashes the reported curator and refunds the
	// reporter bond.
	DecisionPenalize = 1
	// DecisionClear leaves the curator stake untouched and forfeits the
	// reporter bond.
	DecisionClear = 2
)

const (
	// ErrInvalidAmount is returned on a zero or negative amount argument.
	ErrInvalidAmount = "invalid amount"
	// ErrInvalidDecision is returned on an unknown report resolution code.
	ErrInvalidDecision = "invalid decision"
	// ErrInvalidPercentage is returned when a slash percentage exceeds
	// 10000 basis points.
	ErrInvalidPercentage = "invalid percentage"
	// ErrNotACurator is returned when the account has no collateral at all.
	ErrNotACurator = "not a curator"
	// ErrNotAnActiveCurator is returned when the reported account is not
	// an active curator.
	ErrNotAnActiveCurator = "not an active curator"
	// ErrAlreadyReported is returned when an unresolved report exists
	// against the curator.
	ErrAlreadyReported = "curator already reported"
	// ErrAlreadyResolved is returned on a second resolution of a report.
	ErrAlreadyResolved = "report already resolved"
	// ErrSelfReport is returned when an account reports itself.
	ErrSelfReport = "cannot report yourself"
	// ErrBelowMinimum is returned when the first stake of an account is
	// below the minimum.
	ErrBelowMinimum = "amount below minimum stake"
	// ErrBelowMinimumLeft is returned when a partial unstake would leave
	// the collateral below the minimum.
	ErrBelowMinimumLeft = "would fall below minimum stake"
	// ErrInsufficientBalance is returned when the collateral pull fails
	// on the token ledger.
	ErrInsufficientBalance = "insufficient balance"
	// ErrReporterBalance is returned when the reporter cannot cover the
	// report bond.
	ErrReporterBalance = "insufficient balance for reporting"
	// ErrRewardPool is returned when a distribution exceeds the reward
	// pool.
	ErrRewardPool = "insufficient reward pool"
	// ErrReportNotFound is returned on lookup of a report id that was
	// never created.
	ErrReportNotFound = "report not found"
)
