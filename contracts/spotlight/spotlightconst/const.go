// Package spotlightconst contains public constants of the spotlight contract
// shared between the contract itself, its RPC binding and clients.
package spotlightconst

const (
	// ErrInvalidAmount is returned on a zero or negative amount argument.
	ErrInvalidAmount = "invalid amount"
	// ErrInvalidEntity is returned when the tracked entity is the null
	// identity.
	ErrInvalidEntity = "invalid entity"
	// ErrBelowMinimum is returned when a bid is below the minimum bid.
	ErrBelowMinimum = "bid below minimum"
	// ErrBidNotHigher is returned when a bid does not strictly exceed the
	// current one.
	ErrBidNotHigher = "bid not higher"
	// ErrNotYourBid is returned when the caller does not hold the current
	// bid on the entity.
	ErrNotYourBid = "not your bid"
	// ErrNoActiveBid is returned when there is no active bid on the
	// entity.
	ErrNoActiveBid = "no active bid"
	// ErrInsufficientBalance is returned when the bid pull fails on the
	// token ledger.
	ErrInsufficientBalance = "insufficient balance"
	// ErrContractBalance is returned when a fee burn exceeds contract
	// custody.
	ErrContractBalance = "insufficient contract balance"
)
