package paychan

import "github.com/diap-network/diap/errors"

// paychan reserves 1020-1029
var (
	// ErrNotParticipant is returned when a channel operation is signed
	// by an address that is neither of the two participants.
	ErrNotParticipant = errors.Register(1020, "not a channel participant")

	// ErrStaleVersion is returned when a submitted state does not carry
	// a version greater than the latest accepted one.
	ErrStaleVersion = errors.Register(1021, "state version not greater than current")

	// ErrSplitExceedsDeposit is returned when the proposed balances sum
	// up to more than the deposited total.
	ErrSplitExceedsDeposit = errors.Register(1022, "balance split exceeds deposit")

	// ErrNoDispute is returned when challenging or finalizing a channel
	// that is not in the closing phase.
	ErrNoDispute = errors.Register(1023, "no closing procedure in progress")

	// ErrDisputeExpired is returned when a challenge arrives after the
	// dispute deadline.
	ErrDisputeExpired = errors.Register(1024, "dispute window expired")

	// ErrDisputeRunning is returned when finalizing before the dispute
	// deadline.
	ErrDisputeRunning = errors.Register(1025, "dispute window still running")

	// ErrInsufficientEscrow is returned when the vault cannot cover both
	// balances plus the settlement fee.
	ErrInsufficientEscrow = errors.Register(1026, "escrow cannot cover balances and fee")

	// ErrChannelClosed is returned when operating on an already closed
	// channel.
	ErrChannelClosed = errors.Register(1027, "channel already closed")
)
