package paychan

import (
	"fmt"

	"github.com/diap-network/diap"
	"github.com/diap-network/diap/codec"
)

// ChannelStatus is the lifecycle phase of a payment channel. A channel
// only ever moves forward: open, closing, closed.
type ChannelStatus uint8

const (
	ChannelStatusInvalid ChannelStatus = iota
	ChannelStatusOpen
	ChannelStatusClosing
	ChannelStatusClosed
)

func (s ChannelStatus) String() string {
	switch s {
	case ChannelStatusOpen:
		return "open"
	case ChannelStatusClosing:
		return "closing"
	case ChannelStatusClosed:
		return "closed"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(s))
	}
}

// PaymentChannel is the persisted state of a single channel.
type PaymentChannel struct {
	Metadata *diap.Metadata `json:"metadata"`
	// ChannelID is the client chosen identifier, unique within the
	// registry.
	ChannelID string `json:"channel_id"`
	// ParticipantA opened the channel and provided the deposit.
	ParticipantA diap.Address `json:"participant_a"`
	ParticipantB diap.Address `json:"participant_b"`
	// Ticker of the token the deposit is denominated in.
	Ticker string `json:"ticker"`
	// TotalDeposited is the amount locked in the vault account when the
	// channel was opened. It never changes.
	TotalDeposited uint64 `json:"total_deposited"`
	// BalanceA and BalanceB are the most recent accepted split.
	BalanceA uint64 `json:"balance_a"`
	BalanceB uint64 `json:"balance_b"`
	// Version of the accepted split. Every update must carry a strictly
	// greater version.
	Version uint64        `json:"version"`
	Status  ChannelStatus `json:"status"`
	// DisputeDeadline is set while the channel is closing. Challenges
	// are accepted before the deadline, finalization after.
	DisputeDeadline diap.UnixTime `json:"dispute_deadline,omitempty"`
	UpdatedAt       diap.UnixTime `json:"updated_at"`
}

func (pc *PaymentChannel) Marshal() ([]byte, error) {
	return codec.Marshal(pc)
}

func (pc *PaymentChannel) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, pc)
}

// Configuration holds the per token settlement parameters. It can be
// changed at runtime by the configuration owner.
type Configuration struct {
	Metadata *diap.Metadata `json:"metadata"`
	// Owner is authorized to update this configuration.
	Owner  diap.Address `json:"owner"`
	Ticker string       `json:"ticker"`
	// FeeRateBps is the settlement fee rate in basis points, withheld
	// from the vault when a channel is finalized.
	FeeRateBps uint32 `json:"fee_rate_bps"`
}

func (c *Configuration) Marshal() ([]byte, error) {
	return codec.Marshal(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, c)
}

// OpenChannelMsg creates a new channel funded by participant A.
type OpenChannelMsg struct {
	Metadata     *diap.Metadata `json:"metadata"`
	ChannelID    string         `json:"channel_id"`
	ParticipantA diap.Address   `json:"participant_a"`
	ParticipantB diap.Address   `json:"participant_b"`
	Ticker       string         `json:"ticker"`
	Deposit      uint64         `json:"deposit"`
}

func (m *OpenChannelMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *OpenChannelMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// InitiateCloseMsg starts the closing procedure with a proposed final
// balance split.
type InitiateCloseMsg struct {
	Metadata  *diap.Metadata `json:"metadata"`
	ChannelID string         `json:"channel_id"`
	BalanceA  uint64         `json:"balance_a"`
	BalanceB  uint64         `json:"balance_b"`
	Version   uint64         `json:"version"`
}

func (m *InitiateCloseMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *InitiateCloseMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// ChallengeCloseMsg overrides a pending closing state with a newer
// balance split. The dispute deadline is not moved.
type ChallengeCloseMsg struct {
	Metadata  *diap.Metadata `json:"metadata"`
	ChannelID string         `json:"channel_id"`
	BalanceA  uint64         `json:"balance_a"`
	BalanceB  uint64         `json:"balance_b"`
	Version   uint64         `json:"version"`
}

func (m *ChallengeCloseMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *ChallengeCloseMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// FinalizeCloseMsg settles a channel once its dispute window elapsed.
// Anyone can send it.
type FinalizeCloseMsg struct {
	Metadata  *diap.Metadata `json:"metadata"`
	ChannelID string         `json:"channel_id"`
}

func (m *FinalizeCloseMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *FinalizeCloseMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// UpdateConfigurationMsg replaces the settlement parameters for a
// single token.
type UpdateConfigurationMsg struct {
	Metadata *diap.Metadata `json:"metadata"`
	Patch    *Configuration `json:"patch"`
}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}
