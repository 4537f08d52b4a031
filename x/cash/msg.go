package cash

import (
	"github.com/diap-network/diap"
	"github.com/diap-network/diap/codec"
	"github.com/diap-network/diap/coin"
	"github.com/diap-network/diap/errors"
)

const (
	sendTxCost int64 = 100

	maxMemoSize = 128
)

// SendMsg requests a transfer of funds between two wallets.
type SendMsg struct {
	Metadata    *diap.Metadata `json:"metadata"`
	Source      diap.Address   `json:"source"`
	Destination diap.Address   `json:"destination"`
	Amount      *coin.Coin     `json:"amount"`
	// Memo is a free text comment with no intrinsic meaning.
	Memo string `json:"memo,omitempty"`
}

var _ diap.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

func (m *SendMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return codec.Unmarshal(raw, m)
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Amount == nil || !m.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %v", m.Amount)
	}
	if err := m.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(m.Memo) > maxMemoSize {
		return errors.Wrap(errors.ErrInput, "memo too long")
	}
	return nil
}
