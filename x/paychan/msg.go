package paychan

import (
	"github.com/diap-network/diap"
	"github.com/diap-network/diap/coin"
	"github.com/diap-network/diap/errors"
)

var _ diap.Msg = (*OpenChannelMsg)(nil)

func (m *OpenChannelMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateChannelID(m.ChannelID); err != nil {
		return err
	}
	if err := m.ParticipantA.Validate(); err != nil {
		return errors.Wrap(err, "participant a")
	}
	if err := m.ParticipantB.Validate(); err != nil {
		return errors.Wrap(err, "participant b")
	}
	if m.ParticipantA.Equals(m.ParticipantB) {
		return errors.Wrap(errors.ErrInput, "cannot open a channel with yourself")
	}
	if !coin.IsCC(m.Ticker) {
		return errors.Wrapf(errors.ErrAmount, "invalid ticker: %q", m.Ticker)
	}
	if m.Deposit == 0 {
		return errors.Wrap(errors.ErrAmount, "zero deposit")
	}
	return nil
}

func (OpenChannelMsg) Path() string {
	return "paychan/open"
}

var _ diap.Msg = (*InitiateCloseMsg)(nil)

func (m *InitiateCloseMsg) Validate() error {
	return validateCloseState(m.Metadata, m.ChannelID, m.Version)
}

func (InitiateCloseMsg) Path() string {
	return "paychan/initiate_close"
}

var _ diap.Msg = (*ChallengeCloseMsg)(nil)

func (m *ChallengeCloseMsg) Validate() error {
	return validateCloseState(m.Metadata, m.ChannelID, m.Version)
}

func (ChallengeCloseMsg) Path() string {
	return "paychan/challenge_close"
}

// validateCloseState covers the checks shared by initiate and
// challenge. Balances are not inspected here, they are compared against
// the channel deposit by the handler.
func validateCloseState(metadata *diap.Metadata, channelID string, version uint64) error {
	if err := metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateChannelID(channelID); err != nil {
		return err
	}
	// Channels start with version zero, so any state update needs at
	// least version one.
	if version == 0 {
		return errors.Wrap(errors.ErrMsg, "version must be greater than zero")
	}
	return nil
}

var _ diap.Msg = (*FinalizeCloseMsg)(nil)

func (m *FinalizeCloseMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return validateChannelID(m.ChannelID)
}

func (FinalizeCloseMsg) Path() string {
	return "paychan/finalize_close"
}

var _ diap.Msg = (*UpdateConfigurationMsg)(nil)

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return m.Patch.Validate()
}

func (UpdateConfigurationMsg) Path() string {
	return "paychan/update_configuration"
}
