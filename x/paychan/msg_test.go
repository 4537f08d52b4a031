package paychan

import (
	"testing"

	"github.com/diap-network/diap"
	"github.com/diap-network/diap/diaptest"
	"github.com/diap-network/diap/errors"
	"github.com/stretchr/testify/assert"
)

func TestMessagePaths(t *testing.T) {
	assert.Equal(t, "paychan/open", (&OpenChannelMsg{}).Path())
	assert.Equal(t, "paychan/initiate_close", (&InitiateCloseMsg{}).Path())
	assert.Equal(t, "paychan/challenge_close", (&ChallengeCloseMsg{}).Path())
	assert.Equal(t, "paychan/finalize_close", (&FinalizeCloseMsg{}).Path())
	assert.Equal(t, "paychan/update_configuration", (&UpdateConfigurationMsg{}).Path())
}

func TestOpenChannelMsgValidate(t *testing.T) {
	valid := func() *OpenChannelMsg {
		return &OpenChannelMsg{
			Metadata:     &diap.Metadata{Schema: 1},
			ChannelID:    "chan-1",
			ParticipantA: diaptest.NewCondition().Address(),
			ParticipantB: diaptest.NewCondition().Address(),
			Ticker:       "DIAP",
			Deposit:      1000,
		}
	}

	cases := map[string]struct {
		mutate  func(*OpenChannelMsg)
		wantErr *errors.Error
	}{
		"valid": {
			mutate: func(*OpenChannelMsg) {},
		},
		"missing metadata": {
			mutate:  func(m *OpenChannelMsg) { m.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"empty channel id": {
			mutate:  func(m *OpenChannelMsg) { m.ChannelID = "" },
			wantErr: errors.ErrEmpty,
		},
		"oversized channel id": {
			mutate: func(m *OpenChannelMsg) {
				id := make([]byte, maxChannelIDLen+1)
				for i := range id {
					id[i] = 'x'
				}
				m.ChannelID = string(id)
			},
			wantErr: errors.ErrInput,
		},
		"missing participant": {
			mutate:  func(m *OpenChannelMsg) { m.ParticipantB = nil },
			wantErr: errors.ErrEmpty,
		},
		"identical participants": {
			mutate:  func(m *OpenChannelMsg) { m.ParticipantB = m.ParticipantA },
			wantErr: errors.ErrInput,
		},
		"invalid ticker": {
			mutate:  func(m *OpenChannelMsg) { m.Ticker = "toolong" },
			wantErr: errors.ErrAmount,
		},
		"zero deposit": {
			mutate:  func(m *OpenChannelMsg) { m.Deposit = 0 },
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg := valid()
			tc.mutate(msg)
			err := msg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}

func TestCloseStateMsgValidate(t *testing.T) {
	initiate := &InitiateCloseMsg{
		Metadata:  &diap.Metadata{Schema: 1},
		ChannelID: "chan-1",
		BalanceA:  1,
		BalanceB:  2,
		Version:   1,
	}
	assert.NoError(t, initiate.Validate())

	challenge := &ChallengeCloseMsg{
		Metadata:  &diap.Metadata{Schema: 1},
		ChannelID: "chan-1",
		Version:   0,
	}
	err := challenge.Validate()
	assert.True(t, errors.ErrMsg.Is(err), "unexpected error: %+v", err)

	finalize := &FinalizeCloseMsg{
		Metadata:  &diap.Metadata{Schema: 1},
		ChannelID: "",
	}
	err = finalize.Validate()
	assert.True(t, errors.ErrEmpty.Is(err), "unexpected error: %+v", err)
}

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	msg := &UpdateConfigurationMsg{
		Metadata: &diap.Metadata{Schema: 1},
	}
	err := msg.Validate()
	assert.True(t, errors.ErrEmpty.Is(err), "unexpected error: %+v", err)

	msg.Patch = &Configuration{
		Metadata:   &diap.Metadata{Schema: 1},
		Owner:      diaptest.NewCondition().Address(),
		Ticker:     "DIAP",
		FeeRateBps: MaxFeeRateBps + 1,
	}
	err = msg.Validate()
	assert.True(t, errors.ErrInput.Is(err), "unexpected error: %+v", err)

	msg.Patch.FeeRateBps = MaxFeeRateBps
	assert.NoError(t, msg.Validate())
}
