package paychan

import (
	"github.com/diap-network/diap"
	"github.com/diap-network/diap/coin"
	"github.com/diap-network/diap/errors"
	"github.com/diap-network/diap/orm"
)

const maxChannelIDLen = 64

var _ orm.CloneableData = (*PaymentChannel)(nil)

// Validate ensures the payment channel is in a consistent state.
func (pc *PaymentChannel) Validate() error {
	if err := pc.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validateChannelID(pc.ChannelID); err != nil {
		return err
	}
	if err := pc.ParticipantA.Validate(); err != nil {
		return errors.Wrap(err, "participant a")
	}
	if err := pc.ParticipantB.Validate(); err != nil {
		return errors.Wrap(err, "participant b")
	}
	if pc.ParticipantA.Equals(pc.ParticipantB) {
		return errors.Wrap(errors.ErrInput, "participants must differ")
	}
	if !coin.IsCC(pc.Ticker) {
		return errors.Wrapf(errors.ErrAmount, "invalid ticker: %q", pc.Ticker)
	}
	if pc.TotalDeposited == 0 {
		return errors.Wrap(errors.ErrAmount, "zero deposit")
	}
	switch pc.Status {
	case ChannelStatusOpen, ChannelStatusClosing, ChannelStatusClosed:
	default:
		return errors.Wrapf(errors.ErrState, "invalid status: %s", pc.Status)
	}
	if pc.Status != ChannelStatusOpen && pc.DisputeDeadline == 0 {
		return errors.Wrap(errors.ErrState, "missing dispute deadline")
	}

	// The accepted split may never promise more than was deposited.
	sum, err := coin.Add64(pc.BalanceA, pc.BalanceB)
	if err != nil {
		return errors.Wrap(ErrSplitExceedsDeposit, "balance sum overflows")
	}
	if sum > pc.TotalDeposited {
		return errors.Wrapf(ErrSplitExceedsDeposit, "%d > %d", sum, pc.TotalDeposited)
	}
	return nil
}

// Copy returns a shallow copy of this PaymentChannel.
func (pc PaymentChannel) Copy() orm.CloneableData {
	cpy := pc
	cpy.Metadata = pc.Metadata.Copy()
	return &cpy
}

func validateChannelID(channelID string) error {
	if channelID == "" {
		return errors.Wrap(errors.ErrEmpty, "channel id")
	}
	if len(channelID) > maxChannelIDLen {
		return errors.Wrap(errors.ErrInput, "channel id too long")
	}
	return nil
}

// channelKey is the database key of a channel. Identifiers are client
// chosen strings of any length, hashing gives a fixed size key.
func channelKey(channelID string) []byte {
	return diap.NewAddress([]byte(channelID))
}

// vaultAccount returns the address of the escrow account holding the
// deposit of the channel with given ID. Nobody controls this account,
// funds only leave it through finalization payouts.
func vaultAccount(channelID string) diap.Address {
	return diap.NewCondition("paychan", "vault", channelKey(channelID)).Address()
}

// ChannelBucket is a wrapper over orm.Bucket that ensures that only
// PaymentChannel entities can be persisted.
type ChannelBucket struct {
	orm.Bucket
}

// NewChannelBucket returns a bucket for storing PaymentChannel state.
func NewChannelBucket() ChannelBucket {
	return ChannelBucket{
		Bucket: orm.NewBucket("paychan", orm.NewSimpleObj(nil, &PaymentChannel{})),
	}
}

// Save persists a channel under the key derived from its identifier.
func (b ChannelBucket) Save(db diap.KVStore, pc *PaymentChannel) error {
	obj := orm.NewSimpleObj(channelKey(pc.ChannelID), pc)
	return b.Bucket.Save(db, obj)
}

// Has returns true if a channel with given ID exists.
func (b ChannelBucket) Has(db diap.ReadOnlyKVStore, channelID string) bool {
	return b.Bucket.Has(db, channelKey(channelID))
}

// GetChannel returns the channel with given ID or ErrNotFound.
func (b ChannelBucket) GetChannel(db diap.ReadOnlyKVStore, channelID string) (*PaymentChannel, error) {
	obj, err := b.Get(db, channelKey(channelID))
	if err != nil {
		return nil, err
	}
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "channel %q", channelID)
	}
	pc, ok := obj.Value().(*PaymentChannel)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj.Value())
	}
	return pc, nil
}
