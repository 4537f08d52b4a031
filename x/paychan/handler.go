package paychan

import (
	"time"

	"github.com/diap-network/diap"
	"github.com/diap-network/diap/coin"
	"github.com/diap-network/diap/errors"
	"github.com/diap-network/diap/x"
	"github.com/diap-network/diap/x/cash"
)

const (
	openChannelCost   int64 = 300
	updateChannelCost int64 = 100

	// disputeWindow is how long the counterparty has to challenge a
	// closing state. Every accepted initiate restarts the window.
	disputeWindow = 24 * time.Hour
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r diap.Registry, auth x.Authenticator, control cash.Controller) {
	channels := NewChannelBucket()
	configs := NewConfigurationBucket()

	r.Handle("paychan/open", &openChannelHandler{auth: auth, channels: channels, configs: configs, cash: control})
	r.Handle("paychan/initiate_close", &initiateCloseHandler{auth: auth, channels: channels})
	r.Handle("paychan/challenge_close", &challengeCloseHandler{auth: auth, channels: channels})
	r.Handle("paychan/finalize_close", &finalizeCloseHandler{channels: channels, configs: configs, cash: control})
	r.Handle("paychan/update_configuration", &updateConfigurationHandler{auth: auth, configs: configs})
}

// RegisterQuery will register channels as "/channels" and settlement
// configurations as "/channelconfs".
func RegisterQuery(qr diap.QueryRouter) {
	NewChannelBucket().Register("channels", qr)
	NewConfigurationBucket().Register("channelconfs", qr)
}

// ---- open

type openChannelHandler struct {
	auth     x.Authenticator
	channels ChannelBucket
	configs  ConfigurationBucket
	cash     cash.Controller
}

var _ diap.Handler = (*openChannelHandler)(nil)

func (h *openChannelHandler) Check(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &diap.CheckResult{GasAllocated: openChannelCost}, nil
}

func (h *openChannelHandler) validate(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*OpenChannelMsg, error) {
	var msg OpenChannelMsg
	if err := diap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// The deposit is taken from participant A, so A must have signed.
	if !h.auth.HasAddress(ctx, msg.ParticipantA) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "participant a signature missing")
	}

	// Channels can only be opened for tokens with a settlement
	// configuration.
	if _, err := h.configs.GetConfiguration(db, msg.Ticker); err != nil {
		return nil, err
	}

	if h.channels.Has(db, msg.ChannelID) {
		return nil, errors.Wrapf(errors.ErrDuplicate, "channel %q", msg.ChannelID)
	}
	return &msg, nil
}

func (h *openChannelHandler) Deliver(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := diap.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	pc := &PaymentChannel{
		Metadata:       &diap.Metadata{Schema: 1},
		ChannelID:      msg.ChannelID,
		ParticipantA:   msg.ParticipantA,
		ParticipantB:   msg.ParticipantB,
		Ticker:         msg.Ticker,
		TotalDeposited: msg.Deposit,
		// Until the first state update the depositor owns everything.
		BalanceA:  msg.Deposit,
		BalanceB:  0,
		Version:   0,
		Status:    ChannelStatusOpen,
		UpdatedAt: diap.AsUnixTime(now),
	}

	// Lock the deposit on the channel vault account.
	deposit := coin.NewCoin(msg.Deposit, msg.Ticker)
	if err := h.cash.MoveCoins(db, msg.ParticipantA, vaultAccount(msg.ChannelID), deposit); err != nil {
		return nil, errors.Wrap(err, "cannot fund vault")
	}

	if err := h.channels.Save(db, pc); err != nil {
		return nil, err
	}
	return &diap.DeliverResult{Data: channelKey(msg.ChannelID)}, nil
}

// ---- initiate close

type initiateCloseHandler struct {
	auth     x.Authenticator
	channels ChannelBucket
}

var _ diap.Handler = (*initiateCloseHandler)(nil)

func (h *initiateCloseHandler) Check(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &diap.CheckResult{GasAllocated: updateChannelCost}, nil
}

func (h *initiateCloseHandler) validate(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*InitiateCloseMsg, *PaymentChannel, error) {
	var msg InitiateCloseMsg
	if err := diap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	pc, err := h.channels.GetChannel(db, msg.ChannelID)
	if err != nil {
		return nil, nil, err
	}
	if pc.Status == ChannelStatusClosed {
		return nil, nil, errors.Wrapf(ErrChannelClosed, "channel %q", msg.ChannelID)
	}
	if err := authorizeParticipant(ctx, h.auth, pc); err != nil {
		return nil, nil, err
	}
	if err := checkStateUpdate(pc, msg.BalanceA, msg.BalanceB, msg.Version); err != nil {
		return nil, nil, err
	}
	return &msg, pc, nil
}

func (h *initiateCloseHandler) Deliver(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	msg, pc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := diap.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	pc.BalanceA = msg.BalanceA
	pc.BalanceB = msg.BalanceB
	pc.Version = msg.Version
	pc.Status = ChannelStatusClosing
	// A repeated initiate restarts the window. This lets the
	// participants keep a channel disputed indefinitely as long as they
	// produce newer states.
	pc.DisputeDeadline = diap.AsUnixTime(now.Add(disputeWindow))
	pc.UpdatedAt = diap.AsUnixTime(now)

	if err := h.channels.Save(db, pc); err != nil {
		return nil, err
	}
	return &diap.DeliverResult{}, nil
}

// ---- challenge close

type challengeCloseHandler struct {
	auth     x.Authenticator
	channels ChannelBucket
}

var _ diap.Handler = (*challengeCloseHandler)(nil)

func (h *challengeCloseHandler) Check(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &diap.CheckResult{GasAllocated: updateChannelCost}, nil
}

func (h *challengeCloseHandler) validate(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*ChallengeCloseMsg, *PaymentChannel, error) {
	var msg ChallengeCloseMsg
	if err := diap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	pc, err := h.channels.GetChannel(db, msg.ChannelID)
	if err != nil {
		return nil, nil, err
	}
	if pc.Status == ChannelStatusClosed {
		return nil, nil, errors.Wrapf(ErrChannelClosed, "channel %q", msg.ChannelID)
	}
	if pc.Status != ChannelStatusClosing {
		return nil, nil, errors.Wrapf(ErrNoDispute, "channel %q is %s", msg.ChannelID, pc.Status)
	}
	if diap.IsExpired(ctx, pc.DisputeDeadline) {
		return nil, nil, errors.Wrapf(ErrDisputeExpired, "deadline was %s", pc.DisputeDeadline)
	}
	if err := authorizeParticipant(ctx, h.auth, pc); err != nil {
		return nil, nil, err
	}
	if err := checkStateUpdate(pc, msg.BalanceA, msg.BalanceB, msg.Version); err != nil {
		return nil, nil, err
	}
	return &msg, pc, nil
}

func (h *challengeCloseHandler) Deliver(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	msg, pc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := diap.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	// A challenge replaces the pending state but does not move the
	// deadline. Extending the window is reserved for initiate.
	pc.BalanceA = msg.BalanceA
	pc.BalanceB = msg.BalanceB
	pc.Version = msg.Version
	pc.UpdatedAt = diap.AsUnixTime(now)

	if err := h.channels.Save(db, pc); err != nil {
		return nil, err
	}
	return &diap.DeliverResult{}, nil
}

// ---- finalize close

type finalizeCloseHandler struct {
	channels ChannelBucket
	configs  ConfigurationBucket
	cash     cash.Controller
}

var _ diap.Handler = (*finalizeCloseHandler)(nil)

func (h *finalizeCloseHandler) Check(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &diap.CheckResult{GasAllocated: updateChannelCost}, nil
}

// validate does not check any signature. Once the dispute window
// elapsed the settlement is a mechanical operation that anyone may
// trigger.
func (h *finalizeCloseHandler) validate(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*FinalizeCloseMsg, *PaymentChannel, error) {
	var msg FinalizeCloseMsg
	if err := diap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	pc, err := h.channels.GetChannel(db, msg.ChannelID)
	if err != nil {
		return nil, nil, err
	}
	switch pc.Status {
	case ChannelStatusClosed:
		return nil, nil, errors.Wrapf(ErrChannelClosed, "channel %q", msg.ChannelID)
	case ChannelStatusClosing:
	default:
		return nil, nil, errors.Wrapf(ErrNoDispute, "channel %q is %s", msg.ChannelID, pc.Status)
	}
	if !diap.IsExpired(ctx, pc.DisputeDeadline) {
		return nil, nil, errors.Wrapf(ErrDisputeRunning, "deadline is %s", pc.DisputeDeadline)
	}
	return &msg, pc, nil
}

func (h *finalizeCloseHandler) Deliver(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	msg, pc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	now, err := diap.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	// The fee rate is read at settlement time, not at channel creation.
	conf, err := h.configs.GetConfiguration(db, pc.Ticker)
	if err != nil {
		return nil, err
	}
	fee, err := SettlementFee(pc.TotalDeposited, conf.FeeRateBps)
	if err != nil {
		return nil, err
	}

	// Both payouts plus the fee must be covered by the deposit. The
	// model invariant already bounds the balance sum, this additionally
	// accounts for the fee.
	payout, err := coin.Add64(pc.BalanceA, pc.BalanceB)
	if err != nil {
		return nil, errors.Wrap(ErrInsufficientEscrow, "payout overflows")
	}
	needed, err := coin.Add64(payout, fee)
	if err != nil {
		return nil, errors.Wrap(ErrInsufficientEscrow, "payout and fee overflow")
	}
	if needed > pc.TotalDeposited {
		return nil, errors.Wrapf(ErrInsufficientEscrow, "need %d, deposited %d", needed, pc.TotalDeposited)
	}

	vault := vaultAccount(msg.ChannelID)
	if pc.BalanceA > 0 {
		amount := coin.NewCoin(pc.BalanceA, pc.Ticker)
		if err := h.cash.MoveCoins(db, vault, pc.ParticipantA, amount); err != nil {
			return nil, errors.Wrap(err, "payout participant a")
		}
	}
	if pc.BalanceB > 0 {
		amount := coin.NewCoin(pc.BalanceB, pc.Ticker)
		if err := h.cash.MoveCoins(db, vault, pc.ParticipantB, amount); err != nil {
			return nil, errors.Wrap(err, "payout participant b")
		}
	}
	// The fee is left on the vault account.

	pc.Status = ChannelStatusClosed
	pc.UpdatedAt = diap.AsUnixTime(now)
	if err := h.channels.Save(db, pc); err != nil {
		return nil, err
	}
	return &diap.DeliverResult{}, nil
}

// ---- update configuration

type updateConfigurationHandler struct {
	auth    x.Authenticator
	configs ConfigurationBucket
}

var _ diap.Handler = (*updateConfigurationHandler)(nil)

func (h *updateConfigurationHandler) Check(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &diap.CheckResult{GasAllocated: updateChannelCost}, nil
}

func (h *updateConfigurationHandler) validate(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*UpdateConfigurationMsg, error) {
	var msg UpdateConfigurationMsg
	if err := diap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Configurations are created at genesis. Only the current owner can
	// replace one.
	current, err := h.configs.GetConfiguration(db, msg.Patch.Ticker)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, current.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	return &msg, nil
}

func (h *updateConfigurationHandler) Deliver(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.configs.Save(db, msg.Patch); err != nil {
		return nil, err
	}
	return &diap.DeliverResult{}, nil
}

// ---- shared checks

// authorizeParticipant ensures the transaction was signed by one of
// the two channel participants.
func authorizeParticipant(ctx diap.Context, auth x.Authenticator, pc *PaymentChannel) error {
	if auth.HasAddress(ctx, pc.ParticipantA) || auth.HasAddress(ctx, pc.ParticipantB) {
		return nil
	}
	return errors.Wrapf(ErrNotParticipant, "channel %q", pc.ChannelID)
}

// checkStateUpdate verifies that a submitted balance split may replace
// the currently accepted one.
func checkStateUpdate(pc *PaymentChannel, balanceA, balanceB, version uint64) error {
	if version <= pc.Version {
		return errors.Wrapf(ErrStaleVersion, "version %d, current %d", version, pc.Version)
	}
	sum, err := coin.Add64(balanceA, balanceB)
	if err != nil {
		return errors.Wrap(ErrSplitExceedsDeposit, "balance sum overflows")
	}
	if sum > pc.TotalDeposited {
		return errors.Wrapf(ErrSplitExceedsDeposit, "%d > %d", sum, pc.TotalDeposited)
	}
	return nil
}
