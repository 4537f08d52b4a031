package diap

import (
	"context"
	"regexp"
	"time"

	"github.com/diap-network/diap/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Context is just a typedef to reduce the context.Context boilerplate in
// handler signatures. All the usual context rules apply.
type Context = context.Context

type contextKey int

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
	contextKeyTime
)

var (
	// DefaultLogger is used for all contexts that have not set anything
	// themselves.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithHeight sets the block height for the Context. This must be done
// once at the beginning of block processing, never by a handler.
func WithHeight(ctx Context, height int64) Context {
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height and true. If the height is
// not present in the context it returns false.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithBlockTime sets the block time for the Context. The block time is
// the only source of time that handlers may use. Time is truncated to
// second precision, matching the resolution of UnixTime that all
// deadlines are stored with.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t.UTC().Truncate(time.Second))
}

// BlockTime returns the current block wall clock time. An error is
// returned for a context that was not initialized with a block time.
func BlockTime(ctx Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrHuman, "block time not present in the context")
	}
	return val, nil
}

// IsExpired returns true if given time is in the past as compared to the
// "current" time declared in the context. Expiration is inclusive,
// meaning that if the current time is equal to the expiration time then
// the tested value is already considered expired.
//
// This function panics on a context without a block time, because a
// result would be meaningless.
func IsExpired(ctx Context, t UnixTime) bool {
	now, err := BlockTime(ctx)
	if err != nil {
		panic(err.Error())
	}
	return t <= AsUnixTime(now)
}

// InThePast returns true if given time is in the past as compared to the
// current time as declared in the context. Unlike IsExpired, this
// comparison is exclusive.
func InThePast(ctx Context, t time.Time) bool {
	now, err := BlockTime(ctx)
	if err != nil {
		panic(err.Error())
	}
	return t.Before(now)
}

// WithChainID sets the chain id for the Context. The chain id must be
// set once and is constant for the lifetime of the process.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("chain id already set")
	}
	if !IsValidChainID(chainID) {
		panic("invalid chain id: " + chainID)
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id from the context. It panics if the
// chain id was not set, as this indicates an incorrectly initialized
// application.
func GetChainID(ctx Context) string {
	if ctx == nil {
		panic("context is nil")
	}
	val, ok := ctx.Value(contextKeyChainID).(string)
	if !ok {
		panic("chain id is not set")
	}
	return val
}

// WithLogger sets the logger for this Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	// Logger can be overridden below... no problem
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger stored in the Context, or DefaultLogger
// if none was set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
