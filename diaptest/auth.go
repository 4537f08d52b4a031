package diaptest

import (
	"context"
	"fmt"

	"github.com/diap-network/diap"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
// You can use either Signer or Signers (or both) attributes to
// reference conditions. Each time all signers (regardless which
// attribute) are considered.
type Auth struct {
	// Signer represents an authentication of a single signer. This is a
	// convenience attribute when creating an authentication method for a
	// single signer.
	Signer diap.Condition

	// Signers represents an authentication of multiple signers.
	Signers []diap.Condition
}

func (a *Auth) GetConditions(diap.Context) []diap.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx diap.Context, addr diap.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer.Address())
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve
// permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

type ctxAuthKey struct{ name string }

func (a *CtxAuth) SetConditions(ctx diap.Context, permissions ...diap.Condition) diap.Context {
	return context.WithValue(ctx, ctxAuthKey{name: a.Key}, permissions)
}

func (a *CtxAuth) GetConditions(ctx diap.Context) []diap.Condition {
	val := ctx.Value(ctxAuthKey{name: a.Key})
	if val == nil {
		return nil
	}
	conds, ok := val.([]diap.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []diap.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx diap.Context, addr diap.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
