package cash

import (
	"context"
	"testing"

	"github.com/diap-network/diap"
	"github.com/diap-network/diap/coin"
	"github.com/diap-network/diap/diaptest"
	"github.com/diap-network/diap/errors"
	"github.com/diap-network/diap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendHandler(t *testing.T) {
	alice := diaptest.NewCondition()
	bob := diaptest.NewCondition()

	amount := coin.NewCoinp(25, "DIAP")

	cases := map[string]struct {
		signer  diap.Condition
		msg     diap.Msg
		wantErr *errors.Error
	}{
		"happy path": {
			signer: alice,
			msg: &SendMsg{
				Metadata:    &diap.Metadata{Schema: 1},
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      amount,
			},
		},
		"missing source signature": {
			signer: bob,
			msg: &SendMsg{
				Metadata:    &diap.Metadata{Schema: 1},
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      amount,
			},
			wantErr: errors.ErrUnauthorized,
		},
		"invalid message": {
			signer: alice,
			msg: &SendMsg{
				Metadata:    &diap.Metadata{Schema: 1},
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      coin.NewCoinp(0, "DIAP"),
			},
			wantErr: errors.ErrAmount,
		},
		"wrong message type": {
			signer:  alice,
			msg:     &diaptest.Msg{RoutePath: "cash/send"},
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			bucket := NewBucket()
			funds := coin.NewCoin(100, "DIAP")
			wallet, err := WalletWith(alice.Address(), &funds)
			require.NoError(t, err)
			require.NoError(t, bucket.Save(db, wallet))

			auth := &diaptest.Auth{Signer: tc.signer}
			h := NewSendHandler(auth, NewController(bucket))

			ctx := context.Background()
			tx := &diaptest.Tx{Msg: tc.msg}

			cres, err := h.Check(ctx, db, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "check: %+v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, sendTxCost, cres.GasAllocated)
			}

			_, err = h.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "deliver: %+v", err)
				return
			}
			require.NoError(t, err)

			control := NewController(bucket)
			destCoins, err := control.Balance(db, bob.Address())
			require.NoError(t, err)
			assert.True(t, destCoins.Contains(*amount))
		})
	}
}
