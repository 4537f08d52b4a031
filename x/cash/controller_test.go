package cash

import (
	"testing"

	"github.com/diap-network/diap"
	"github.com/diap-network/diap/coin"
	"github.com/diap-network/diap/diaptest"
	"github.com/diap-network/diap/errors"
	"github.com/diap-network/diap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCoins(t *testing.T) {
	alice := diaptest.NewCondition().Address()
	bob := diaptest.NewCondition().Address()
	charlie := diaptest.NewCondition().Address()

	ccy := "DIAP"
	bank := coin.NewCoin(50, ccy)

	cases := map[string]struct {
		funded  diap.Address
		src     diap.Address
		dest    diap.Address
		amount  coin.Coin
		wantErr *errors.Error
		// balances after a successful move
		srcLeft  uint64
		destLeft uint64
	}{
		"success": {
			funded:   alice,
			src:      alice,
			dest:     bob,
			amount:   coin.NewCoin(20, ccy),
			srcLeft:  30,
			destLeft: 20,
		},
		"whole balance": {
			funded:   alice,
			src:      alice,
			dest:     bob,
			amount:   coin.NewCoin(50, ccy),
			srcLeft:  0,
			destLeft: 50,
		},
		"insufficient funds": {
			funded:  alice,
			src:     alice,
			dest:    bob,
			amount:  coin.NewCoin(51, ccy),
			wantErr: errors.ErrAmount,
		},
		"source without a wallet": {
			funded:  alice,
			src:     charlie,
			dest:    bob,
			amount:  coin.NewCoin(5, ccy),
			wantErr: errors.ErrEmpty,
		},
		"zero amount": {
			funded:  alice,
			src:     alice,
			dest:    bob,
			amount:  coin.NewCoin(0, ccy),
			wantErr: errors.ErrAmount,
		},
		"wrong ticker": {
			funded:  alice,
			src:     alice,
			dest:    bob,
			amount:  coin.NewCoin(5, "OTHR"),
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			bucket := NewBucket()
			wallet, err := WalletWith(tc.funded, &bank)
			require.NoError(t, err)
			require.NoError(t, bucket.Save(db, wallet))

			control := NewController(bucket)
			err = control.MoveCoins(db, tc.src, tc.dest, tc.amount)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)

			srcCoins, err := control.Balance(db, tc.src)
			require.NoError(t, err)
			destCoins, err := control.Balance(db, tc.dest)
			require.NoError(t, err)

			wantSrc := coin.NewCoin(tc.srcLeft, ccy)
			if tc.srcLeft == 0 {
				assert.True(t, srcCoins.IsEmpty())
			} else {
				assert.True(t, srcCoins.Contains(wantSrc))
			}
			assert.True(t, destCoins.Contains(coin.NewCoin(tc.destLeft, ccy)))
		})
	}
}

func TestBalanceUnknownAccount(t *testing.T) {
	db := store.MemStore()
	control := NewController(NewBucket())

	_, err := control.Balance(db, diaptest.NewCondition().Address())
	assert.True(t, errors.ErrEmpty.Is(err))
}
