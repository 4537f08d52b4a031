package utils

import (
	"context"
	"testing"

	"github.com/diap-network/diap"
	"github.com/diap-network/diap/diaptest"
	"github.com/diap-network/diap/errors"
	"github.com/diap-network/diap/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHandler writes the key, value pair and returns the error (may be nil)
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ diap.Handler = writeHandler{}

func (h writeHandler) Check(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	db.Set(h.key, h.value)
	return &diap.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	db.Set(h.key, h.value)
	return &diap.DeliverResult{}, h.err
}

func TestSavepoint(t *testing.T) {
	key, value := []byte("key"), []byte("value")
	fail := errors.Wrap(errors.ErrState, "handler failed")

	cases := map[string]struct {
		handler   diap.Handler
		decorator diap.Decorator
		wantErr   error
		// written is true when the key must be present after execution
		written bool
	}{
		"savepoint commits on success": {
			handler:   writeHandler{key: key, value: value},
			decorator: NewSavepoint().OnCheck().OnDeliver(),
			written:   true,
		},
		"savepoint rolls back on error": {
			handler:   writeHandler{key: key, value: value, err: fail},
			decorator: NewSavepoint().OnCheck().OnDeliver(),
			wantErr:   fail,
			written:   false,
		},
		"inactive savepoint leaves writes in place even on error": {
			handler:   writeHandler{key: key, value: value, err: fail},
			decorator: NewSavepoint(),
			wantErr:   fail,
			written:   true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			tx := &diaptest.Tx{Msg: &diaptest.Msg{RoutePath: "test/noop"}}

			check := store.MemStore()
			_, err := tc.decorator.Check(ctx, check, tx, tc.handler)
			if tc.wantErr != nil {
				assert.True(t, errors.ErrState.Is(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.written, check.Has(key))

			deliver := store.MemStore()
			_, err = tc.decorator.Deliver(ctx, deliver, tx, tc.handler)
			if tc.wantErr != nil {
				assert.True(t, errors.ErrState.Is(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.written, deliver.Has(key))
		})
	}
}
