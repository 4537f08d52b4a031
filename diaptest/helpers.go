package diaptest

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	"github.com/diap-network/diap"
)

// conditionCounter is incremented for every condition created to
// guarantee uniqueness within a test binary.
var conditionCounter uint64

// NewCondition returns a mock condition with a unique payload. It does
// not derive from any cryptographic material, which keeps tests fast
// and deterministic.
func NewCondition() diap.Condition {
	n := atomic.AddUint64(&conditionCounter, 1)
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, n)
	return diap.NewCondition("test", "mock", data)
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation, failing the test on bad input.
func ParseAddress(t testing.TB, encodedAddress string) diap.Address {
	t.Helper()

	addr, err := diap.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
