package paychan

import (
	"github.com/diap-network/diap/coin"
)

// basisPoints is the denominator of the fee rate.
const basisPoints = 10000

// SettlementFee computes the fee withheld when a channel with the
// given deposit is finalized. The result is rounded down, so small
// deposits at low rates settle without any fee.
func SettlementFee(totalDeposited uint64, rateBps uint32) (uint64, error) {
	scaled, err := coin.Mul64(totalDeposited, uint64(rateBps))
	if err != nil {
		return 0, err
	}
	return scaled / basisPoints, nil
}
