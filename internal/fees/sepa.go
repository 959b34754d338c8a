// Package fees implements the indicative fee schedules for both rails: the
// tiered SEPA credit-transfer pricing and the four SWIFT bank profiles with
// their BEN/SHA/OUR cost-allocation variants. All functions are pure and
// total over the numeric domain; callers gate on amount > 0 before invoking.
package fees

import "github.com/railcompare/rail-compare/pkg/constants"

// Channel is the channel a SEPA payment is submitted through.
type Channel string

const (
	// ChannelElectronic is e-banking.
	ChannelElectronic Channel = "electronic"
	// ChannelCounter is in-branch at the counter.
	ChannelCounter Channel = "counter"
)

// CalcSEPAFee returns the sender fee for a SEPA credit transfer. The first
// transfer of the day up to the micro-fee limit costs a flat micro fee on any
// channel; otherwise the fee is tiered by amount and channel.
func CalcSEPAFee(amount float64, channel Channel, firstOfDay bool) float64 {
	if firstOfDay && amount <= constants.MicroFeeLimit {
		return constants.MicroFee
	}
	if channel == ChannelElectronic {
		if amount <= constants.TierLimit {
			return constants.ElectronicFeeLow
		}
		return constants.ElectronicFeeHigh
	}
	if amount <= constants.TierLimit {
		return constants.CounterFeeLow
	}
	return constants.CounterFeeHigh
}
