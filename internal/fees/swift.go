package fees

import "github.com/railcompare/rail-compare/pkg/mathutil"

// CostOption is the SWIFT cost-allocation option: who absorbs the
// intermediary fees.
type CostOption string

const (
	// OptionBEN makes the beneficiary pay all costs.
	OptionBEN CostOption = "BEN"
	// OptionSHA shares costs between sender and beneficiary.
	OptionSHA CostOption = "SHA"
	// OptionOUR makes the sender pay all costs.
	OptionOUR CostOption = "OUR"
)

// BankProfile selects one of the indicative sender-bank fee schedules.
type BankProfile string

const (
	// ProfileGeneric uses a tiered flat base fee by amount bracket.
	ProfileGeneric BankProfile = "Generic"
	// ProfilePercentage uses a percentage fee whose rate and floor vary by option.
	ProfilePercentage BankProfile = "Percentage"
	// ProfileFlatPercent uses 1% with a low floor and a flat OUR surcharge.
	ProfileFlatPercent BankProfile = "FlatPercent"
	// ProfileSliding uses a sliding tiered percentage by amount bracket.
	ProfileSliding BankProfile = "Sliding"
)

// correspondentFlat is the indicative intermediary fee charged on the
// receiving leg unless the sender absorbs all costs.
const correspondentFlat = 25.0

// Breakdown is the full cost picture of one SWIFT transfer.
type Breakdown struct {
	SenderFee           float64
	CorrespondentFee    float64
	BeneficiaryReceived float64
	SenderTotalOutlay   float64
	Note                string
}

// profileFunc computes the raw sender and correspondent fees for one bank
// profile. Each result is rounded before being returned.
type profileFunc func(amount float64, option CostOption) (sender, correspondent float64, note string)

var bankProfiles = map[BankProfile]profileFunc{
	ProfileGeneric: func(amount float64, option CostOption) (float64, float64, string) {
		var base float64
		switch {
		case amount <= 1000:
			base = 10
		case amount <= 20000:
			base = 20
		default:
			base = 35
		}
		if option == OptionOUR {
			// OUR shifts the correspondent cost onto the sender's own fee.
			return mathutil.Round(base + correspondentFlat), 0, ""
		}
		return mathutil.Round(base), correspondentFlat, ""
	},
	ProfilePercentage: func(amount float64, option CostOption) (float64, float64, string) {
		var pct, floor float64
		switch option {
		case OptionBEN:
			pct, floor = 0.005, 10
		case OptionSHA:
			pct, floor = 0.0075, 20
		default: // OUR
			pct, floor = 0.01, 25
		}
		sender := mathutil.Round(mathutil.Max(amount*pct, floor))
		if option == OptionOUR {
			return sender, 0, "OUR covers third-bank charges (indicative, up to ~€50)"
		}
		return sender, correspondentFlat, ""
	},
	ProfileFlatPercent: func(amount float64, option CostOption) (float64, float64, string) {
		base := mathutil.Max(amount*0.01, 9)
		if option == OptionOUR {
			return mathutil.Round(base + 15), 0, ""
		}
		return mathutil.Round(base), correspondentFlat, ""
	},
	ProfileSliding: func(amount float64, option CostOption) (float64, float64, string) {
		var base float64
		switch {
		case amount <= 1000:
			base = 10
		case amount <= 5000:
			base = 20
		case amount <= 20000:
			base = amount * 0.0035
		case amount <= 100000:
			base = amount * 0.003
		default:
			base = amount * 0.0025
		}
		if option == OptionOUR {
			return mathutil.Round(base + 25), 0, ""
		}
		return mathutil.Round(base), correspondentFlat, ""
	},
}

// CalcSWIFTFees computes the full breakdown for one SWIFT transfer under the
// given bank profile and cost option. Under OUR the correspondent fee is zero
// and the beneficiary receives the full amount; otherwise the correspondent
// fee is deducted on the receiving leg. Unknown profiles fall back to the
// generic schedule.
func CalcSWIFTFees(amount float64, profile BankProfile, option CostOption) Breakdown {
	fn, ok := bankProfiles[profile]
	if !ok {
		fn = bankProfiles[ProfileGeneric]
	}
	sender, correspondent, note := fn(amount, option)
	return Breakdown{
		SenderFee:           sender,
		CorrespondentFee:    correspondent,
		BeneficiaryReceived: mathutil.Round(amount - correspondent),
		SenderTotalOutlay:   mathutil.Round(amount + sender),
		Note:                note,
	}
}

// Profiles lists the selectable bank profiles in display order.
func Profiles() []BankProfile {
	return []BankProfile{ProfileGeneric, ProfilePercentage, ProfileFlatPercent, ProfileSliding}
}

// Options lists the selectable cost options in display order.
func Options() []CostOption {
	return []CostOption{OptionSHA, OptionOUR, OptionBEN}
}
