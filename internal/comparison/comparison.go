// Package comparison combines the fee engines, the resolver, and the decision
// engine into one projection: what the transfer costs on each rail, how long
// each rail takes in the demo, and what the sender saves by using the
// regional scheme.
package comparison

import (
	"time"

	"github.com/railcompare/rail-compare/internal/decision"
	"github.com/railcompare/rail-compare/internal/fees"
	"github.com/railcompare/rail-compare/pkg/constants"
	"github.com/railcompare/rail-compare/pkg/mathutil"
	"go.uber.org/zap"
)

// Durations holds the fixed demo settlement durations. They are configuration
// constants, never computed from input.
type Durations struct {
	SEPAInstant  time.Duration
	SEPAStandard time.Duration
	SWIFT        time.Duration
}

// DefaultDurations returns the built-in demo durations.
func DefaultDurations() Durations {
	return Durations{
		SEPAInstant:  constants.SEPAInstantDuration,
		SEPAStandard: constants.SEPAStandardDuration,
		SWIFT:        constants.SWIFTDuration,
	}
}

// Input carries all user-entered parameters for one comparison.
type Input struct {
	Amount       float64
	CountryName  string
	PayeeIBAN    string
	Channel      fees.Channel
	FirstOfDay   bool
	WantsInstant bool
	Recurring    bool
	SWIFTProfile fees.BankProfile
	SWIFTOption  fees.CostOption
}

// Result is the full side-by-side picture for one set of inputs.
type Result struct {
	Input         Input
	Decision      decision.Decision
	SEPAFee       float64
	SWIFT         fees.Breakdown
	SEPADuration  time.Duration
	SWIFTDuration time.Duration
	TimeSaved     time.Duration
	MoneySaved    float64
}

// Engine produces comparison results. Safe for concurrent use.
type Engine struct {
	logger    *zap.Logger
	decisions *decision.Engine
	durations Durations
}

// NewEngine constructs a comparison Engine. A nil logger is replaced with a
// no-op logger; a nil decision engine gets the defaults.
func NewEngine(logger *zap.Logger, decisions *decision.Engine, durations Durations) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if decisions == nil {
		decisions = decision.NewEngine(nil, nil)
	}
	if durations.SWIFT == 0 {
		durations = DefaultDurations()
	}
	return &Engine{logger: logger, decisions: decisions, durations: durations}
}

// Compare evaluates both rails for the given input. Fees are computed for
// both rails regardless of eligibility so the presentation layer can always
// show the full table.
func (e *Engine) Compare(in Input) Result {
	dec := e.decisions.Decide(decision.Request{
		Amount:       in.Amount,
		PayeeIBAN:    in.PayeeIBAN,
		CountryName:  in.CountryName,
		WantsInstant: in.WantsInstant,
		Recurring:    in.Recurring,
	})

	sepaFee := fees.CalcSEPAFee(in.Amount, in.Channel, in.FirstOfDay)
	swift := fees.CalcSWIFTFees(in.Amount, in.SWIFTProfile, in.SWIFTOption)

	sepaDuration := e.durations.SEPAStandard
	if in.WantsInstant {
		sepaDuration = e.durations.SEPAInstant
	}

	timeSaved := e.durations.SWIFT - sepaDuration
	if timeSaved < 0 {
		timeSaved = 0
	}

	// Effective cost measures what it takes for the beneficiary to end up with
	// the full amount: under SEPA the beneficiary always receives the full
	// amount, under SWIFT the value lost to fees across both legs is added.
	sepaEffective := in.Amount + sepaFee
	swiftEffective := swift.SenderTotalOutlay - swift.BeneficiaryReceived + in.Amount
	moneySaved := mathutil.Round(mathutil.Max(swiftEffective-sepaEffective, 0))

	e.logger.Debug("compared rails",
		zap.String("op", "comparison.Compare"),
		zap.Float64("amount", in.Amount),
		zap.String("method", string(dec.Method)),
		zap.Float64("sepaFee", sepaFee),
		zap.Float64("swiftSenderFee", swift.SenderFee),
		zap.Float64("moneySaved", moneySaved),
	)

	return Result{
		Input:         in,
		Decision:      dec,
		SEPAFee:       sepaFee,
		SWIFT:         swift,
		SEPADuration:  sepaDuration,
		SWIFTDuration: e.durations.SWIFT,
		TimeSaved:     timeSaved,
		MoneySaved:    moneySaved,
	}
}
