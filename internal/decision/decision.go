// Package decision classifies a payment into a transfer method and explains
// whether the regional scheme is usable for the entered destination, amount,
// and purpose. The evaluation is an ordered rule list; the first applicable
// branch wins and branches are never re-evaluated, which keeps the order
// auditable in isolation from any presentation layer.
package decision

import (
	"github.com/railcompare/rail-compare/internal/iban"
	"github.com/railcompare/rail-compare/internal/scheme"
)

// Method is the resolved transfer method.
type Method string

const (
	// MethodStandard is a standard SEPA credit transfer (SCT).
	MethodStandard Method = "SCT"
	// MethodInstant is an instant SEPA credit transfer (SCT Inst).
	MethodInstant Method = "SCT_INST"
	// MethodDirectDebit is a SEPA direct debit (SDD).
	MethodDirectDebit Method = "SDD"
	// MethodNone means no regional method applies.
	MethodNone Method = "NONE"
)

// Request carries the user-entered transfer parameters.
type Request struct {
	Amount       float64
	PayeeIBAN    string
	CountryName  string
	WantsInstant bool
	Recurring    bool
}

// Decision is the immutable result of one evaluation. It is recomputed from
// scratch on every input change; there is no incremental state.
type Decision struct {
	Eligible     bool
	Method       Method
	PayeeCountry string
	Reasons      []string
	Warnings     []string
}

// Engine evaluates eligibility against fixed membership data. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	membership *scheme.Membership
	resolver   *iban.Resolver
}

// NewEngine constructs an Engine. Nil arguments fall back to the defaults.
func NewEngine(membership *scheme.Membership, resolver *iban.Resolver) *Engine {
	if membership == nil {
		membership = scheme.Default()
	}
	if resolver == nil {
		resolver = iban.NewResolver(nil)
	}
	return &Engine{membership: membership, resolver: resolver}
}

// Decide runs the ordered rule list. It is pure with respect to its inputs:
// identical requests always produce structurally identical decisions, with no
// time-based or random component.
func (e *Engine) Decide(req Request) Decision {
	if req.Amount <= 0 {
		return Decision{
			Method:  MethodNone,
			Reasons: []string{"Enter an amount."},
		}
	}

	payeeCode := e.resolver.Resolve(req.PayeeIBAN, req.CountryName)
	if payeeCode == "" {
		return Decision{
			Method:  MethodNone,
			Reasons: []string{"Missing destination country (enter an IBAN or choose a destination)."},
		}
	}

	if !e.membership.IsSEPAActive(payeeCode) {
		return Decision{
			Method:       MethodNone,
			PayeeCountry: payeeCode,
			Reasons:      []string{"The recipient's bank is not in SEPA (yet) or is not active."},
		}
	}

	var method Method
	reasons := []string{}
	warnings := []string{}

	if req.Recurring {
		if e.membership.InEUEEA(payeeCode) {
			// SDD is the primary method for subscriptions in the area, but an
			// instant preference is honored for display.
			method = MethodDirectDebit
			if req.WantsInstant {
				method = MethodInstant
			}
			reasons = append(reasons, "Subscription: SEPA Direct Debit (SDD) is available in the EU/EEA.")
		} else {
			method = MethodStandard
			reasons = append(reasons, "A subscription calls for SDD; outside the EU/EEA that may be restricted.")
			warnings = append(warnings, "Merchants outside the EU/EEA often do not offer SDD; use SCT or a card.")
		}
	} else {
		switch {
		case req.WantsInstant && e.membership.HasInstantCoverage(payeeCode):
			method = MethodInstant
			reasons = append(reasons, "Both sides typically support SCT Inst (indicative assumption).")
		case req.WantsInstant:
			method = MethodStandard
			reasons = append(reasons, "Instant is not available everywhere; the standard SCT applies.")
		default:
			method = MethodStandard
			reasons = append(reasons, "The standard SEPA credit transfer (SCT) is available.")
		}
	}

	// Informational: SDD mandates drawn on an out-of-area account are often
	// declined by in-area merchants.
	home := e.membership.HomeCountry()
	if method == MethodDirectDebit && !e.membership.InEUEEA(home) && e.membership.InEUEEA(payeeCode) {
		warnings = append(warnings, "An SDD mandate on an account outside the EU/EEA (e.g. "+home+") may be declined for business-policy reasons.")
	}

	return Decision{
		Eligible:     method != MethodNone,
		Method:       method,
		PayeeCountry: payeeCode,
		Reasons:      reasons,
		Warnings:     warnings,
	}
}
