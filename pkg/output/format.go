// Package output provides utilities for formatting and displaying comparison
// results.
package output

import (
	"fmt"
	"strings"

	"github.com/railcompare/rail-compare/internal/comparison"
	"github.com/railcompare/rail-compare/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(result comparison.Result) {
	fmt.Print(PrettyString(result))
}

// PrettyString renders the human-readable comparison.
func PrettyString(result comparison.Result) string {
	var b strings.Builder

	destination := result.Input.CountryName
	if result.Decision.PayeeCountry != "" {
		destination = fmt.Sprintf("%s (%s)", destination, result.Decision.PayeeCountry)
	}

	fmt.Fprintf(&b, "--- SEPA vs SWIFT for %s to %s ---\n", format.EUR(result.Input.Amount), destination)

	badge := "not available"
	if result.Decision.Eligible {
		badge = string(result.Decision.Method)
	}
	fmt.Fprintf(&b, "Eligibility     | %s\n", badge)
	for _, reason := range result.Decision.Reasons {
		fmt.Fprintf(&b, "                | %s\n", reason)
	}
	for _, warning := range result.Decision.Warnings {
		fmt.Fprintf(&b, "Warning         | %s\n", warning)
	}

	fmt.Fprintf(&b, "SEPA fee        | %s (settles in %s)\n",
		format.EUR(result.SEPAFee), format.Duration(result.SEPADuration))
	fmt.Fprintf(&b, "SWIFT fees      | sender %s via %s/%s (settles in %s)\n",
		format.EUR(result.SWIFT.SenderFee), result.Input.SWIFTProfile, result.Input.SWIFTOption,
		format.Duration(result.SWIFTDuration))
	if result.SWIFT.CorrespondentFee > 0 {
		fmt.Fprintf(&b, "                | correspondent estimate %s\n", format.EUR(result.SWIFT.CorrespondentFee))
	}
	if result.SWIFT.Note != "" {
		fmt.Fprintf(&b, "                | %s\n", result.SWIFT.Note)
	}
	fmt.Fprintf(&b, "Beneficiary gets| SEPA %s vs SWIFT %s\n",
		format.EUR(result.Input.Amount), format.EUR(result.SWIFT.BeneficiaryReceived))
	fmt.Fprintf(&b, "Sender pays     | SEPA %s vs SWIFT %s\n",
		format.EUR(result.Input.Amount+result.SEPAFee), format.EUR(result.SWIFT.SenderTotalOutlay))
	fmt.Fprintf(&b, "Saved with SEPA | %s and %s\n",
		format.EUR(result.MoneySaved), format.Duration(result.TimeSaved))

	return b.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result comparison.Result) {
	fmt.Print(CsvString(result))
}

// CsvString renders the comparison as CSV with a header row.
func CsvString(result comparison.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "amount,destination,eligible,method,sepaFee,swiftSenderFee,swiftCorrespondentFee,beneficiaryReceived,senderTotalOutlay,timeSavedSeconds,moneySaved\n")
	fmt.Fprintf(&b, "%.2f,%s,%t,%s,%.2f,%.2f,%.2f,%.2f,%.2f,%.0f,%.2f\n",
		result.Input.Amount,
		result.Decision.PayeeCountry,
		result.Decision.Eligible,
		result.Decision.Method,
		result.SEPAFee,
		result.SWIFT.SenderFee,
		result.SWIFT.CorrespondentFee,
		result.SWIFT.BeneficiaryReceived,
		result.SWIFT.SenderTotalOutlay,
		result.TimeSaved.Seconds(),
		result.MoneySaved,
	)

	return b.String()
}
