package fees

import "testing"

func TestCalcSWIFTFeesGeneric(t *testing.T) {
	tests := []struct {
		name                string
		amount              float64
		option              CostOption
		senderFee           float64
		correspondentFee    float64
		beneficiaryReceived float64
		senderTotalOutlay   float64
	}{
		{name: "Low bracket SHA", amount: 500, option: OptionSHA,
			senderFee: 10, correspondentFee: 25, beneficiaryReceived: 475, senderTotalOutlay: 510},
		{name: "Low bracket BEN", amount: 1000, option: OptionBEN,
			senderFee: 10, correspondentFee: 25, beneficiaryReceived: 975, senderTotalOutlay: 1010},
		{name: "Mid bracket SHA", amount: 5000, option: OptionSHA,
			senderFee: 20, correspondentFee: 25, beneficiaryReceived: 4975, senderTotalOutlay: 5020},
		{name: "High bracket SHA", amount: 25000, option: OptionSHA,
			senderFee: 35, correspondentFee: 25, beneficiaryReceived: 24975, senderTotalOutlay: 25035},
		{name: "OUR shifts correspondent to sender", amount: 500, option: OptionOUR,
			senderFee: 35, correspondentFee: 0, beneficiaryReceived: 500, senderTotalOutlay: 535},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcSWIFTFees(tt.amount, ProfileGeneric, tt.option)
			if got.SenderFee != tt.senderFee {
				t.Errorf("SenderFee = %v, expected %v", got.SenderFee, tt.senderFee)
			}
			if got.CorrespondentFee != tt.correspondentFee {
				t.Errorf("CorrespondentFee = %v, expected %v", got.CorrespondentFee, tt.correspondentFee)
			}
			if got.BeneficiaryReceived != tt.beneficiaryReceived {
				t.Errorf("BeneficiaryReceived = %v, expected %v", got.BeneficiaryReceived, tt.beneficiaryReceived)
			}
			if got.SenderTotalOutlay != tt.senderTotalOutlay {
				t.Errorf("SenderTotalOutlay = %v, expected %v", got.SenderTotalOutlay, tt.senderTotalOutlay)
			}
		})
	}
}

func TestCalcSWIFTFeesPercentage(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		option    CostOption
		senderFee float64
	}{
		{name: "BEN floor", amount: 1000, option: OptionBEN, senderFee: 10},
		{name: "BEN percentage above floor", amount: 10000, option: OptionBEN, senderFee: 50},
		{name: "SHA floor", amount: 1000, option: OptionSHA, senderFee: 20},
		{name: "SHA percentage", amount: 10000, option: OptionSHA, senderFee: 75},
		{name: "OUR floor", amount: 1000, option: OptionOUR, senderFee: 25},
		{name: "OUR percentage", amount: 10000, option: OptionOUR, senderFee: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcSWIFTFees(tt.amount, ProfilePercentage, tt.option)
			if got.SenderFee != tt.senderFee {
				t.Errorf("SenderFee = %v, expected %v", got.SenderFee, tt.senderFee)
			}
		})
	}
}

func TestCalcSWIFTFeesPercentageOUR(t *testing.T) {
	// amount=1000 under OUR: senderFee = max(1000*0.01, 25) = 25,
	// correspondent fee zero, beneficiary receives the full amount.
	got := CalcSWIFTFees(1000, ProfilePercentage, OptionOUR)
	if got.SenderFee != 25 {
		t.Errorf("SenderFee = %v, expected 25", got.SenderFee)
	}
	if got.CorrespondentFee != 0 {
		t.Errorf("CorrespondentFee = %v, expected 0", got.CorrespondentFee)
	}
	if got.BeneficiaryReceived != 1000 {
		t.Errorf("BeneficiaryReceived = %v, expected 1000", got.BeneficiaryReceived)
	}
	if got.Note == "" {
		t.Errorf("expected an OUR note on the percentage profile")
	}
}

func TestCalcSWIFTFeesFlatPercent(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		option    CostOption
		senderFee float64
	}{
		{name: "Floor applies", amount: 500, option: OptionSHA, senderFee: 9},
		{name: "One percent", amount: 2000, option: OptionSHA, senderFee: 20},
		{name: "OUR surcharge on floor", amount: 500, option: OptionOUR, senderFee: 24},
		{name: "OUR surcharge on percentage", amount: 2000, option: OptionOUR, senderFee: 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcSWIFTFees(tt.amount, ProfileFlatPercent, tt.option)
			if got.SenderFee != tt.senderFee {
				t.Errorf("SenderFee = %v, expected %v", got.SenderFee, tt.senderFee)
			}
		})
	}
}

func TestCalcSWIFTFeesSliding(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		option    CostOption
		senderFee float64
	}{
		{name: "First bracket", amount: 800, option: OptionSHA, senderFee: 10},
		{name: "Second bracket", amount: 3000, option: OptionSHA, senderFee: 20},
		{name: "0.35 percent bracket", amount: 10000, option: OptionSHA, senderFee: 35},
		{name: "0.3 percent bracket", amount: 50000, option: OptionSHA, senderFee: 150},
		{name: "0.25 percent bracket", amount: 200000, option: OptionSHA, senderFee: 500},
		{name: "OUR adds flat surcharge", amount: 10000, option: OptionOUR, senderFee: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcSWIFTFees(tt.amount, ProfileSliding, tt.option)
			if got.SenderFee != tt.senderFee {
				t.Errorf("SenderFee = %v, expected %v", got.SenderFee, tt.senderFee)
			}
		})
	}
}

func TestSWIFTOutlayNeverBelowReceived(t *testing.T) {
	// For every profile and option the sender always pays at least what the
	// beneficiary receives.
	amounts := []float64{1, 250, 1000, 5000, 20000, 100000, 250000}
	for _, profile := range Profiles() {
		for _, option := range Options() {
			for _, amount := range amounts {
				got := CalcSWIFTFees(amount, profile, option)
				if got.SenderTotalOutlay-got.BeneficiaryReceived < 0 {
					t.Errorf("%s/%s amount %v: outlay %v < received %v",
						profile, option, amount, got.SenderTotalOutlay, got.BeneficiaryReceived)
				}
			}
		}
	}
}

func TestCalcSWIFTFeesUnknownProfileFallsBack(t *testing.T) {
	got := CalcSWIFTFees(500, BankProfile("Nonexistent"), OptionSHA)
	want := CalcSWIFTFees(500, ProfileGeneric, OptionSHA)
	if got != want {
		t.Errorf("unknown profile = %+v, expected generic %+v", got, want)
	}
}
