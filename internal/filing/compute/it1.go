package compute

// Income tax band edges and reliefs for individual residents, in KES.
const (
	bandOneCeiling = 288000.0
	bandTwoCeiling = 388000.0
	bandOneRate    = 0.10
	bandTwoRate    = 0.25
	bandThreeRate  = 0.30

	personalRelief     = 28800.0
	insuranceReliefCap = 60000.0
	hospDepositCap     = 96000.0
)

// IT1Status tags whether the final amount is owed or refundable.
type IT1Status string

const (
	StatusTaxDue    IT1Status = "TAX_DUE"
	StatusRefundDue IT1Status = "REFUND_DUE"
)

// IT1Result carries every intermediate of the income tax computation so the
// filer sees how the final figure was reached.
type IT1Result struct {
	TotalIncome     float64   `json:"total_income"`
	TaxableIncome   float64   `json:"taxable_income"`
	TaxPayable      float64   `json:"tax_payable"`
	TaxAfterReliefs float64   `json:"tax_after_reliefs"`
	TotalCredits    float64   `json:"total_credits"`
	FinalAmount     float64   `json:"final_tax_due_or_refund"`
	Status          IT1Status `json:"status"`
}

// ComputeIT1 runs the full individual income tax computation over a completed
// IT1 answer set.
//
// Total income is employment income (section F, all components) plus other
// income (F2) and estate income (H). The pension excess is deducted in full;
// the mortgage-interest and HOSP reliefs are alternatives, so only the larger
// of the two applies, with the HOSP deposit capped first. Taxable income is
// not floored at zero but the tax after reliefs is.
func ComputeIT1(answers Answers) IT1Result {
	totalIncome := amount(answers, "F", "gross_pay") +
		amount(answers, "F", "allowances") +
		amount(answers, "F", "car_benefit_value") +
		amount(answers, "F", "housing_value") +
		amount(answers, "F2", "gross_amount") +
		amount(answers, "H", "estate_income_amount")

	pensionDeduction := amount(answers, "F", "pension_excess")
	mortgageInterest := amount(answers, "J", "interest_paid")
	hospDeposit := min(amount(answers, "K", "hosp_deposit"), hospDepositCap)
	reliefDeduction := max(mortgageInterest, hospDeposit)

	taxableIncome := totalIncome - pensionDeduction - reliefDeduction

	taxPayable := bandedTax(taxableIncome)

	insuranceRelief := min(amount(answers, "L", "insurance_relief"), insuranceReliefCap)
	taxAfterReliefs := max(taxPayable-personalRelief-insuranceRelief, 0)

	totalCredits := amount(answers, "M", "paye_deducted") +
		amount(answers, "N", "amount_paid") +
		amount(answers, "O", "wht_amount") +
		amount(answers, "P", "advance_tax_paid") +
		amount(answers, "Q", "amount_paid") +
		amount(answers, "R", "dtaa_relief_amount")

	finalAmount := taxAfterReliefs - totalCredits

	status := StatusRefundDue
	if finalAmount > 0 {
		status = StatusTaxDue
	}

	return IT1Result{
		TotalIncome:     totalIncome,
		TaxableIncome:   taxableIncome,
		TaxPayable:      taxPayable,
		TaxAfterReliefs: taxAfterReliefs,
		TotalCredits:    totalCredits,
		FinalAmount:     finalAmount,
		Status:          status,
	}
}

func bandedTax(taxableIncome float64) float64 {
	switch {
	case taxableIncome <= bandOneCeiling:
		return taxableIncome * bandOneRate
	case taxableIncome <= bandTwoCeiling:
		return bandOneCeiling*bandOneRate + (taxableIncome-bandOneCeiling)*bandTwoRate
	default:
		return bandOneCeiling*bandOneRate +
			(bandTwoCeiling-bandOneCeiling)*bandTwoRate +
			(taxableIncome-bandTwoCeiling)*bandThreeRate
	}
}
