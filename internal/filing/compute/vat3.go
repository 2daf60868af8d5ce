package compute

const (
	vatStandardRate = 0.16
	vatReducedRate  = 0.08
)

// VAT3Status tags the direction of the net position.
type VAT3Status string

const (
	StatusVATPayable    VAT3Status = "VAT_PAYABLE"
	StatusCreditForward VAT3Status = "CREDIT_CARRIED_FORWARD"
)

// VAT3Result mirrors the three auto-computed summary sections of the return:
// sales, purchases and the final VAT due calculation.
type VAT3Result struct {
	TaxableSales   float64 `json:"taxable_sales"`
	ZeroRatedSales float64 `json:"zero_rated_sales"`
	ExemptSales    float64 `json:"exempt_sales"`
	TotalSales     float64 `json:"total_sales"`
	OutputVAT16    float64 `json:"output_vat_16"`
	OutputVAT8     float64 `json:"output_vat_8"`
	TotalOutputVAT float64 `json:"total_output_vat"`

	TaxablePurchases   float64 `json:"taxable_purchases"`
	ZeroRatedPurchases float64 `json:"zero_rated_purchases"`
	ExemptPurchases    float64 `json:"exempt_purchases"`
	TotalPurchases     float64 `json:"total_purchases"`
	InputVAT16         float64 `json:"input_vat_16"`
	InputVAT8          float64 `json:"input_vat_8"`
	TotalInputVAT      float64 `json:"total_input_vat"`

	ImportedServicesVAT   float64    `json:"imported_services_vat"`
	NonDeductibleInputVAT float64    `json:"non_deductible_input_vat"`
	DeductibleInputVAT    float64    `json:"deductible_input_vat"`
	VATPayableCredit      float64    `json:"vat_payable_credit"`
	CreditBroughtForward  float64    `json:"credit_brought_forward"`
	WHTCredits            float64    `json:"wht_credits"`
	VATPaid               float64    `json:"vat_paid"`
	NetVAT                float64    `json:"net_vat_payable_credit"`
	Status                VAT3Status `json:"status"`
}

// ComputeVAT3 runs the monthly VAT computation over a completed VAT3 answer
// set. Input VAT is apportioned by the exempt share of total sales: the exempt
// portion is non-deductible, and with zero total sales nothing is apportioned.
// Imported-services VAT is claimable on top of the deductible input VAT.
func ComputeVAT3(answers Answers) VAT3Result {
	sales16 := amount(answers, "VAT_B", "taxable_value")
	sales8 := amount(answers, "VAT_C", "taxable_value")
	zeroRatedSales := amount(answers, "VAT_D", "local_value") + amount(answers, "VAT_D", "export_value")
	exemptSales := amount(answers, "VAT_E", "exempt_sales_value")

	taxableSales := sales16 + sales8
	totalSales := taxableSales + zeroRatedSales + exemptSales

	outputVAT16 := sales16 * vatStandardRate
	outputVAT8 := sales8 * vatReducedRate
	totalOutputVAT := outputVAT16 + outputVAT8

	purchases16 := amount(answers, "VAT_F", "taxable_value")
	purchases8 := amount(answers, "VAT_G", "taxable_value")
	zeroRatedPurchases := amount(answers, "VAT_H", "taxable_value")
	exemptPurchases := amount(answers, "VAT_I", "registered_purchases") +
		amount(answers, "VAT_I", "import_purchases") +
		amount(answers, "VAT_I", "no_vat_purchases")

	taxablePurchases := purchases16 + purchases8
	totalPurchases := taxablePurchases + zeroRatedPurchases + exemptPurchases

	inputVAT16 := purchases16 * vatStandardRate
	inputVAT8 := purchases8 * vatReducedRate
	totalInputVAT := inputVAT16 + inputVAT8

	importedServicesVAT := amount(answers, "VAT_J", "vat_claimable")

	var nonDeductible float64
	if totalSales > 0 {
		nonDeductible = totalInputVAT * (exemptSales / totalSales)
	}
	deductible := totalInputVAT - nonDeductible + importedServicesVAT

	vatPayableCredit := totalOutputVAT - deductible

	// Credit brought forward would come from the previous period's return;
	// there is no prior-period lookup yet.
	creditBroughtForward := 0.0

	whtCredits := amount(answers, "VAT_L", "vat_withheld")
	vatPaid := amount(answers, "VAT_K", "advance_payment_amount") +
		amount(answers, "VAT_K", "self_assessment_amount") +
		amount(answers, "VAT_K", "credit_adjustment_amount")

	netVAT := vatPayableCredit + creditBroughtForward - whtCredits - vatPaid

	status := StatusCreditForward
	if netVAT > 0 {
		status = StatusVATPayable
	}

	return VAT3Result{
		TaxableSales:   taxableSales,
		ZeroRatedSales: zeroRatedSales,
		ExemptSales:    exemptSales,
		TotalSales:     totalSales,
		OutputVAT16:    outputVAT16,
		OutputVAT8:     outputVAT8,
		TotalOutputVAT: totalOutputVAT,

		TaxablePurchases:   taxablePurchases,
		ZeroRatedPurchases: zeroRatedPurchases,
		ExemptPurchases:    exemptPurchases,
		TotalPurchases:     totalPurchases,
		InputVAT16:         inputVAT16,
		InputVAT8:          inputVAT8,
		TotalInputVAT:      totalInputVAT,

		ImportedServicesVAT:   importedServicesVAT,
		NonDeductibleInputVAT: nonDeductible,
		DeductibleInputVAT:    deductible,
		VATPayableCredit:      vatPayableCredit,
		CreditBroughtForward:  creditBroughtForward,
		WHTCredits:            whtCredits,
		VATPaid:               vatPaid,
		NetVAT:                netVAT,
		Status:                status,
	}
}
