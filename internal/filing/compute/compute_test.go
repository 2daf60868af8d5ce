package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	answers := Answers{
		"F": {
			"gross_pay":      "1000000",
			"has_employment": "Yes",
			"allowances":     "",
			"housing_value":  "not numeric",
			"pension_excess": "12345.5",
		},
	}

	assert.Equal(t, 1000000.0, amount(answers, "F", "gross_pay"))
	assert.Equal(t, 12345.5, amount(answers, "F", "pension_excess"))

	t.Run("flags, blanks and garbage read as zero", func(t *testing.T) {
		assert.Zero(t, amount(answers, "F", "has_employment"))
		assert.Zero(t, amount(answers, "F", "allowances"))
		assert.Zero(t, amount(answers, "F", "housing_value"))
	})

	t.Run("missing section and field read as zero", func(t *testing.T) {
		assert.Zero(t, amount(answers, "F", "absent"))
		assert.Zero(t, amount(answers, "ZZ", "gross_pay"))
	})
}

func TestComputeIT1_RefundCase(t *testing.T) {
	answers := Answers{
		"F": {"gross_pay": "1000000"},
		"L": {"insurance_relief": "60000"},
		"M": {"paye_deducted": "150000"},
	}

	result := ComputeIT1(answers)

	assert.Equal(t, 1000000.0, result.TotalIncome)
	assert.Equal(t, 1000000.0, result.TaxableIncome)
	assert.InDelta(t, 237400.0, result.TaxPayable, 0.01)
	assert.InDelta(t, 148600.0, result.TaxAfterReliefs, 0.01)
	assert.Equal(t, 150000.0, result.TotalCredits)
	assert.InDelta(t, -1400.0, result.FinalAmount, 0.01)
	assert.Equal(t, StatusRefundDue, result.Status)
}

func TestComputeIT1_Bands(t *testing.T) {
	cases := []struct {
		name    string
		gross   string
		wantTax float64
	}{
		{"within first band", "200000", 20000},
		{"first band edge", "288000", 28800},
		{"second band", "388000", 53800},
		{"top band", "500000", 87400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ComputeIT1(Answers{"F": {"gross_pay": tc.gross}})
			assert.InDelta(t, tc.wantTax, result.TaxPayable, 0.01)
		})
	}
}

func TestComputeIT1_Deductions(t *testing.T) {
	t.Run("larger of mortgage and capped HOSP applies", func(t *testing.T) {
		result := ComputeIT1(Answers{
			"F": {"gross_pay": "500000"},
			"J": {"interest_paid": "50000"},
			"K": {"hosp_deposit": "120000"}, // capped to 96000, which wins
		})
		assert.Equal(t, 500000.0-96000.0, result.TaxableIncome)
	})

	t.Run("pension excess always deducted", func(t *testing.T) {
		result := ComputeIT1(Answers{
			"F": {"gross_pay": "500000", "pension_excess": "30000"},
			"J": {"interest_paid": "50000"},
		})
		assert.Equal(t, 500000.0-30000.0-50000.0, result.TaxableIncome)
	})

	t.Run("taxable income may go negative", func(t *testing.T) {
		result := ComputeIT1(Answers{
			"F": {"gross_pay": "10000"},
			"J": {"interest_paid": "50000"},
		})
		assert.Equal(t, -40000.0, result.TaxableIncome)
		assert.Zero(t, result.TaxAfterReliefs)
	})
}

func TestComputeIT1_ReliefFloorAndCaps(t *testing.T) {
	t.Run("insurance relief capped", func(t *testing.T) {
		result := ComputeIT1(Answers{
			"F": {"gross_pay": "1000000"},
			"L": {"insurance_relief": "500000"},
		})
		assert.InDelta(t, 237400.0-28800.0-60000.0, result.TaxAfterReliefs, 0.01)
	})

	t.Run("tax after reliefs floored at zero", func(t *testing.T) {
		result := ComputeIT1(Answers{"F": {"gross_pay": "100000"}})
		require.InDelta(t, 10000.0, result.TaxPayable, 0.01)
		assert.Zero(t, result.TaxAfterReliefs)
	})
}

func TestComputeIT1_AllCreditSources(t *testing.T) {
	result := ComputeIT1(Answers{
		"F": {"gross_pay": "1000000"},
		"M": {"paye_deducted": "100"},
		"N": {"amount_paid": "200"},
		"O": {"wht_amount": "300"},
		"P": {"advance_tax_paid": "400"},
		"Q": {"amount_paid": "500"},
		"R": {"dtaa_relief_amount": "600"},
	})
	assert.Equal(t, 2100.0, result.TotalCredits)
	assert.Equal(t, StatusTaxDue, result.Status)
}

func TestComputeVAT3_PayableCase(t *testing.T) {
	answers := Answers{
		"VAT_B": {"taxable_value": "1000000"},
		"VAT_F": {"taxable_value": "600000"},
	}

	result := ComputeVAT3(answers)

	assert.Equal(t, 1000000.0, result.TotalSales)
	assert.InDelta(t, 160000.0, result.TotalOutputVAT, 0.01)
	assert.InDelta(t, 96000.0, result.TotalInputVAT, 0.01)
	assert.InDelta(t, 96000.0, result.DeductibleInputVAT, 0.01)
	assert.InDelta(t, 64000.0, result.NetVAT, 0.01)
	assert.Equal(t, StatusVATPayable, result.Status)
}

func TestComputeVAT3_ExemptApportionment(t *testing.T) {
	// Half the sales are exempt, so half the input VAT is non-deductible.
	result := ComputeVAT3(Answers{
		"VAT_B": {"taxable_value": "500000"},
		"VAT_E": {"exempt_sales_value": "500000"},
		"VAT_F": {"taxable_value": "100000"},
	})

	assert.InDelta(t, 8000.0, result.NonDeductibleInputVAT, 0.01)
	assert.InDelta(t, 8000.0, result.DeductibleInputVAT, 0.01)
}

func TestComputeVAT3_ZeroSalesNoApportionment(t *testing.T) {
	result := ComputeVAT3(Answers{
		"VAT_F": {"taxable_value": "100000"},
	})

	assert.Zero(t, result.TotalSales)
	assert.Zero(t, result.NonDeductibleInputVAT)
	assert.InDelta(t, 16000.0, result.DeductibleInputVAT, 0.01)
	assert.InDelta(t, -16000.0, result.NetVAT, 0.01)
	assert.Equal(t, StatusCreditForward, result.Status)
}

func TestComputeVAT3_CreditsAndPayments(t *testing.T) {
	result := ComputeVAT3(Answers{
		"VAT_B": {"taxable_value": "1000000"},
		"VAT_J": {"vat_claimable": "5000"},
		"VAT_K": {
			"advance_payment_amount":   "10000",
			"self_assessment_amount":   "20000",
			"credit_adjustment_amount": "5000",
		},
		"VAT_L": {"vat_withheld": "15000"},
	})

	assert.InDelta(t, 5000.0, result.DeductibleInputVAT, 0.01)
	assert.InDelta(t, 35000.0, result.VATPaid, 0.01)
	assert.InDelta(t, 15000.0, result.WHTCredits, 0.01)
	// 160000 output - 5000 deductible - 15000 withheld - 35000 paid.
	assert.InDelta(t, 105000.0, result.NetVAT, 0.01)
}
