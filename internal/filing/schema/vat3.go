package schema

// VAT3 monthly VAT return. The section order is strictly linear; every section
// after VAT_A reveals its detail questions behind its own Yes/No flag. The
// three summary sections of the paper form (M, N, O) are auto-computed and so
// have no schema entries here.

func vat3Sections() map[string]Section {
	sections := []Section{
		{
			ID: "VAT_A",
			Questions: []Question{
				{Field: "kra_pin", Text: "What is your KRA PIN?"},
				{Field: "return_type", Text: "Type of return? (Original/Amended)"},
				{Field: "entity_type", Text: "Entity type? (Head Office/Branch)"},
				{Field: "period_from", Text: "Return period from? (YYYY-MM-DD)"},
				{Field: "period_to", Text: "Return period to? (YYYY-MM-DD)"},
				{Field: "non_resident", Text: "Are you non-resident with no fixed place in Kenya? (Yes/No)"},
			},
		},
		{
			ID: "VAT_B",
			Questions: []Question{
				{Field: "has_16_sales", Text: "Do you have taxable sales at 16% rate? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_16_sales": {
					"Yes": {
						{Field: "sales_registered", Text: "Total sales to VAT-registered customers (KES)?"},
						{Field: "sales_non_registered", Text: "Total sales to non-registered customers (KES)?"},
						{Field: "taxable_value", Text: "Taxable value (KES)?"},
					},
				},
			},
		},
		{
			ID: "VAT_C",
			Questions: []Question{
				{Field: "has_8_sales", Text: "Do you have taxable sales at 8% rate? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_8_sales": {
					"Yes": {
						{Field: "sales_registered", Text: "Total sales to VAT-registered customers (KES)?"},
						{Field: "sales_non_registered", Text: "Total sales to non-registered customers (KES)?"},
						{Field: "taxable_value", Text: "Taxable value (KES)?"},
					},
				},
			},
		},
		{
			ID: "VAT_D",
			Questions: []Question{
				{Field: "has_zero_rated_sales", Text: "Do you have zero-rated sales? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_zero_rated_sales": {
					"Yes": {
						{Field: "category", Text: "Type of sales? (Category A/B/D/F)"},
						{Field: "exemption_cert", Text: "Exemption certificate number? (if applicable)"},
						{Field: "local_value", Text: "Taxable value for local/exemption (KES)?"},
						{Field: "customs_entry", Text: "Custom entry number? (for exports)"},
						{Field: "port_exit", Text: "Port of exit? (for exports)"},
						{Field: "destination", Text: "Destination country? (for exports)"},
						{Field: "export_value", Text: "Taxable value for exports (KES)?"},
					},
				},
			},
		},
		{
			ID: "VAT_E",
			Questions: []Question{
				{Field: "has_exempt_sales", Text: "Do you have exempt sales? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_exempt_sales": {
					"Yes": {
						{Field: "exempt_sales_value", Text: "Sales value (KES)?"},
					},
				},
			},
		},
		{
			ID: "VAT_F",
			Questions: []Question{
				{Field: "has_16_purchases", Text: "Do you have purchases at 16% rate? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_16_purchases": {
					"Yes": {
						{Field: "local_purchases", Text: "Total purchases from VAT-registered suppliers (local) (KES)?"},
						{Field: "import_purchases", Text: "Total purchases from imports (KES)?"},
						{Field: "taxable_value", Text: "Taxable value (KES)?"},
					},
				},
			},
		},
		{
			ID: "VAT_G",
			Questions: []Question{
				{Field: "has_8_purchases", Text: "Do you have purchases at 8% rate? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_8_purchases": {
					"Yes": {
						{Field: "local_purchases", Text: "Total purchases from VAT-registered suppliers (KES)?"},
						{Field: "import_purchases", Text: "Total purchases from imports (KES)?"},
						{Field: "taxable_value", Text: "Taxable value (KES)?"},
					},
				},
			},
		},
		{
			ID: "VAT_H",
			Questions: []Question{
				{Field: "has_zero_rated_purchases", Text: "Do you have zero-rated purchases? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_zero_rated_purchases": {
					"Yes": {
						{Field: "local_purchases", Text: "Total purchases from registered suppliers (KES)?"},
						{Field: "import_purchases", Text: "Total purchases from imports (KES)?"},
						{Field: "taxable_value", Text: "Taxable value (KES)?"},
					},
				},
			},
		},
		{
			ID: "VAT_I",
			Questions: []Question{
				{Field: "has_exempt_purchases", Text: "Do you have exempt purchases? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_exempt_purchases": {
					"Yes": {
						{Field: "registered_purchases", Text: "Total from registered suppliers (KES)?"},
						{Field: "import_purchases", Text: "Total from imports (KES)?"},
						{Field: "no_vat_purchases", Text: "Total where VAT not incurred (KES)?"},
					},
				},
			},
		},
		{
			ID: "VAT_J",
			Questions: []Question{
				{Field: "has_imported_services", Text: "Do you import services from abroad? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_imported_services": {
					"Yes": {
						{Field: "supplier_name", Text: "Name of supplier?"},
						{Field: "service_description", Text: "Description of services?"},
						{Field: "transaction_date", Text: "Transaction date? (YYYY-MM-DD)"},
						{Field: "vat_claimable", Text: "Amount of VAT claimable (KES)?"},
					},
				},
			},
		},
		{
			ID: "VAT_K",
			Questions: []Question{
				{Field: "paid_vat_advance", Text: "Did you pay VAT in advance? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"paid_vat_advance": {
					"Yes": {
						{Field: "advance_payment_reg", Text: "K1 - Advance Payment registration number?"},
						{Field: "advance_payment_date", Text: "K1 - Date of deposit? (YYYY-MM-DD)"},
						{Field: "advance_payment_amount", Text: "K1 - Amount (KES)?"},
						{Field: "self_assessment_reg", Text: "K2 - Self Assessment registration number?"},
						{Field: "self_assessment_date", Text: "K2 - Date of deposit? (YYYY-MM-DD)"},
						{Field: "self_assessment_amount", Text: "K2 - Amount (KES)?"},
						{Field: "credit_adjustment_voucher", Text: "K3 - Credit Adjustment voucher/approval order number?"},
						{Field: "credit_adjustment_date", Text: "K3 - Date?"},
						{Field: "credit_adjustment_amount", Text: "K3 - Amount (KES)?"},
					},
				},
			},
		},
		{
			ID: "VAT_L",
			Questions: []Question{
				{Field: "has_wht_vat", Text: "Do you have withholding VAT certificates? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_wht_vat": {
					"Yes": {
						{Field: "withholder_pin", Text: "PIN of withholder?"},
						{Field: "withholder_name", Text: "Name of withholder?"},
						{Field: "certificate_number", Text: "Certificate number?"},
						{Field: "certificate_date", Text: "Date of certificate? (YYYY-MM-DD)"},
						{Field: "vat_withheld", Text: "Amount of VAT withheld (KES)?"},
					},
				},
			},
		},
	}

	byID := make(map[string]Section, len(sections))
	for _, s := range sections {
		byID[s.ID] = s
	}
	return byID
}

func vat3Transitions() map[string]Rule {
	return map[string]Rule{
		"VAT_A": {Kind: RuleNext, Next: "VAT_B"},
		"VAT_B": {Kind: RuleNext, Next: "VAT_C"},
		"VAT_C": {Kind: RuleNext, Next: "VAT_D"},
		"VAT_D": {Kind: RuleNext, Next: "VAT_E"},
		"VAT_E": {Kind: RuleNext, Next: "VAT_F"},
		"VAT_F": {Kind: RuleNext, Next: "VAT_G"},
		"VAT_G": {Kind: RuleNext, Next: "VAT_H"},
		"VAT_H": {Kind: RuleNext, Next: "VAT_I"},
		"VAT_I": {Kind: RuleNext, Next: "VAT_J"},
		"VAT_J": {Kind: RuleNext, Next: "VAT_K"},
		"VAT_K": {Kind: RuleNext, Next: "VAT_L"},
		"VAT_L": {Kind: RuleTerminal},
	}
}
