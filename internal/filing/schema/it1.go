package schema

// IT1 individual resident income tax return. Question texts are the official
// form wording; field naming follows the validator's conventions (flag
// prefixes, monetary keywords, date keywords).

func it1Sections() map[string]Section {
	sections := []Section{
		{
			ID: "A_PART1",
			Questions: []Question{
				{Field: "kra_pin", Text: "What is your KRA PIN?"},
				{Field: "return_type", Text: "Type of return? (Original/Amended)"},
				{Field: "period_from", Text: "Return period from? (YYYY-MM-DD)"},
				{Field: "period_to", Text: "Return period to? (YYYY-MM-DD)"},
				{Field: "has_other_income", Text: "Do you have income other than employment? (Yes/No)"},
				{Field: "has_partnership_income", Text: "Do you have partnership income? (Yes/No)"},
				{Field: "has_car_benefit", Text: "Has employer provided car? (Yes/No)"},
				{Field: "has_mortgage", Text: "Do you have a mortgage? (Yes/No)"},
				{Field: "has_insurance", Text: "Do you have insurance policy? (Yes/No)"},
				{Field: "has_foreign_income", Text: "Do you earn foreign income? (Yes/No)"},
				{Field: "has_disability", Text: "Do you have disability exemption certificate? (Yes/No)"},
				{Field: "declare_spouse_income", Text: "Do you want to declare spouse's income? (Yes/No)"},
			},
		},
		{
			ID: "A_PART2",
			Questions: []Question{
				{Field: "bank_name", Text: "Bank name?"},
				{Field: "branch_name", Text: "Branch name?"},
				{Field: "city", Text: "City?"},
				{Field: "account_holder_name", Text: "Account holder's name?"},
				{Field: "account_number", Text: "Account number?"},
			},
		},
		{
			ID: "A_PART3",
			Questions: []Question{
				{Field: "is_audited", Text: "Is this return audited? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"is_audited": {
					"Yes": {
						{Field: "auditor_pin", Text: "PIN of auditor?"},
						{Field: "auditor_name", Text: "Name of auditor?"},
						{Field: "audit_date", Text: "Date of audit certificate? (YYYY-MM-DD)"},
					},
				},
			},
		},
		{
			ID: "A_PART6",
			Questions: []Question{
				{Field: "certificate_number", Text: "Exemption certificate number?"},
				{Field: "valid_from", Text: "Valid from date? (YYYY-MM-DD)"},
				{Field: "valid_to", Text: "Valid to date? (YYYY-MM-DD)"},
			},
		},
		{
			ID: "F",
			Questions: []Question{
				{Field: "has_employment_income", Text: "Do you have employment income? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_employment_income": {
					"Yes": {
						{Field: "employer_pin", Text: "PIN of employer?"},
						{Field: "employer_name", Text: "Name of employer?"},
						{Field: "gross_pay", Text: "Gross pay (KES)?"},
						{Field: "allowances", Text: "Allowances and benefits (excluding car/housing) (KES)?"},
						{Field: "car_benefit_value", Text: "Value of car benefit (KES)?"},
						{Field: "housing_value", Text: "Net value of housing (KES)?"},
						{Field: "pension_excess", Text: "Pension if in excess of 300,000 (KES)?"},
					},
				},
			},
		},
		{
			ID: "M",
			Questions: []Question{
				{Field: "employer_pin", Text: "PIN of employer?"},
				{Field: "employer_name", Text: "Name of employer?"},
				{Field: "taxable_salary", Text: "Taxable salary (KES)?"},
				{Field: "tax_payable", Text: "Tax payable on taxable salary (KES)?"},
				{Field: "paye_deducted", Text: "Amount of PAYE deducted (KES)?"},
			},
		},
		{
			ID: "F2",
			Questions: []Question{
				{Field: "has_other_income_types", Text: "Do you have any of these? (Lumpsum/Gratuity/Pension/Arrears/Qualifying Interest/Dividends/Others) (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_other_income_types": {
					"Yes": {
						{Field: "gross_amount", Text: "Gross amount (KES)?"},
						{Field: "tax_deducted", Text: "Tax deducted (KES)?"},
					},
				},
			},
		},
		{
			ID: "H",
			Questions: []Question{
				{Field: "has_estate_income", Text: "Do you receive income from estate/trust/settlement? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_estate_income": {
					"Yes": {
						{Field: "estate_income_amount", Text: "Amount of share of income (KES)?"},
					},
				},
			},
		},
		{
			ID: "K",
			Questions: []Question{
				{Field: "has_hosp", Text: "Do you have HOSP? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_hosp": {
					"Yes": {
						{Field: "hosp_institution", Text: "Name of HOSP institution?"},
						{Field: "hosp_deposit", Text: "Total deposit for the year (KES)? (Max 96,000)"},
					},
				},
			},
		},
		{
			ID: "N",
			Questions: []Question{
				{Field: "paid_installment_tax", Text: "Did you pay installment tax? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"paid_installment_tax": {
					"Yes": {
						{Field: "payment_reg_number", Text: "Payment registration number?"},
						{Field: "payment_date", Text: "Date of payment? (YYYY-MM-DD)"},
						{Field: "amount_paid", Text: "Amount paid (KES)?"},
					},
				},
			},
		},
		{
			ID: "O",
			Questions: []Question{
				{Field: "has_wht_credits", Text: "Do you have withholding tax credits? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_wht_credits": {
					"Yes": {
						{Field: "withholder_pin", Text: "PIN of withholder?"},
						{Field: "withholder_name", Text: "Name of withholder?"},
						{Field: "wht_cert_number", Text: "WHT certificate number?"},
						{Field: "cert_date", Text: "Date of certificate? (YYYY-MM-DD)"},
						{Field: "wht_amount", Text: "Amount of WHT (KES)?"},
					},
				},
			},
		},
		{
			ID: "P",
			Questions: []Question{
				{Field: "has_commercial_vehicle", Text: "Do you have commercial vehicle? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"has_commercial_vehicle": {
					"Yes": {
						{Field: "vehicle_reg_number", Text: "Vehicle registration number?"},
						{Field: "advance_tax_paid", Text: "Amount of advance tax paid (KES)?"},
						{Field: "payment_date", Text: "Payment date? (YYYY-MM-DD)"},
					},
				},
			},
		},
		{
			ID: "Q",
			Questions: []Question{
				{Field: "paid_income_tax_advance", Text: "Did you pay income tax in advance? (Yes/No)"},
			},
			Conditional: map[string]map[string][]Question{
				"paid_income_tax_advance": {
					"Yes": {
						{Field: "payment_reg_number", Text: "Payment registration number?"},
						{Field: "deposit_date", Text: "Date of deposit? (YYYY-MM-DD)"},
						{Field: "amount_paid", Text: "Amount paid (KES)?"},
					},
				},
			},
		},
		{
			ID: "J",
			Questions: []Question{
				{Field: "lender_name", Text: "Lender name?"},
				{Field: "interest_paid", Text: "Amount of interest paid during year (KES)?"},
			},
		},
		{
			ID: "L",
			Questions: []Question{
				{Field: "insurance_company", Text: "Insurance company name?"},
				{Field: "premium_paid", Text: "Premium paid (KES)?"},
				{Field: "insurance_relief", Text: "Amount of insurance relief? (Max 60,000)"},
			},
		},
		{
			ID: "R",
			Questions: []Question{
				{Field: "foreign_country", Text: "Country of foreign income?"},
				{Field: "dtaa_relief_amount", Text: "Amount of tax relief under DTAA (KES)?"},
			},
		},
	}

	byID := make(map[string]Section, len(sections))
	for _, s := range sections {
		byID[s.ID] = s
	}
	return byID
}

// it1Transitions encodes the IT1 workflow: the A parts in order, a disability
// branch, employment gating the PAYE section, the fixed middle run, then the
// optional-section queue built from the A_PART1 trigger flags.
func it1Transitions() map[string]Rule {
	optional := []QueueEntry{
		{SectionID: "J", LookupSection: "A_PART1", FlagField: "has_mortgage"},
		{SectionID: "L", LookupSection: "A_PART1", FlagField: "has_insurance"},
		{SectionID: "R", LookupSection: "A_PART1", FlagField: "has_foreign_income"},
	}
	return map[string]Rule{
		"A_PART1": {Kind: RuleNext, Next: "A_PART2"},
		"A_PART2": {Kind: RuleNext, Next: "A_PART3"},
		"A_PART3": {Kind: RuleBranch, LookupSection: "A_PART1", FlagField: "has_disability", IfYes: "A_PART6", IfNo: "F"},
		"A_PART6": {Kind: RuleNext, Next: "F"},
		"F":       {Kind: RuleBranch, LookupSection: "F", FlagField: "has_employment_income", IfYes: "M", IfNo: "F2"},
		"M":       {Kind: RuleNext, Next: "F2"},
		"F2":      {Kind: RuleNext, Next: "H"},
		"H":       {Kind: RuleNext, Next: "K"},
		"K":       {Kind: RuleNext, Next: "N"},
		"N":       {Kind: RuleNext, Next: "O"},
		"O":       {Kind: RuleNext, Next: "P"},
		"P":       {Kind: RuleNext, Next: "Q"},
		"Q":       {Kind: RuleQueue, Entries: optional},
		"J":       {Kind: RulePop},
		"L":       {Kind: RulePop},
		"R":       {Kind: RulePop},
	}
}
