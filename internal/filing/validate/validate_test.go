package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_KRAPin(t *testing.T) {
	t.Run("accepts well-formed PIN", func(t *testing.T) {
		res := Validate("kra_pin", "A123456789P")
		require.True(t, res.OK)
		assert.Equal(t, "A123456789P", res.Value)
	})

	t.Run("rejects malformed PINs", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"A12345678P",    // eight digits
			"A1234567890P",  // ten digits
			"B123456789P",   // wrong leading anchor
			"A123456789X",   // wrong trailing anchor
			"A123456789P ",  // trailing space
			"a123456789p",   // lowercase
			"A12345678xP",   // non-digit middle
		} {
			res := Validate("kra_pin", raw)
			assert.False(t, res.OK, "expected rejection for %q", raw)
			assert.NotEmpty(t, res.Err)
		}
	})

	t.Run("auxiliary pin fields pass as text", func(t *testing.T) {
		res := Validate("employer_pin", "not-a-pin")
		require.True(t, res.OK)
		assert.Equal(t, "not-a-pin", res.Value)
	})
}

func TestValidate_FlagFieldsBeforeMonetary(t *testing.T) {
	// has_other_income contains the monetary keyword "income" but must be
	// treated as a flag because of its prefix.
	res := Validate("has_other_income", "Yes")
	require.True(t, res.OK)
	assert.Equal(t, "Yes", res.Value)

	res = Validate("did_you_pay_installment", "No")
	require.True(t, res.OK)
	assert.Equal(t, "No", res.Value)
}

func TestValidate_MonetaryFields(t *testing.T) {
	t.Run("sanitizes currency noise", func(t *testing.T) {
		for raw, want := range map[string]string{
			"KES 1,000,000": "1000000",
			"1000000":       "1000000",
			" 12,345.50 ":   "12345.5",
			"KES0":          "0",
		} {
			res := Validate("gross_pay", raw)
			require.True(t, res.OK, "input %q", raw)
			assert.Equal(t, want, res.Value, "input %q", raw)
		}
	})

	t.Run("rejects unparsable amounts", func(t *testing.T) {
		res := Validate("interest_paid", "no digits here")
		assert.False(t, res.OK)
		assert.Equal(t, "Invalid amount format", res.Err)
	})

	t.Run("rejects amounts stripped to nothing", func(t *testing.T) {
		res := Validate("amount_paid", "KES")
		assert.False(t, res.OK)
	})
}

func TestValidate_DateFields(t *testing.T) {
	t.Run("accepts exact shape within bounds", func(t *testing.T) {
		res := Validate("period_from", "2024-01-01")
		require.True(t, res.OK)
		assert.Equal(t, "2024-01-01", res.Value)
	})

	t.Run("no calendar check beyond component bounds", func(t *testing.T) {
		// Day 31 in a 30-day month and Feb 31 both pass.
		assert.True(t, Validate("payment_date", "2024-04-31").OK)
		assert.True(t, Validate("payment_date", "2021-02-31").OK)
	})

	t.Run("rejects out-of-range components", func(t *testing.T) {
		for raw, wantErr := range map[string]string{
			"1899-01-01": "Year must be between 1900 and 2100",
			"2101-01-01": "Year must be between 1900 and 2100",
			"2024-00-01": "Month must be between 1 and 12",
			"2024-13-01": "Month must be between 1 and 12",
			"2024-01-00": "Day must be between 1 and 31",
			"2024-01-32": "Day must be between 1 and 31",
		} {
			res := Validate("cert_date", raw)
			require.False(t, res.OK, "input %q", raw)
			assert.Equal(t, wantErr, res.Err)
		}
	})

	t.Run("rejects wrong shapes", func(t *testing.T) {
		for _, raw := range []string{"2024/01/01", "01-01-2024", "2024-1-1", "yesterday"} {
			assert.False(t, Validate("valid_from", raw).OK, "input %q", raw)
		}
	})
}

func TestValidate_FreeText(t *testing.T) {
	res := Validate("bank_name", "Equity Bank <Nairobi>")
	require.True(t, res.OK)
	assert.Equal(t, "Equity Bank <Nairobi>", res.Value)
}
