package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
)

func validApplication() model.LoanApplication {
	return model.LoanApplication{
		ApplicationID: "APP-123",
		Borrower:      map[string]any{"employment_type": "self_employed", "income_verified": true},
		Loan:          map[string]any{"amount": 250000, "collateral_required": true},
		Region:        "CA",
		Product:       "smb_term",
	}
}

func TestLoanApplication_Validate(t *testing.T) {
	t.Run("accepts a well-formed application", func(t *testing.T) {
		require.NoError(t, validApplication().Validate())
	})

	t.Run("accepts empty borrower and loan mappings", func(t *testing.T) {
		app := validApplication()
		app.Borrower = map[string]any{}
		app.Loan = map[string]any{}
		require.NoError(t, app.Validate())
	})

	cases := []struct {
		name   string
		mutate func(*model.LoanApplication)
		field  string
	}{
		{"missing application id", func(a *model.LoanApplication) { a.ApplicationID = "" }, "application_id"},
		{"missing region", func(a *model.LoanApplication) { a.Region = "" }, "region"},
		{"missing product", func(a *model.LoanApplication) { a.Product = "" }, "product"},
		{"nil borrower", func(a *model.LoanApplication) { a.Borrower = nil }, "borrower"},
		{"nil loan", func(a *model.LoanApplication) { a.Loan = nil }, "loan"},
	}
	for _, tc := range cases {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			app := validApplication()
			tc.mutate(&app)

			err := app.Validate()

			require.Error(t, err)
			assert.True(t, model.IsValidation(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestLoanApplication_AttributeHelpers(t *testing.T) {
	app := validApplication()

	employment, ok := app.BorrowerString("employment_type")
	assert.True(t, ok)
	assert.Equal(t, "self_employed", employment)

	_, ok = app.BorrowerString("missing")
	assert.False(t, ok)

	assert.True(t, app.BorrowerBool("income_verified"))
	assert.False(t, app.BorrowerBool("missing"))

	assert.True(t, app.LoanBool("collateral_required"))
	assert.False(t, app.LoanHas("collateral_documents"))

	app.Loan["collateral_documents"] = []string{"deed.pdf"}
	assert.True(t, app.LoanHas("collateral_documents"))
}
