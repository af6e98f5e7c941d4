package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/service"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
)

func TestNewDocumentPolicy(t *testing.T) {
	t.Run("accepts the default catalog", func(t *testing.T) {
		_, err := service.NewDocumentPolicy(service.DefaultCatalog())
		require.NoError(t, err)
	})

	t.Run("rejects a rule without a document id", func(t *testing.T) {
		_, err := service.NewDocumentPolicy([]service.CatalogRule{{Tiers: []string{"HIGH"}}})

		require.Error(t, err)
		assert.True(t, model.IsConfiguration(err))
	})

	t.Run("rejects a rule with an unknown tier", func(t *testing.T) {
		_, err := service.NewDocumentPolicy([]service.CatalogRule{
			{DocumentID: "income_verification", Tiers: []string{"SEVERE"}},
		})

		require.Error(t, err)
		assert.True(t, model.IsConfiguration(err))
	})
}

func TestDocumentPolicy_DocumentsNeeded(t *testing.T) {
	policy, err := service.NewDocumentPolicy(service.DefaultCatalog())
	require.NoError(t, err)

	t.Run("matches tier and reason prefixes", func(t *testing.T) {
		docs := policy.DocumentsNeeded(valueobject.RiskTierHigh, []string{"HIGH_DTI"})

		assert.Equal(t, []string{"income_verification", "debt_obligation_schedule"}, docs)
	})

	t.Run("output order follows the catalog, not the reason order", func(t *testing.T) {
		forward := policy.DocumentsNeeded(valueobject.RiskTierHigh, []string{"HIGH_DTI", "CREDIT_SCORE_LOW"})
		reversed := policy.DocumentsNeeded(valueobject.RiskTierHigh, []string{"CREDIT_SCORE_LOW", "HIGH_DTI"})

		assert.Equal(t, forward, reversed)
		assert.Equal(t, []string{"income_verification", "debt_obligation_schedule", "updated_credit_report"}, forward)
	})

	t.Run("reason codes match prefixes case-insensitively", func(t *testing.T) {
		docs := policy.DocumentsNeeded(valueobject.RiskTierMedium, []string{"high_dti"})

		assert.Contains(t, docs, "income_verification")
	})

	t.Run("returns nothing for a clean low-tier application", func(t *testing.T) {
		assert.Empty(t, policy.DocumentsNeeded(valueobject.RiskTierLow, nil))
	})

	t.Run("tier-gated rules skip lower tiers", func(t *testing.T) {
		docs := policy.DocumentsNeeded(valueobject.RiskTierLow, []string{"HIGH_DTI"})

		// debt_obligation_schedule has no tier gate; income_verification does.
		assert.Equal(t, []string{"debt_obligation_schedule"}, docs)
	})
}

func TestDocumentPolicy_DocumentsForApplication(t *testing.T) {
	policy, err := service.NewDocumentPolicy(service.DefaultCatalog())
	require.NoError(t, err)

	t.Run("self-employed unverified borrower with bare collateral", func(t *testing.T) {
		app := model.LoanApplication{
			ApplicationID: "APP-9",
			Borrower:      map[string]any{"employment_type": "self_employed"},
			Loan:          map[string]any{"collateral_required": true},
			Region:        "CA",
			Product:       "smb_term",
		}

		docs := policy.DocumentsForApplication(app)

		assert.Equal(t, []string{"tax_returns_2y", "income_verification", "collateral_ownership_evidence"}, docs)
	})

	t.Run("verified salaried borrower needs nothing", func(t *testing.T) {
		app := model.LoanApplication{
			ApplicationID: "APP-10",
			Borrower:      map[string]any{"employment_type": "salaried", "income_verified": true},
			Loan:          map[string]any{"collateral_required": true, "collateral_documents": []string{"deed.pdf"}},
			Region:        "CA",
			Product:       "smb_term",
		}

		assert.Empty(t, policy.DocumentsForApplication(app))
	})
}

func TestMergeDocuments(t *testing.T) {
	merged := service.MergeDocuments(
		[]string{"income_verification", "debt_obligation_schedule"},
		[]string{"income_verification", "tax_returns_2y"},
		nil,
		[]string{"", "debt_obligation_schedule"},
	)

	assert.Equal(t, []string{"income_verification", "debt_obligation_schedule", "tax_returns_2y"}, merged)
}
