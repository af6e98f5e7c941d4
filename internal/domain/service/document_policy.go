package service

import (
	"strings"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// DocumentPolicy – domain service for supporting-document requirements
// ---------------------------------------------------------------------------

// CatalogRule binds a document identifier to the tiers and reason-code
// prefixes that require it. An empty Tiers list means the rule applies to any
// tier; an empty ReasonPrefixes list means no reason code is needed.
type CatalogRule struct {
	DocumentID     string   `yaml:"id"`
	Tiers          []string `yaml:"tiers,omitempty"`
	ReasonPrefixes []string `yaml:"reason_prefixes,omitempty"`
}

// DocumentPolicy decides which supporting documents an assessment must
// request. The catalog is institution-configured; its order defines output
// priority, so results are stable regardless of reason-code input ordering.
type DocumentPolicy struct {
	catalog []CatalogRule
}

// NewDocumentPolicy validates the catalog: document ids non-empty, tier names
// on the ladder.
func NewDocumentPolicy(catalog []CatalogRule) (*DocumentPolicy, error) {
	for _, rule := range catalog {
		if rule.DocumentID == "" {
			return nil, model.NewConfigurationError("document catalog: rule with empty document id")
		}
		for _, tier := range rule.Tiers {
			if _, err := valueobject.NewRiskTier(tier); err != nil {
				return nil, model.NewConfigurationError(
					"document catalog: rule " + rule.DocumentID + ": " + err.Error())
			}
		}
	}

	rules := make([]CatalogRule, len(catalog))
	copy(rules, catalog)
	return &DocumentPolicy{catalog: rules}, nil
}

// DefaultCatalog returns the stock institution catalog used when no policy
// file overrides it.
func DefaultCatalog() []CatalogRule {
	return []CatalogRule{
		{DocumentID: "income_verification", Tiers: []string{"MEDIUM", "HIGH", "DECLINE"}, ReasonPrefixes: []string{"DTI", "HIGH_DTI", "INCOME"}},
		{DocumentID: "debt_obligation_schedule", ReasonPrefixes: []string{"DTI", "HIGH_DTI"}},
		{DocumentID: "updated_credit_report", ReasonPrefixes: []string{"CREDIT"}},
		{DocumentID: "collateral_ownership_evidence", Tiers: []string{"HIGH", "DECLINE"}, ReasonPrefixes: []string{"COLLATERAL"}},
	}
}

// DocumentsNeeded returns the document identifiers required for the given
// tier and reason codes, ordered by catalog priority and de-duplicated. An
// empty result is valid and means no extra documents are required.
func (p *DocumentPolicy) DocumentsNeeded(tier valueobject.RiskTier, reasonCodes []string) []string {
	normalized := make([]string, 0, len(reasonCodes))
	for _, code := range reasonCodes {
		normalized = append(normalized, strings.ToUpper(code))
	}

	var docs []string
	seen := make(map[string]bool)
	for _, rule := range p.catalog {
		if !rule.matches(tier, normalized) {
			continue
		}
		if seen[rule.DocumentID] {
			continue
		}
		seen[rule.DocumentID] = true
		docs = append(docs, rule.DocumentID)
	}
	return docs
}

// DocumentsForApplication returns documents mandated by application
// attributes alone: employment type, unverified income, missing collateral
// evidence.
func (p *DocumentPolicy) DocumentsForApplication(app model.LoanApplication) []string {
	var docs []string

	if employment, ok := app.BorrowerString("employment_type"); ok && employment == "self_employed" {
		docs = append(docs, "tax_returns_2y")
	}
	if !app.BorrowerBool("income_verified") {
		docs = append(docs, "income_verification")
	}
	if app.LoanBool("collateral_required") && !app.LoanHas("collateral_documents") {
		docs = append(docs, "collateral_ownership_evidence")
	}
	return docs
}

func (r CatalogRule) matches(tier valueobject.RiskTier, normalizedReasons []string) bool {
	if len(r.Tiers) > 0 {
		found := false
		for _, t := range r.Tiers {
			if t == tier.String() {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(r.ReasonPrefixes) == 0 {
		return true
	}
	for _, prefix := range r.ReasonPrefixes {
		upper := strings.ToUpper(prefix)
		for _, code := range normalizedReasons {
			if strings.HasPrefix(code, upper) {
				return true
			}
		}
	}
	return false
}

// MergeDocuments combines document lists preserving first-occurrence order.
func MergeDocuments(lists ...[]string) []string {
	var merged []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, doc := range list {
			if doc == "" || seen[doc] {
				continue
			}
			seen[doc] = true
			merged = append(merged, doc)
		}
	}
	return merged
}
