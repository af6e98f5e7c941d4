package model

// ---------------------------------------------------------------------------
// LoanApplication – immutable input payload
// ---------------------------------------------------------------------------

// LoanApplication is the input to one risk assessment. Borrower and Loan are
// open-schema mappings: attribute names and value types are owned by the
// upstream case-management system, not by this service.
type LoanApplication struct {
	ApplicationID string         `json:"application_id"`
	Borrower      map[string]any `json:"borrower"`
	Loan          map[string]any `json:"loan"`
	Region        string         `json:"region"`
	Product       string         `json:"product"`
	Context       map[string]any `json:"context,omitempty"`
}

// Validate checks the input shape: application_id, region and product
// non-empty, borrower and loan non-nil (empty mappings are fine).
func (a LoanApplication) Validate() error {
	if a.ApplicationID == "" {
		return NewValidationError("application_id", "must be a non-empty string")
	}
	if a.Region == "" {
		return NewValidationError("region", "must be a non-empty string")
	}
	if a.Product == "" {
		return NewValidationError("product", "must be a non-empty string")
	}
	if a.Borrower == nil {
		return NewValidationError("borrower", "must be a mapping (may be empty)")
	}
	if a.Loan == nil {
		return NewValidationError("loan", "must be a mapping (may be empty)")
	}
	return nil
}

// BorrowerString returns a borrower attribute as a string, with ok=false when
// the attribute is absent or not a string.
func (a LoanApplication) BorrowerString(key string) (string, bool) {
	v, ok := a.Borrower[key].(string)
	return v, ok
}

// BorrowerBool returns a borrower attribute as a bool; absent or non-bool
// values read as false.
func (a LoanApplication) BorrowerBool(key string) bool {
	v, _ := a.Borrower[key].(bool)
	return v
}

// LoanBool returns a loan attribute as a bool; absent or non-bool values read
// as false.
func (a LoanApplication) LoanBool(key string) bool {
	v, _ := a.Loan[key].(bool)
	return v
}

// LoanHas reports whether a loan attribute is present and non-nil.
func (a LoanApplication) LoanHas(key string) bool {
	v, ok := a.Loan[key]
	return ok && v != nil
}
