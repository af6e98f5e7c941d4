package testutil

// Common application fixture values shared across packages.
const (
	TestApplicationID = "APP-123"
	TestRegion        = "CA"
	TestProduct       = "smb_term"
)
