package loan

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("loan not found")
	// Employee-role actors may only request loans for themselves.
	ErrEmployeeNotAuthorized = errors.New("employee not authorized to request a loan for another employee")
	// Token company id must match the employee's current company.
	ErrEmployeeCompanyMismatch = errors.New("employee does not belong to the acting user's company")
	// PENDING loans only may be edited.
	ErrLoanNotEditable = errors.New("only PENDING loans can be modified")
)

// CompanyNotPartnerError rejects loan issuance for non-partner companies.
type CompanyNotPartnerError struct {
	CompanyName string
}

func (e *CompanyNotPartnerError) Error() string {
	return fmt.Sprintf("company %s is not a partner; its employees cannot request loans", e.CompanyName)
}
