package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	authDomain "payroll-loan-backend/internal/domain/auth"
	companyDomain "payroll-loan-backend/internal/domain/company"
	employeeDomain "payroll-loan-backend/internal/domain/employee"
	loanDomain "payroll-loan-backend/internal/domain/loan"
	paymentDomain "payroll-loan-backend/internal/domain/payment"
	"payroll-loan-backend/internal/usecase/credit"
)

// writeDomainError maps domain errors to HTTP responses. Business rejections
// carry their explanatory message through verbatim so the caller never has to
// re-derive thresholds.
func writeDomainError(c echo.Context, err error) error {
	var (
		notPartner       *loanDomain.CompanyNotPartnerError
		exceedsMargin    *credit.ExceedsConsignableMarginError
		insufficient     *credit.InsufficientScoreError
		alreadyProcessed *paymentDomain.LoanAlreadyProcessedError
		processing       *paymentDomain.ProcessingError
	)

	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, employeeDomain.ErrNotFound),
		errors.Is(err, companyDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, loanDomain.ErrEmployeeNotAuthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, authDomain.ErrInvalidCredentials),
		errors.Is(err, authDomain.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})

	case errors.Is(err, employeeDomain.ErrDuplicateCPF),
		errors.Is(err, companyDomain.ErrDuplicateCNPJ):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.As(err, &alreadyProcessed):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.As(err, &notPartner),
		errors.As(err, &exceedsMargin),
		errors.As(err, &insufficient),
		errors.As(err, &processing),
		errors.Is(err, loanDomain.ErrEmployeeCompanyMismatch),
		errors.Is(err, loanDomain.ErrLoanNotEditable):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
