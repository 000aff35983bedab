package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"payroll-loan-backend/internal/usecase/employee"
)

type EmployeeHandler struct{ uc *employee.Usecase }

func NewEmployeeHandler(uc *employee.Usecase) *EmployeeHandler { return &EmployeeHandler{uc: uc} }

type createEmployeeReq struct {
	Name      string          `json:"name" validate:"required"`
	CPF       string          `json:"cpf" validate:"required,cpf"`
	Email     string          `json:"email" validate:"omitempty,email"`
	Salary    decimal.Decimal `json:"salary"`
	CompanyID string          `json:"company_id" validate:"required,hex32"`
	Password  string          `json:"password" validate:"omitempty,min=8"`
}

type updateEmployeeReq struct {
	Name     *string          `json:"name"`
	CPF      *string          `json:"cpf" validate:"omitempty,cpf"`
	Email    *string          `json:"email" validate:"omitempty,email"`
	Salary   *decimal.Decimal `json:"salary"`
	Password *string          `json:"password" validate:"omitempty,min=8"`
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context) error {
	var req createEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if !req.Salary.IsPositive() {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "Salary", Message: "must be greater than 0"}},
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), employee.CreateEmployeeInput{
		Name:      req.Name,
		CPF:       req.CPF,
		Email:     req.Email,
		Salary:    req.Salary,
		CompanyID: req.CompanyID,
		Password:  req.Password,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *EmployeeHandler) GetEmployee(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("employee_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EmployeeHandler) ListEmployees(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *EmployeeHandler) UpdateEmployee(c echo.Context) error {
	var req updateEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("employee_id"), employee.UpdateEmployeeInput{
		Name:     req.Name,
		CPF:      req.CPF,
		Email:    req.Email,
		Salary:   req.Salary,
		Password: req.Password,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EmployeeHandler) DeleteEmployee(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("employee_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "employee removed"})
}
