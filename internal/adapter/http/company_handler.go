package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"payroll-loan-backend/internal/usecase/company"
)

type CompanyHandler struct{ uc *company.Usecase }

func NewCompanyHandler(uc *company.Usecase) *CompanyHandler { return &CompanyHandler{uc: uc} }

type createCompanyReq struct {
	Name      string `json:"name" validate:"required"`
	LegalName string `json:"legal_name"`
	Email     string `json:"email" validate:"omitempty,email"`
	CNPJ      string `json:"cnpj" validate:"required,cnpj"`
	IsPartner bool   `json:"is_partner"`
	Password  string `json:"password" validate:"required,min=8"`
}

type updateCompanyReq struct {
	Name      *string `json:"name"`
	LegalName *string `json:"legal_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	CNPJ      *string `json:"cnpj" validate:"omitempty,cnpj"`
	IsPartner *bool   `json:"is_partner"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
}

func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	var req createCompanyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), company.CreateCompanyInput{
		Name:      req.Name,
		LegalName: req.LegalName,
		Email:     req.Email,
		CNPJ:      req.CNPJ,
		IsPartner: req.IsPartner,
		Password:  req.Password,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CompanyHandler) GetCompany(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("company_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CompanyHandler) ListCompanies(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	var req updateCompanyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("company_id"), company.UpdateCompanyInput{
		Name:      req.Name,
		LegalName: req.LegalName,
		Email:     req.Email,
		CNPJ:      req.CNPJ,
		IsPartner: req.IsPartner,
		Password:  req.Password,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CompanyHandler) DeleteCompany(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("company_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "company removed"})
}
