package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"payroll-loan-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	result, err := h.uc.ProcessPayment(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) RetryPayment(c echo.Context) error {
	result, err := h.uc.RetryFailedPayment(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) GetPaymentStatus(c echo.Context) error {
	info, err := h.uc.GetPaymentStatus(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *PaymentHandler) ListLoansByStatus(c echo.Context) error {
	loans, err := h.uc.GetLoansByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, loans)
}

// Webhook accepts the gateway callback payload as-is; it is stored verbatim
// and acknowledged, never interpreted.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable body"})
	}
	eventID, err := h.uc.HandleWebhook(c.Request().Context(), body)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"event_id": eventID})
}
