package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"payroll-loan-backend/internal/domain/payment"
	"payroll-loan-backend/pkg/id"
)

// statusApproved is the gateway's approval verdict; any other status string
// means the payment was rejected.
const statusApproved = "aprovado"

type PaymentConfig struct {
	URL        string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{
		Timeout:    10 * time.Second,
		MaxRetries: 3,
		RetryDelay: 1 * time.Second,
	}
}

type gatewayResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
}

// PaymentClient drives payment requests through the external gateway with a
// bounded retry loop. Communication failures are retried; a gateway business
// rejection is returned immediately as a successful call with Success=false.
type PaymentClient struct {
	cfg    PaymentConfig
	client *http.Client
	sleep  func(time.Duration)
	log    zerolog.Logger
}

func NewPaymentClient(cfg PaymentConfig, log zerolog.Logger) *PaymentClient {
	def := DefaultPaymentConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = def.MaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = def.RetryDelay
	}
	return &PaymentClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		sleep:  time.Sleep,
		log:    log.With().Str("component", "payment_gateway").Logger(),
	}
}

// WithHTTPClient overrides the HTTP client, for tests.
func (c *PaymentClient) WithHTTPClient(hc *http.Client) *PaymentClient {
	c.client = hc
	return c
}

// WithSleeper overrides the between-attempt delay, for tests.
func (c *PaymentClient) WithSleeper(sleep func(time.Duration)) *PaymentClient {
	c.sleep = sleep
	return c
}

func (c *PaymentClient) ProcessPayment(ctx context.Context, req payment.Request) (*payment.Result, error) {
	correlationID := uuid.NewString()
	log := c.log.With().
		Str("loan_id", req.LoanID).
		Str("correlation_id", correlationID).
		Str("cpf", maskCPF(req.CPF)).
		Logger()

	log.Info().
		Str("employee", req.EmployeeName).
		Str("amount", req.Amount.StringFixed(2)).
		Msg("starting payment processing")

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		resp, raw, err := c.send(ctx, req, correlationID)
		if err != nil {
			lastErr = err
			log.Warn().Err(err).
				Int("attempt", attempt).
				Int("max_attempts", c.cfg.MaxRetries).
				Msg("gateway call failed")
			if attempt < c.cfg.MaxRetries {
				c.sleep(c.cfg.RetryDelay)
			}
			continue
		}

		result := &payment.Result{
			Success:       resp.Status == statusApproved,
			TransactionID: newTransactionID(req.LoanID),
			RawResponse:   raw,
			ProcessedAt:   time.Now().UTC(),
		}
		if result.Success {
			log.Info().Str("transaction_id", result.TransactionID).Msg("payment approved by gateway")
		} else {
			// Business rejection, no retry.
			log.Warn().Str("gateway_status", resp.Status).Msg("payment rejected by gateway")
		}
		return result, nil
	}

	log.Error().Err(lastErr).Int("attempts", c.cfg.MaxRetries).Msg("payment processing failed after all attempts")
	return nil, fmt.Errorf("payment gateway unreachable after %d attempts: %w", c.cfg.MaxRetries, lastErr)
}

func (c *PaymentClient) send(ctx context.Context, pr payment.Request, correlationID string) (*gatewayResponse, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	// Mock gateway takes GET; payload travels as headers for traceability.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "payroll-loan-backend/1.0")
	req.Header.Set("X-Correlation-Id", correlationID)
	req.Header.Set("X-Loan-Id", pr.LoanID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read gateway response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("payment gateway returned status %d: %s", resp.StatusCode, resp.Status)
	}

	var parsed gatewayResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, "", fmt.Errorf("decode gateway response: %w", err)
	}
	return &parsed, string(body), nil
}

// newTransactionID generates the local transaction identifier; the mock
// gateway supplies none of its own.
func newTransactionID(loanID string) string {
	return strings.ToUpper(fmt.Sprintf("TXN_%s_%d_%s", loanID, time.Now().UnixMilli(), id.NewSuffix(6)))
}
