package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"payroll-loan-backend/internal/domain/payment"
)

var txnPattern = regexp.MustCompile(`^TXN_[A-Z0-9]+_\d+_[A-Z0-9]{6}$`)

func paymentReq() payment.Request {
	return payment.Request{
		LoanID:       "abc123",
		EmployeeID:   "e1",
		EmployeeName: "Ana",
		CPF:          "12345678901",
		Amount:       decimal.RequireFromString("1000.00"),
		Installments: 12,
	}
}

func newTestClient(url string, maxRetries int) *PaymentClient {
	return NewPaymentClient(PaymentConfig{
		URL:        url,
		Timeout:    2 * time.Second,
		MaxRetries: maxRetries,
		RetryDelay: time.Millisecond,
	}, zerolog.Nop()).WithSleeper(func(time.Duration) {})
}

func TestProcessPayment_Approved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Correlation-Id") == "" {
			t.Error("missing X-Correlation-Id header")
		}
		if r.Header.Get("X-Loan-Id") != "abc123" {
			t.Errorf("X-Loan-Id = %q", r.Header.Get("X-Loan-Id"))
		}
		_, _ = w.Write([]byte(`{"status":"aprovado"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 3)
	res, err := c.ProcessPayment(context.Background(), paymentReq())
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if !res.Success {
		t.Fatal("want Success=true for aprovado verdict")
	}
	if !txnPattern.MatchString(res.TransactionID) {
		t.Fatalf("transaction id %q does not match TXN_<loan>_<ts>_<rand> shape", res.TransactionID)
	}
	if !strings.Contains(res.TransactionID, strings.ToUpper("abc123")) {
		t.Fatalf("transaction id %q missing loan id", res.TransactionID)
	}
	if !strings.Contains(res.RawResponse, "aprovado") {
		t.Fatalf("raw response not preserved: %q", res.RawResponse)
	}
}

func TestProcessPayment_BusinessRejection_NotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"status":"rejeitado","message":"insufficient funds"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 3)
	res, err := c.ProcessPayment(context.Background(), paymentReq())
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if res.Success {
		t.Fatal("want Success=false for rejection")
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("rejection retried: %d calls, want 1", n)
	}
}

func TestProcessPayment_RetriesCommunicationFailure(t *testing.T) {
	// Two 500s, then approval: the third attempt must succeed.
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"status":"aprovado"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 3)
	res, err := c.ProcessPayment(context.Background(), paymentReq())
	if err != nil {
		t.Fatalf("ProcessPayment after retries: %v", err)
	}
	if !res.Success {
		t.Fatal("want success on third attempt")
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Fatalf("calls = %d, want 3", n)
	}
}

func TestProcessPayment_ExhaustsAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var sleeps int
	c := newTestClient(srv.URL, 3).WithSleeper(func(time.Duration) { sleeps++ })
	_, err := c.ProcessPayment(context.Background(), paymentReq())
	if err == nil {
		t.Fatal("want error after exhausting attempts")
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Fatalf("calls = %d, want 3", n)
	}
	// Sleeps between attempts only, never after the last one.
	if sleeps != 2 {
		t.Fatalf("sleeps = %d, want 2", sleeps)
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Fatalf("error message missing attempt count: %v", err)
	}
}

func TestProcessPayment_MalformedBodyIsCommunicationFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`<html>nope</html>`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2)
	_, err := c.ProcessPayment(context.Background(), paymentReq())
	if err == nil {
		t.Fatal("want error for undecodable body")
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("calls = %d, want retries on decode failure (got %d)", n, n)
	}
}

func TestNewTransactionID_Shape(t *testing.T) {
	a := newTransactionID("deadbeef")
	b := newTransactionID("deadbeef")
	if !txnPattern.MatchString(a) {
		t.Fatalf("bad transaction id %q", a)
	}
	if a == b {
		t.Fatalf("transaction ids must differ: %q", a)
	}
	if !strings.HasPrefix(a, "TXN_DEADBEEF_") {
		t.Fatalf("transaction id %q missing uppercase loan id prefix", a)
	}
}
