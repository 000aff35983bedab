package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDomain "payroll-loan-backend/internal/domain/auth"
	employeeDomain "payroll-loan-backend/internal/domain/employee"
	"payroll-loan-backend/internal/testutil/companymock"
	"payroll-loan-backend/internal/testutil/employeemock"
	uc "payroll-loan-backend/internal/usecase/auth"
)

func newAuthHandler(emps *employeemock.Repo) *AuthHandler {
	return NewAuthHandler(uc.NewUsecase(emps, &companymock.Repo{}, "test-secret", time.Hour, zerolog.Nop()))
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestSignIn_Success(t *testing.T) {
	e := newEchoWithValidator()

	emps := &employeemock.Repo{
		GetByEmailFn: func(context.Context, string) (*employeeDomain.Employee, error) {
			return &employeeDomain.Employee{
				EmployeeID: strings.Repeat("e", 32),
				Name:       "Ana",
				Email:      "ana@acme.example",
				CompanyID:  strings.Repeat("c", 32),
				Password:   hashPassword(t, "s3cret-pass"),
			}, nil
		},
	}
	h := newAuthHandler(emps)

	reqBody := map[string]any{"email": "ana@acme.example", "password": "s3cret-pass"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/auth/signin", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SignIn(c); err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var got uc.SignInResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Token == "" {
		t.Fatal("empty token")
	}
	if got.User.UserType != authDomain.UserTypeEmployee {
		t.Fatalf("user_type = %s", got.User.UserType)
	}
}

func TestSignIn_WrongPassword401(t *testing.T) {
	e := newEchoWithValidator()

	emps := &employeemock.Repo{
		GetByEmailFn: func(context.Context, string) (*employeeDomain.Employee, error) {
			return &employeeDomain.Employee{
				EmployeeID: strings.Repeat("e", 32),
				Email:      "ana@acme.example",
				Password:   hashPassword(t, "s3cret-pass"),
			}, nil
		},
	}
	h := newAuthHandler(emps)

	reqBody := map[string]any{"email": "ana@acme.example", "password": "wrong-pass"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/auth/signin", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SignIn(c); err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSignIn_UnknownEmail401(t *testing.T) {
	e := newEchoWithValidator()

	emps := &employeemock.Repo{
		GetByEmailFn: func(context.Context, string) (*employeeDomain.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newAuthHandler(emps)

	reqBody := map[string]any{"email": "ghost@acme.example", "password": "whatever1"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/auth/signin", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SignIn(c); err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestSignIn_MissingFields422(t *testing.T) {
	e := newEchoWithValidator()
	h := newAuthHandler(&employeemock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/auth/signin", mustJSON(map[string]any{"email": "not-an-email"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SignIn(c); err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "Email", "valid email") {
		t.Fatalf("missing Email detail: %+v", er.Details)
	}
	if !containsFieldMsg(er.Details, "Password", "required") {
		t.Fatalf("missing Password detail: %+v", er.Details)
	}
}
