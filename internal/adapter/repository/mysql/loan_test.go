package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	companyDomain "payroll-loan-backend/internal/domain/company"
	employeeDomain "payroll-loan-backend/internal/domain/employee"
	domain "payroll-loan-backend/internal/domain/loan"
	"payroll-loan-backend/pkg/id"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedEmployee(t *testing.T, db *gorm.DB) *employeeDomain.Employee {
	t.Helper()
	co := &companyDomain.Company{
		CompanyID: id.NewID32(),
		Name:      "Acme",
		CNPJ:      "11222333000181",
		IsPartner: true,
	}
	if err := NewCompanyRepository(db).Create(context.Background(), co); err != nil {
		t.Fatalf("seed company: %v", err)
	}
	emp := &employeeDomain.Employee{
		EmployeeID: id.NewID32(),
		Name:       "Ana",
		CPF:        "12345678901",
		Salary:     dec("5000.00"),
		CompanyID:  co.CompanyID,
	}
	if err := NewEmployeeRepository(db).Create(context.Background(), emp); err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return emp
}

func makeLoan(employeeID, amount string) *domain.Loan {
	return &domain.Loan{
		LoanID:       id.NewID32(),
		EmployeeID:   employeeID,
		Amount:       dec(amount),
		Installments: 2,
		Status:       domain.StatusPending,
	}
}

func TestLoanCreateAndGetByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	emp := seedEmployee(t, db)
	l := makeLoan(emp.EmployeeID, "1000.00")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("status = %s, want PENDING", got.Status)
	}
	if !got.Amount.Equal(dec("1000.00")) {
		t.Fatalf("amount = %s, want 1000.00", got.Amount.String())
	}

	if _, err := repo.GetByLoanID(ctx, "does-not-exist"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestLoanGetByLoanIDWithEmployee(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	emp := seedEmployee(t, db)
	l := makeLoan(emp.EmployeeID, "500.00")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByLoanIDWithEmployee(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanIDWithEmployee: %v", err)
	}
	if got.Employee == nil || got.Employee.Name != "Ana" {
		t.Fatalf("employee not preloaded: %+v", got.Employee)
	}
	if got.Employee.Company == nil || got.Employee.Company.Name != "Acme" {
		t.Fatalf("company not preloaded: %+v", got.Employee.Company)
	}
}

func TestLoanTransitionStatus_CAS(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	emp := seedEmployee(t, db)
	l := makeLoan(emp.EmployeeID, "1000.00")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// First CAS wins.
	ok, err := repo.TransitionStatus(ctx, l.LoanID, domain.StatusPending, domain.StatusProcessing)
	if err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}
	if !ok {
		t.Fatal("first transition should affect one row")
	}

	// Second CAS with the same precondition loses: expected status is stale.
	ok, err = repo.TransitionStatus(ctx, l.LoanID, domain.StatusPending, domain.StatusProcessing)
	if err != nil {
		t.Fatalf("TransitionStatus 2: %v", err)
	}
	if ok {
		t.Fatal("stale transition must not affect any row")
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != domain.StatusProcessing {
		t.Fatalf("status = %s, want PROCESSING", got.Status)
	}
}

func TestLoanRecordPaymentOutcome(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	emp := seedEmployee(t, db)
	l := makeLoan(emp.EmployeeID, "1000.00")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repo.RecordPaymentOutcome(ctx, l.LoanID, domain.StatusApproved, "TXN_ABC_1_XYZ123", `{"status":"aprovado"}`)
	if err != nil {
		t.Fatalf("RecordPaymentOutcome: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != domain.StatusApproved {
		t.Fatalf("status = %s", got.Status)
	}
	if got.TransactionID != "TXN_ABC_1_XYZ123" {
		t.Fatalf("transaction id = %s", got.TransactionID)
	}
	if got.GatewayResponse != `{"status":"aprovado"}` {
		t.Fatalf("gateway response = %s", got.GatewayResponse)
	}
}

func TestLoanListByStatus_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	emp := seedEmployee(t, db)
	first := makeLoan(emp.EmployeeID, "100.00")
	second := makeLoan(emp.EmployeeID, "200.00")
	other := makeLoan(emp.EmployeeID, "300.00")
	other.Status = domain.StatusFailed
	for _, l := range []*domain.Loan{first, second, other} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// created_at ties resolve on id DESC: newest insert first
	if got[0].LoanID != second.LoanID || got[1].LoanID != first.LoanID {
		t.Fatalf("order wrong: %s, %s", got[0].LoanID, got[1].LoanID)
	}
	if got[0].Employee == nil {
		t.Fatal("employee not preloaded in listing")
	}
}

func TestLoanSumActiveAmountByEmployee(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	emp := seedEmployee(t, db)

	pending := makeLoan(emp.EmployeeID, "1000.00")
	processing := makeLoan(emp.EmployeeID, "750.50")
	processing.Status = domain.StatusProcessing
	approved := makeLoan(emp.EmployeeID, "400.00")
	approved.Status = domain.StatusApproved // settled, not active
	for _, l := range []*domain.Loan{pending, processing, approved} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	sum, err := repo.SumActiveAmountByEmployee(ctx, emp.EmployeeID)
	if err != nil {
		t.Fatalf("SumActiveAmountByEmployee: %v", err)
	}
	if !sum.Equal(dec("1750.50")) {
		t.Fatalf("sum = %s, want 1750.50", sum.String())
	}
}

func TestLoanSumActiveAmountByEmployee_NoLoans(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	sum, err := repo.SumActiveAmountByEmployee(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("SumActiveAmountByEmployee: %v", err)
	}
	if !sum.IsZero() {
		t.Fatalf("sum = %s, want 0", sum.String())
	}
}

func TestLoanSaveAndDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	emp := seedEmployee(t, db)
	l := makeLoan(emp.EmployeeID, "1000.00")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l.Amount = dec("1200.00")
	l.Installments = 4
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if !got.Amount.Equal(dec("1200.00")) || got.Installments != 4 {
		t.Fatalf("save not applied: %+v", got)
	}

	if err := repo.Delete(ctx, got); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByLoanID(ctx, l.LoanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound after delete, got %v", err)
	}
}
