package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM, no MySQL column types) ---

type companySQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	CompanyID string    `gorm:"size:32;column:company_id;uniqueIndex"`
	Name      string    `gorm:"column:name"`
	LegalName string    `gorm:"column:legal_name"`
	Email     string    `gorm:"column:email"`
	CNPJ      string    `gorm:"size:14;column:cnpj;uniqueIndex"`
	IsPartner bool      `gorm:"column:is_partner"`
	Password  string    `gorm:"column:password"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (companySQLite) TableName() string { return "companies" }

type employeeSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	EmployeeID string    `gorm:"size:32;column:employee_id;uniqueIndex"`
	CompanyID  string    `gorm:"size:32;column:company_id"`
	Name       string    `gorm:"column:name"`
	Email      string    `gorm:"column:email"`
	CPF        string    `gorm:"size:11;column:cpf;uniqueIndex"`
	Salary     string    `gorm:"column:salary"`
	Password   string    `gorm:"column:password"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (employeeSQLite) TableName() string { return "employees" }

type loanSQLite struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	LoanID          string    `gorm:"size:32;column:loan_id;uniqueIndex"`
	EmployeeID      string    `gorm:"size:32;column:employee_id"`
	Amount          string    `gorm:"column:amount"`
	Installments    int       `gorm:"column:installments"`
	Status          string    `gorm:"type:text;column:status"` // ← no enum
	TransactionID   string    `gorm:"column:transaction_id"`
	GatewayResponse string    `gorm:"column:gateway_response"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type gatewayEventSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	EventID    string    `gorm:"size:32;column:event_id;uniqueIndex"`
	LoanID     string    `gorm:"size:32;column:loan_id"`
	Payload    string    `gorm:"column:payload"`
	ReceivedAt time.Time `gorm:"column:received_at"`
}

func (gatewayEventSQLite) TableName() string { return "gateway_events" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(&companySQLite{}, &employeeSQLite{}, &loanSQLite{}, &gatewayEventSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
