package employee

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"payroll-loan-backend/internal/domain/company"
)

var (
	ErrNotFound     = errors.New("employee not found")
	ErrDuplicateCPF = errors.New("employee with this CPF already registered")
)

type Employee struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	EmployeeID string `gorm:"column:employee_id;type:char(32);not null;uniqueIndex:ux_employees_employee_id"`
	Name       string `gorm:"column:name;size:255;not null"`
	// Tax id, digits only, unique across employees
	CPF   string `gorm:"column:cpf;type:char(11);not null;uniqueIndex:ux_employees_cpf"`
	Email string `gorm:"column:email;size:255;index"`
	// Invariant: salary > 0
	Salary    decimal.Decimal `gorm:"column:salary;type:decimal(18,2);not null"`
	CompanyID string          `gorm:"column:company_id;type:char(32);not null;index:idx_employees_company"`
	Password  string          `gorm:"column:password;size:255" json:"-"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`

	Company *company.Company `gorm:"foreignKey:CompanyID;references:CompanyID"`
}

func (Employee) TableName() string { return "employees" }
