package company

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("company not found")
	ErrDuplicateCNPJ = errors.New("company with this CNPJ already exists")
)

type Company struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	CompanyID string `gorm:"column:company_id;type:char(32);not null;uniqueIndex:ux_companies_company_id"`
	Name      string `gorm:"column:name;size:255;not null"`
	LegalName string `gorm:"column:legal_name;size:255"`
	Email     string `gorm:"column:email;size:255;index"`
	// National registration id, digits only
	CNPJ string `gorm:"column:cnpj;type:char(14);not null;uniqueIndex:ux_companies_cnpj"`
	// Gates all loan issuance for this company's employees
	IsPartner bool      `gorm:"column:is_partner;not null;default:false"`
	Password  string    `gorm:"column:password;size:255" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Company) TableName() string { return "companies" }
