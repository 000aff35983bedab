package mysql

import (
	"context"

	"gorm.io/gorm"

	companyDomain "payroll-loan-backend/internal/domain/company"
)

type CompanyRepository struct{ db *gorm.DB }

func NewCompanyRepository(db *gorm.DB) *CompanyRepository { return &CompanyRepository{db: db} }

func (r *CompanyRepository) Create(ctx context.Context, c *companyDomain.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CompanyRepository) Save(ctx context.Context, c *companyDomain.Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CompanyRepository) Delete(ctx context.Context, c *companyDomain.Company) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

func (r *CompanyRepository) GetByCompanyID(ctx context.Context, companyID string) (*companyDomain.Company, error) {
	var out companyDomain.Company
	res := r.db.WithContext(ctx).Where("company_id = ?", companyID).First(&out)
	return &out, res.Error
}

func (r *CompanyRepository) GetByCNPJ(ctx context.Context, cnpj string) (*companyDomain.Company, error) {
	var out companyDomain.Company
	res := r.db.WithContext(ctx).Where("cnpj = ?", cnpj).First(&out)
	return &out, res.Error
}

func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*companyDomain.Company, error) {
	var out companyDomain.Company
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *CompanyRepository) List(ctx context.Context) ([]companyDomain.Company, error) {
	var out []companyDomain.Company
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}
