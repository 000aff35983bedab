package company

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "payroll-loan-backend/internal/domain/company"
	"payroll-loan-backend/pkg/id"
)

type CreateCompanyInput struct {
	Name      string `json:"name"`
	LegalName string `json:"legal_name"`
	Email     string `json:"email"`
	CNPJ      string `json:"cnpj"`
	IsPartner bool   `json:"is_partner"`
	Password  string `json:"password"`
}

type UpdateCompanyInput struct {
	Name      *string `json:"name"`
	LegalName *string `json:"legal_name"`
	Email     *string `json:"email"`
	CNPJ      *string `json:"cnpj"`
	IsPartner *bool   `json:"is_partner"`
	Password  *string `json:"password"`
}

type CompanyDTO struct {
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	LegalName string    `json:"legal_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	CNPJ      string    `json:"cnpj"`
	IsPartner bool      `json:"is_partner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDTO(c *domain.Company) *CompanyDTO {
	return &CompanyDTO{
		CompanyID: c.CompanyID,
		Name:      c.Name,
		LegalName: c.LegalName,
		Email:     c.Email,
		CNPJ:      c.CNPJ,
		IsPartner: c.IsPartner,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type Usecase struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewUsecase(repo domain.Repository, log zerolog.Logger) *Usecase {
	return &Usecase{repo: repo, log: log.With().Str("component", "company_usecase").Logger()}
}

func (u *Usecase) Create(ctx context.Context, in CreateCompanyInput) (*CompanyDTO, error) {
	if _, err := u.repo.GetByCNPJ(ctx, in.CNPJ); err == nil {
		return nil, domain.ErrDuplicateCNPJ
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	c := &domain.Company{
		CompanyID: id.NewID32(),
		Name:      in.Name,
		LegalName: in.LegalName,
		Email:     in.Email,
		CNPJ:      in.CNPJ,
		IsPartner: in.IsPartner,
		Password:  string(hash),
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	u.log.Info().Str("company_id", c.CompanyID).Bool("is_partner", c.IsPartner).Msg("company registered")
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, companyID string) (*CompanyDTO, error) {
	c, err := u.repo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]CompanyDTO, error) {
	companies, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CompanyDTO, 0, len(companies))
	for i := range companies {
		out = append(out, *toDTO(&companies[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, companyID string, in UpdateCompanyInput) (*CompanyDTO, error) {
	c, err := u.repo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if in.CNPJ != nil && *in.CNPJ != c.CNPJ {
		if _, err := u.repo.GetByCNPJ(ctx, *in.CNPJ); err == nil {
			return nil, domain.ErrDuplicateCNPJ
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c.CNPJ = *in.CNPJ
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.LegalName != nil {
		c.LegalName = *in.LegalName
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.IsPartner != nil {
		c.IsPartner = *in.IsPartner
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		c.Password = string(hash)
	}

	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Delete(ctx context.Context, companyID string) error {
	c, err := u.repo.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.repo.Delete(ctx, c)
}
