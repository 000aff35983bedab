package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "payroll-loan-backend/internal/domain/auth"
	"payroll-loan-backend/internal/domain/company"
	"payroll-loan-backend/internal/domain/employee"
)

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

type SignInResult struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// Claims is the JWT payload issued on sign-in.
type Claims struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	UserType  string `json:"user_type"`
	CompanyID string `json:"company_id,omitempty"`
	jwt.RegisteredClaims
}

type Usecase struct {
	employees employee.Repository
	companies company.Repository
	secret    []byte
	ttl       time.Duration
	log       zerolog.Logger
}

func NewUsecase(employees employee.Repository, companies company.Repository, secret string, ttl time.Duration, log zerolog.Logger) *Usecase {
	return &Usecase{
		employees: employees,
		companies: companies,
		secret:    []byte(secret),
		ttl:       ttl,
		log:       log.With().Str("component", "auth_usecase").Logger(),
	}
}

// SignIn verifies the credential and issues an opaque bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (u *Usecase) SignIn(ctx context.Context, in SignInInput) (*SignInResult, error) {
	if in.UserType == "" {
		in.UserType = domain.UserTypeEmployee
	}

	var user domain.User
	var hash string
	switch in.UserType {
	case domain.UserTypeEmployee:
		e, err := u.employees.GetByEmail(ctx, in.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrInvalidCredentials
			}
			return nil, err
		}
		user = domain.User{ID: e.EmployeeID, Name: e.Name, Email: e.Email, UserType: domain.UserTypeEmployee, CompanyID: e.CompanyID}
		hash = e.Password
	case domain.UserTypeCompany:
		c, err := u.companies.GetByEmail(ctx, in.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrInvalidCredentials
			}
			return nil, err
		}
		user = domain.User{ID: c.CompanyID, Name: c.Name, Email: c.Email, UserType: domain.UserTypeCompany}
		hash = c.Password
	default:
		return nil, domain.ErrInvalidCredentials
	}

	if hash == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}

	u.log.Info().Str("user_id", user.ID).Str("user_type", user.UserType).Msg("user signed in")
	return &SignInResult{User: user, Token: token}, nil
}

func (u *Usecase) issueToken(user domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Name:      user.Name,
		Email:     user.Email,
		UserType:  user.UserType,
		CompanyID: user.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}

// VerifyToken parses and validates a bearer token, returning the principal.
func (u *Usecase) VerifyToken(raw string) (*domain.User, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return u.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return &domain.User{
		ID:        claims.Subject,
		Name:      claims.Name,
		Email:     claims.Email,
		UserType:  claims.UserType,
		CompanyID: claims.CompanyID,
	}, nil
}
