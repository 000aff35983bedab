package auth

import "errors"

const (
	UserTypeEmployee = "employee"
	UserTypeCompany  = "company"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// User is the authenticated principal carried on each request.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	// Set for employee users only
	CompanyID string `json:"company_id,omitempty"`
}
