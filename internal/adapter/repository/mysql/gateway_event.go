package mysql

import (
	"context"

	"gorm.io/gorm"

	paymentDomain "payroll-loan-backend/internal/domain/payment"
)

type GatewayEventRepository struct{ db *gorm.DB }

func NewGatewayEventRepository(db *gorm.DB) *GatewayEventRepository {
	return &GatewayEventRepository{db: db}
}

func (r *GatewayEventRepository) Create(ctx context.Context, ev *paymentDomain.GatewayEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *GatewayEventRepository) ListByLoanID(ctx context.Context, loanID string) ([]paymentDomain.GatewayEvent, error) {
	var out []paymentDomain.GatewayEvent
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("received_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
