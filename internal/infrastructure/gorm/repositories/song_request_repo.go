package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/mirola777/songboard/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SongRequestRepo struct {
	db *gorm.DB
}

func NewSongRequestRepo(db *gorm.DB) domain.SongRequestRepository {
	return &SongRequestRepo{db: db}
}

func (r *SongRequestRepo) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *SongRequestRepo) Create(ctx context.Context, request *domain.SongRequest) error {
	return r.conn(ctx).Create(request).Error
}

func (r *SongRequestRepo) FindByID(ctx context.Context, id uint) (*domain.SongRequest, error) {
	var request domain.SongRequest
	err := r.conn(ctx).Where("id = ?", id).First(&request).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns the play queue: paid or promoted requests first, newest first within a tier.
func (r *SongRequestRepo) List(ctx context.Context) ([]domain.SongRequest, error) {
	requests := make([]domain.SongRequest, 0)
	err := r.conn(ctx).
		Order("priority DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&requests).Error
	return requests, err
}

func (r *SongRequestRepo) UpdateStatus(ctx context.Context, id uint, status domain.RequestStatus) (bool, error) {
	result := r.conn(ctx).
		Model(&domain.SongRequest{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected > 0, result.Error
}

// UpdatePriority never drops a paid request below priority 1.
func (r *SongRequestRepo) UpdatePriority(ctx context.Context, id uint, priority int) (bool, error) {
	result := r.conn(ctx).
		Model(&domain.SongRequest{}).
		Where("id = ?", id).
		Update("priority", gorm.Expr(
			"CASE WHEN payment_status = ? AND ? < 1 THEN 1 ELSE ? END",
			domain.PaymentStatusPaid, priority, priority,
		))
	return result.RowsAffected > 0, result.Error
}

// MarkPaid is idempotent; payment_time keeps the first confirmation.
func (r *SongRequestRepo) MarkPaid(ctx context.Context, id uint, amount decimal.Decimal, paidAt time.Time) (bool, error) {
	result := r.conn(ctx).
		Model(&domain.SongRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": domain.PaymentStatusPaid,
			"payment_amount": amount,
			"priority":       1,
			"payment_time":   gorm.Expr("COALESCE(payment_time, ?)", paidAt),
		})
	return result.RowsAffected > 0, result.Error
}

func (r *SongRequestRepo) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.conn(ctx).Where("id = ?", id).Delete(&domain.SongRequest{})
	return result.RowsAffected > 0, result.Error
}
