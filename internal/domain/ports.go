package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrCatalogTrackNotFound = errors.New("catalog track not found")
	ErrInvalidPayMethod     = errors.New("invalid pay method")
)

// SongRequestRepository mutators report whether a row matched the id.
type SongRequestRepository interface {
	Create(ctx context.Context, request *SongRequest) error
	FindByID(ctx context.Context, id uint) (*SongRequest, error)
	List(ctx context.Context) ([]SongRequest, error)
	UpdateStatus(ctx context.Context, id uint, status RequestStatus) (bool, error)
	UpdatePriority(ctx context.Context, id uint, priority int) (bool, error)
	MarkPaid(ctx context.Context, id uint, amount decimal.Decimal, paidAt time.Time) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type CatalogClient interface {
	SearchByName(ctx context.Context, text string) ([]Track, error)
	GetByID(ctx context.Context, trackID string) (*Track, error)
}

type PaymentGateway interface {
	BuildPaymentForm(order PaymentOrder) (string, error)
	VerifyCallback(params map[string]string) bool
}

type PaymentStatusCache interface {
	Get(requestID uint) (PaymentStatus, bool)
	MarkPaid(requestID uint)
	Forget(requestID uint)
}
