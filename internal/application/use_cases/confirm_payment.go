package use_cases

import (
	"context"
	"time"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
	"github.com/mirola777/songboard/internal/utils/orderid"
	"github.com/shopspring/decimal"
)

type ConfirmPaymentUseCase struct {
	repo    domain.SongRequestRepository
	gateway domain.PaymentGateway
	cache   domain.PaymentStatusCache
	now     func() time.Time
}

func NewConfirmPaymentUseCase(
	repo domain.SongRequestRepository,
	gateway domain.PaymentGateway,
	cache domain.PaymentStatusCache,
) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		repo:    repo,
		gateway: gateway,
		cache:   cache,
		now:     time.Now,
	}
}

// Execute applies a gateway notification. Replays of the same notification
// leave the row as the first one did.
func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, params map[string]string) (*domain.ConfirmationResult, error) {
	if !uc.gateway.VerifyCallback(params) {
		return nil, apperrors.ErrInvalidSignature()
	}
	if status := params["trade_status"]; status != domain.TradeStatusSuccess {
		return nil, apperrors.ErrPaymentNotSuccessful(status)
	}

	id, err := orderid.Parse(params["out_trade_no"])
	if err != nil {
		return nil, apperrors.ErrInvalidOrderID(params["out_trade_no"]).WithCause(err)
	}

	amount, err := decimal.NewFromString(params["money"])
	if err != nil || !amount.IsPositive() {
		return nil, apperrors.ErrInvalidPaymentAmount(params["money"])
	}

	paidAt := uc.now()
	ok, err := uc.repo.MarkPaid(ctx, id, amount, paidAt)
	if err != nil {
		return nil, apperrors.ErrInternal().WithCause(err)
	}
	if !ok {
		return nil, apperrors.ErrSongRequestNotFound()
	}
	uc.cache.MarkPaid(id)

	return &domain.ConfirmationResult{
		RequestID: id,
		Amount:    amount,
		PaidAt:    paidAt,
	}, nil
}
