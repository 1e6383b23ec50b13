package use_cases

import (
	"context"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
)

type GetPaymentStatusUseCase struct {
	repo  domain.SongRequestRepository
	cache domain.PaymentStatusCache
}

func NewGetPaymentStatusUseCase(repo domain.SongRequestRepository, cache domain.PaymentStatusCache) *GetPaymentStatusUseCase {
	return &GetPaymentStatusUseCase{
		repo:  repo,
		cache: cache,
	}
}

// Execute answers from the cache when the request is already known paid.
func (uc *GetPaymentStatusUseCase) Execute(ctx context.Context, id uint) (domain.PaymentStatus, error) {
	if status, ok := uc.cache.Get(id); ok {
		return status, nil
	}

	request, err := uc.find(ctx, id)
	if err != nil {
		return "", err
	}
	if request.PaymentStatus == domain.PaymentStatusPaid {
		uc.cache.MarkPaid(id)
	}
	return request.PaymentStatus, nil
}

// Summary always reads the store so the amount is current.
func (uc *GetPaymentStatusUseCase) Summary(ctx context.Context, id uint) (*domain.PaymentSummary, error) {
	request, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.PaymentSummary{
		PaymentStatus: request.PaymentStatus,
		PaymentAmount: request.PaymentAmount,
	}, nil
}

func (uc *GetPaymentStatusUseCase) find(ctx context.Context, id uint) (*domain.SongRequest, error) {
	request, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrInternal().WithCause(err)
	}
	if request == nil {
		return nil, apperrors.ErrSongRequestNotFound()
	}
	return request, nil
}
