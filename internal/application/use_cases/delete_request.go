package use_cases

import (
	"context"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
)

type DeleteRequestUseCase struct {
	repo  domain.SongRequestRepository
	cache domain.PaymentStatusCache
	guard adminGuard
}

func NewDeleteRequestUseCase(
	repo domain.SongRequestRepository,
	cache domain.PaymentStatusCache,
	adminSecret string,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		repo:  repo,
		cache: cache,
		guard: adminGuard{secret: adminSecret},
	}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, id uint, adminSecret string) error {
	if err := uc.guard.authorize(adminSecret); err != nil {
		return err
	}

	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.ErrInternal().WithCause(err)
	}
	if !ok {
		return apperrors.ErrSongRequestNotFound()
	}
	uc.cache.Forget(id)
	return nil
}
