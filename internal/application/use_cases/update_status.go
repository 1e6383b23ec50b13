package use_cases

import (
	"context"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
)

type UpdateStatusUseCase struct {
	repo  domain.SongRequestRepository
	guard adminGuard
}

func NewUpdateStatusUseCase(repo domain.SongRequestRepository, adminSecret string) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		repo:  repo,
		guard: adminGuard{secret: adminSecret},
	}
}

// Execute allows pending and played in either direction.
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, id uint, status domain.RequestStatus, adminSecret string) error {
	if err := uc.guard.authorize(adminSecret); err != nil {
		return err
	}
	if !domain.ValidRequestStatuses[status] {
		return apperrors.ErrInvalidSongRequest("status must be pending or played")
	}

	ok, err := uc.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return apperrors.ErrInternal().WithCause(err)
	}
	if !ok {
		return apperrors.ErrSongRequestNotFound()
	}
	return nil
}
