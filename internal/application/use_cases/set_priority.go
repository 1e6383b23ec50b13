package use_cases

import (
	"context"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
)

type SetPriorityUseCase struct {
	repo  domain.SongRequestRepository
	guard adminGuard
}

func NewSetPriorityUseCase(repo domain.SongRequestRepository, adminSecret string) *SetPriorityUseCase {
	return &SetPriorityUseCase{
		repo:  repo,
		guard: adminGuard{secret: adminSecret},
	}
}

func (uc *SetPriorityUseCase) Execute(ctx context.Context, id uint, priority int, adminSecret string) error {
	if err := uc.guard.authorize(adminSecret); err != nil {
		return err
	}
	if priority < 0 {
		return apperrors.ErrInvalidSongRequest("priority must not be negative")
	}

	ok, err := uc.repo.UpdatePriority(ctx, id, priority)
	if err != nil {
		return apperrors.ErrInternal().WithCause(err)
	}
	if !ok {
		return apperrors.ErrSongRequestNotFound()
	}
	return nil
}
