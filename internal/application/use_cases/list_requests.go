package use_cases

import (
	"context"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
)

type ListRequestsUseCase struct {
	repo domain.SongRequestRepository
}

func NewListRequestsUseCase(repo domain.SongRequestRepository) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		repo: repo,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context) ([]domain.SongRequest, error) {
	requests, err := uc.repo.List(ctx)
	if err != nil {
		return nil, apperrors.ErrInternal().WithCause(err)
	}
	return requests, nil
}
