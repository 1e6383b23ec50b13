package use_cases

import (
	"context"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
	"github.com/mirola777/songboard/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

type SubmitRequestUseCase struct {
	repo          domain.SongRequestRepository
	catalog       domain.CatalogClient
	defaultAmount decimal.Decimal
}

func NewSubmitRequestUseCase(
	repo domain.SongRequestRepository,
	catalog domain.CatalogClient,
	defaultAmount decimal.Decimal,
) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{
		repo:          repo,
		catalog:       catalog,
		defaultAmount: defaultAmount,
	}
}

func (uc *SubmitRequestUseCase) Execute(ctx context.Context, req domain.SubmitRequest) (*domain.SongRequest, error) {
	req = normalizeSubmitRequest(req)
	if err := validateSubmitRequest(req); err != nil {
		return nil, err
	}

	if req.SongTitle == "" {
		track, err := uc.catalog.GetByID(ctx, req.CatalogTrackID)
		if err != nil {
			return nil, catalogError(err)
		}
		req.SongTitle = track.Title
		if req.Artist == "" {
			req.Artist = track.ArtistName
		}
		if req.CoverImageURL == "" {
			req.CoverImageURL = track.CoverImageURL
		}
	}

	request := &domain.SongRequest{
		RequesterNameLocal: req.RequesterNameLocal,
		RequesterNameAlt:   req.RequesterNameAlt,
		SongTitle:          req.SongTitle,
		Artist:             req.Artist,
		CoverImageURL:      req.CoverImageURL,
		Status:             domain.RequestStatusPending,
		Priority:           0,
		PaymentStatus:      domain.PaymentStatusUnpaid,
		PaymentAmount:      uc.defaultAmount,
	}
	if req.CatalogTrackID != "" {
		trackID := req.CatalogTrackID
		request.CatalogTrackID = &trackID
	}

	if err := uc.repo.Create(ctx, request); err != nil {
		return nil, apperrors.ErrInternal().WithCause(err)
	}
	metrics.RecordSubmission()
	return request, nil
}
