package use_cases

import (
	"errors"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
)

func catalogError(err error) error {
	if errors.Is(err, domain.ErrCatalogTrackNotFound) {
		return apperrors.ErrTrackNotFound()
	}
	return apperrors.ErrCatalogUnavailable().WithCause(err)
}
