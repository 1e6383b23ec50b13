package use_cases

import (
	"context"
	"strings"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
	"github.com/mirola777/songboard/internal/infrastructure/catalog"
)

type SearchTracksUseCase struct {
	catalog domain.CatalogClient
}

func NewSearchTracksUseCase(catalog domain.CatalogClient) *SearchTracksUseCase {
	return &SearchTracksUseCase{
		catalog: catalog,
	}
}

// Execute prefers an explicit track id, then a share link, then a free-text search.
func (uc *SearchTracksUseCase) Execute(ctx context.Context, query domain.TrackQuery) ([]domain.Track, error) {
	trackID := strings.TrimSpace(query.CatalogTrackID)
	if trackID == "" && strings.TrimSpace(query.CatalogURL) != "" {
		id, ok := catalog.ParseTrackURL(query.CatalogURL)
		if !ok {
			return nil, apperrors.ErrInvalidSongRequest("catalogUrl does not point to a track")
		}
		trackID = id
	}

	if trackID != "" {
		track, err := uc.catalog.GetByID(ctx, trackID)
		if err != nil {
			return nil, catalogError(err)
		}
		return []domain.Track{*track}, nil
	}

	name := strings.TrimSpace(query.SongName)
	if name == "" {
		return nil, apperrors.ErrInvalidSongRequest("songName, catalogTrackId or catalogUrl is required")
	}

	tracks, err := uc.catalog.SearchByName(ctx, name)
	if err != nil {
		return nil, catalogError(err)
	}
	return tracks, nil
}
