package use_cases

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
)

var (
	localNamePattern = regexp.MustCompile(`^\p{Han}{2,4}$`)
	altNamePattern   = regexp.MustCompile(`^[A-Za-z ]+$`)
	trackIDPattern   = regexp.MustCompile(`^[A-Za-z0-9]{1,64}$`)
)

const (
	maxAltNameLength = 100
	maxTitleLength   = 255
)

func normalizeSubmitRequest(req domain.SubmitRequest) domain.SubmitRequest {
	req.RequesterNameLocal = strings.TrimSpace(req.RequesterNameLocal)
	req.RequesterNameAlt = strings.TrimSpace(req.RequesterNameAlt)
	req.SongTitle = strings.TrimSpace(req.SongTitle)
	req.Artist = strings.TrimSpace(req.Artist)
	req.CoverImageURL = strings.TrimSpace(req.CoverImageURL)
	req.CatalogTrackID = strings.TrimSpace(req.CatalogTrackID)
	return req
}

func validateSubmitRequest(req domain.SubmitRequest) error {
	var reasons []string

	if !localNamePattern.MatchString(req.RequesterNameLocal) {
		reasons = append(reasons, "requesterNameLocal must be 2-4 Chinese characters")
	}
	if !altNamePattern.MatchString(req.RequesterNameAlt) {
		reasons = append(reasons, "requesterNameAlt may only contain letters")
	} else if len(req.RequesterNameAlt) > maxAltNameLength {
		reasons = append(reasons, "requesterNameAlt is too long")
	}
	if req.SongTitle == "" && req.CatalogTrackID == "" {
		reasons = append(reasons, "either songTitle or catalogTrackId is required")
	}
	if utf8.RuneCountInString(req.SongTitle) > maxTitleLength {
		reasons = append(reasons, "songTitle is too long")
	}
	if req.CatalogTrackID != "" && !trackIDPattern.MatchString(req.CatalogTrackID) {
		reasons = append(reasons, "catalogTrackId is malformed")
	}

	if len(reasons) > 0 {
		return apperrors.ErrInvalidSongRequest(reasons...)
	}
	return nil
}
