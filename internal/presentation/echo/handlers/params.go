package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
)

func parseRequestID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidSongRequest("id must be a positive integer")
	}
	return uint(id), nil
}
