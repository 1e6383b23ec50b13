package echo

import (
	"errors"
	"net/http"
	"strings"

	echofw "github.com/labstack/echo/v4"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
	"github.com/sirupsen/logrus"
)

func CustomHTTPErrorHandler(err error, c echofw.Context) {
	if c.Response().Committed {
		return
	}

	lang := parseAcceptLanguage(c.Request().Header.Get("Accept-Language"))

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logrus.WithFields(logrus.Fields{
				"trace_id": c.Get("trace_id"),
				"code":     appErr.Code,
			}).WithError(errors.Unwrap(appErr)).Error("request failed")
		}
		localized := appErr.Localize(lang)
		_ = c.JSON(localized.HTTPCode, map[string]interface{}{
			"code":    localized.Code,
			"message": localized.Message,
		})
		return
	}

	var echoErr *echofw.HTTPError
	if errors.As(err, &echoErr) {
		_ = c.JSON(echoErr.Code, map[string]interface{}{
			"code":    "HTTP_ERROR",
			"message": http.StatusText(echoErr.Code),
		})
		return
	}

	logrus.WithField("trace_id", c.Get("trace_id")).WithError(err).Error("unhandled error")
	internalErr := apperrors.ErrInternal().Localize(lang)
	_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"code":    internalErr.Code,
		"message": internalErr.Message,
	})
}

func parseAcceptLanguage(header string) string {
	if header == "" {
		return "en"
	}
	lang := strings.TrimSpace(strings.Split(header, ",")[0])
	lang = strings.Split(lang, ";")[0]
	return strings.ToLower(strings.Split(lang, "-")[0])
}
