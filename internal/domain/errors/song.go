package errors

import (
	"net/http"
	"strings"
)

func ErrInvalidSongRequest(reasons ...string) *AppError {
	return newWithDetail("INVALID_SONG_REQUEST", http.StatusBadRequest, strings.Join(reasons, "; "))
}

func ErrInvalidPaymentMethod(method string) *AppError {
	return newWithDetail("INVALID_PAYMENT_METHOD", http.StatusBadRequest, method)
}

func ErrAdminForbidden() *AppError {
	return New("ADMIN_FORBIDDEN", http.StatusForbidden, messages["en"]["ADMIN_FORBIDDEN"])
}

func ErrSongRequestNotFound() *AppError {
	return New("SONG_REQUEST_NOT_FOUND", http.StatusNotFound, messages["en"]["SONG_REQUEST_NOT_FOUND"])
}

func ErrTrackNotFound() *AppError {
	return New("TRACK_NOT_FOUND", http.StatusNotFound, messages["en"]["TRACK_NOT_FOUND"])
}

func ErrRequestAlreadyPaid() *AppError {
	return New("REQUEST_ALREADY_PAID", http.StatusConflict, messages["en"]["REQUEST_ALREADY_PAID"])
}

func ErrRateLimited() *AppError {
	return New("RATE_LIMITED", http.StatusTooManyRequests, messages["en"]["RATE_LIMITED"])
}

func ErrCatalogUnavailable() *AppError {
	return New("CATALOG_UNAVAILABLE", http.StatusInternalServerError, messages["en"]["CATALOG_UNAVAILABLE"])
}

func ErrPaymentGateway() *AppError {
	return New("PAYMENT_GATEWAY_ERROR", http.StatusInternalServerError, messages["en"]["PAYMENT_GATEWAY_ERROR"])
}

func ErrInvalidSignature() *AppError {
	return New("INVALID_SIGNATURE", http.StatusBadRequest, messages["en"]["INVALID_SIGNATURE"])
}

func ErrPaymentNotSuccessful(tradeStatus string) *AppError {
	return newWithDetail("PAYMENT_NOT_SUCCESSFUL", http.StatusBadRequest, tradeStatus)
}

func ErrInvalidOrderID(orderID string) *AppError {
	return newWithDetail("INVALID_ORDER_ID", http.StatusBadRequest, orderID)
}

func ErrInvalidPaymentAmount(amount string) *AppError {
	return newWithDetail("INVALID_PAYMENT_AMOUNT", http.StatusBadRequest, amount)
}

func ErrInternal() *AppError {
	return New("INTERNAL_ERROR", http.StatusInternalServerError, messages["en"]["INTERNAL_ERROR"])
}
