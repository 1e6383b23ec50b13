package errors

import "fmt"

type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	HTTPCode int    `json:"-"`
	Detail   string `json:"-"`
	cause    error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause returns a copy carrying err for logging; the cause is never rendered to clients.
func (e *AppError) WithCause(err error) *AppError {
	clone := *e
	clone.cause = err
	return &clone
}

func (e *AppError) Localize(lang string) *AppError {
	return Localize(e, lang)
}

func New(code string, httpCode int, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func newWithDetail(code string, httpCode int, detail string) *AppError {
	return &AppError{
		Code:     code,
		Message:  withDetail(messages["en"][code], detail),
		HTTPCode: httpCode,
		Detail:   detail,
	}
}

func withDetail(message, detail string) string {
	if detail == "" {
		return message
	}
	return fmt.Sprintf("%s: %s", message, detail)
}
