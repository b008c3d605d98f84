package response

import (
	"net/http"
)

type Error string

type RestError struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

const (
	ErrInvalidInput  = Error("INVALID_INPUT")
	ErrUnauthorized  = Error("UNAUTHORIZED")
	ErrInternalError = Error("INTERNAL_ERROR")
	ErrUnavailable   = Error("UNAVAILABLE")
)

var (
	Errors = map[Error]RestError{
		ErrInvalidInput: {
			Code:  http.StatusBadRequest,
			Title: string(ErrInvalidInput),
		},
		ErrUnauthorized: {
			Code:  http.StatusUnauthorized,
			Title: string(ErrUnauthorized),
		},
		ErrInternalError: {
			Code:  http.StatusInternalServerError,
			Title: string(ErrInternalError),
		},
		ErrUnavailable: {
			Code:  http.StatusServiceUnavailable,
			Title: string(ErrUnavailable),
		},
	}
)
