package jwt

import (
	"errors"
	"net/http"
)

type Error string

type JWTError struct {
	Code int    `json:"-"`
	Msg  string `json:"msg"`
}

const (
	ErrForbidden = Error("FORBIDDEN")
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingToken       = errors.New("missing bearer token")
)

var (
	Errors = map[Error]*JWTError{
		ErrForbidden: {
			Code: http.StatusForbidden,
			Msg:  "Forbidden",
		},
	}
)
