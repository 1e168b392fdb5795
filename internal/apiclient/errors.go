package apiclient

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrMissingToken = errors.New("login response carried no token")
)
