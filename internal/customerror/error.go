package customerror

import (
	"fmt"
	"net/http"
)

type CustomError interface {
	Error() string
	GetHTTPCode() int
}

type UniqueViolationError struct {
	httpCode int
	message  string
}

func NewUniqueViolationError(msg string) *UniqueViolationError {
	return &UniqueViolationError{httpCode: http.StatusUnprocessableEntity, message: msg}
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique violation: %s", e.message)
}

func (e *UniqueViolationError) GetHTTPCode() int {
	return e.httpCode
}

type NotFoundError struct {
	httpCode int
	message  string
}

func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{httpCode: http.StatusNotFound, message: msg}
}

func (e *NotFoundError) Error() string {
	return e.message
}

func (e *NotFoundError) GetHTTPCode() int {
	return e.httpCode
}

type ValidationError struct {
	httpCode int
	message  string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{httpCode: http.StatusBadRequest, message: msg}
}

func (e *ValidationError) Error() string {
	return e.message
}

func (e *ValidationError) GetHTTPCode() int {
	return e.httpCode
}

type CommonPGError struct {
	httpCode int
	message  string
}

func NewCommonPGError(msg string) *CommonPGError {
	return &CommonPGError{httpCode: http.StatusInternalServerError, message: msg}
}

func (e *CommonPGError) Error() string {
	return e.message
}

func (e *CommonPGError) GetHTTPCode() int {
	return e.httpCode
}
