package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeForbidden  ErrorType = "FORBIDDEN"
	ErrorTypeBusy       ErrorType = "BUSY"
	ErrorTypeInternal   ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	ErrCodeUnknownRecipient ErrorCode = "UNKNOWN_RECIPIENT"
	ErrCodeEmptyComment     ErrorCode = "EMPTY_COMMENT"
	ErrCodeInvalidRecord    ErrorCode = "INVALID_RECORD"
	ErrCodeDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"
	ErrCodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	ErrCodeDocumentBusy     ErrorCode = "DOCUMENT_BUSY"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
)

// AppError is the transport-facing error shape. Domain packages return
// sentinel errors; handlers translate them into AppErrors for the client.
type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewUnprocessableError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

func NewBusyError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeBusy,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// Domain sentinels. Services return these directly; handlers hand them to
// HandleServiceError, which reads the status code and payload off them.
var (
	ErrDocumentNotFound  = NewNotFoundError("document not found", ErrCodeDocumentNotFound)
	ErrUserNotFound      = NewNotFoundError("user not found", ErrCodeUserNotFound)
	ErrRecipientNotFound = NewNotFoundError("recipient not found", ErrCodeUnknownRecipient)
	ErrPermissionDenied  = NewForbiddenError("actor is not permitted to perform this action", ErrCodePermissionDenied)
	ErrInvalidStatus     = NewValidationError("invalid document status", ErrCodeInvalidStatus)
	ErrUnknownRecipient  = NewUnprocessableError("referral recipient does not resolve", ErrCodeUnknownRecipient)
	ErrEmptyComment      = NewValidationError("comment text must not be blank", ErrCodeEmptyComment)
	ErrInvalidRecord     = NewValidationError("activity record detail must not be empty", ErrCodeInvalidRecord)
	ErrInvalidKind       = NewValidationError("unknown activity kind", ErrCodeInvalidRecord)
	ErrBusy              = NewBusyError("document is busy, retry later", ErrCodeDocumentBusy)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
