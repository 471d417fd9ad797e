package util

import "net/http"

// Stable machine-readable error codes surfaced in the response envelope.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeAuthRequired = "AUTH_REQUIRED"
	CodeAuthInvalid  = "AUTH_INVALID"
	CodeForbidden    = "AUTHORIZATION_DENIED"
	CodeNotFound     = "NOT_FOUND"
	CodeUserTaken    = "USERNAME_TAKEN"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError carries a stable code and an HTTP status class. Business rules
// raise it anywhere below the controllers; it is translated to the uniform
// envelope exactly once, at the boundary.
type AppError struct {
	Code    string      `json:"code"`
	Status  int         `json:"-"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

func ValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Status: http.StatusBadRequest, Message: message}
}

func AuthRequiredError() *AppError {
	return &AppError{Code: CodeAuthRequired, Status: http.StatusUnauthorized, Message: "Authentication required"}
}

func AuthInvalidError() *AppError {
	return &AppError{Code: CodeAuthInvalid, Status: http.StatusUnauthorized, Message: "Invalid credentials"}
}

func ForbiddenError() *AppError {
	return &AppError{Code: CodeForbidden, Status: http.StatusForbidden, Message: "Forbidden"}
}

func NotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Status: http.StatusNotFound, Message: message}
}

func UsernameTakenError() *AppError {
	return &AppError{Code: CodeUserTaken, Status: http.StatusConflict, Message: "Username already exists"}
}

func InternalError() *AppError {
	return &AppError{Code: CodeInternal, Status: http.StatusInternalServerError, Message: "Unable to process request"}
}
