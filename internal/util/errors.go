package util

import (
	"errors"
	"net/http"
)

// 错误类别，配合 errors.Is 使用
var (
	ErrValidation     = errors.New("validation error")
	ErrConflict       = errors.New("conflict")
	ErrAuth           = errors.New("authentication failed")
	ErrSessionExpired = &AppError{Kind: ErrAuth, Message: "Session expired due to inactivity"}
	ErrNotFound       = errors.New("not found")
	ErrEvaluation     = errors.New("evaluation failed")
	ErrStore          = errors.New("store error")
)

// AppError 携带错误类别、面向用户的消息和底层原因
type AppError struct {
	Kind    error
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func NewError(kind error, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func WrapError(kind error, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Cause: cause}
}

func Validation(message string) *AppError {
	return NewError(ErrValidation, message)
}

// StatusCode 将错误类别映射为 HTTP 状态码
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage 返回可以直接展示给客户端的消息
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "Internal server error"
}
