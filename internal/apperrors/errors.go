package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidTransition indicates a status change that the lifecycle does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrBusy indicates that a previous request for the same session is still in flight.
var ErrBusy = errors.New("request already in progress")

// ErrAssistantUnconfigured indicates that no upstream API key is configured.
var ErrAssistantUnconfigured = errors.New("assistant is not configured")

// AssistantErrorClass groups upstream chat-completion failures.
type AssistantErrorClass string

const (
	AssistantAuthFailed  AssistantErrorClass = "auth"
	AssistantRateLimited AssistantErrorClass = "rate_limited"
	AssistantUnavailable AssistantErrorClass = "unavailable"
	AssistantGeneric     AssistantErrorClass = "generic"
)

// AssistantError is returned when the upstream chat-completion call fails.
type AssistantError struct {
	Class      AssistantErrorClass
	StatusCode int // upstream HTTP status, 0 if the request never got a response
	Err        error
}

// ClassifyAssistantStatus maps an upstream HTTP status to its error class.
func ClassifyAssistantStatus(status int) AssistantErrorClass {
	switch status {
	case http.StatusUnauthorized:
		return AssistantAuthFailed
	case http.StatusTooManyRequests:
		return AssistantRateLimited
	case http.StatusInternalServerError:
		return AssistantUnavailable
	default:
		return AssistantGeneric
	}
}

func (e *AssistantError) Error() string {
	switch e.Class {
	case AssistantAuthFailed:
		return "Authentication failed. Please check your API key."
	case AssistantRateLimited:
		return "Rate limit exceeded. Please try again in a moment."
	case AssistantUnavailable:
		return "The assistant service is temporarily unavailable. Please try again later."
	default:
		if e.StatusCode != 0 {
			return fmt.Sprintf("assistant upstream error: %d", e.StatusCode)
		}
		return "assistant upstream error"
	}
}

func (e *AssistantError) Unwrap() error {
	return e.Err
}
