package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Error codes shared by every service.
const (
	CodeInvalidID    = "INVALID_ID"
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeDuplicate    = "DUPLICATE"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInternal     = "INTERNAL_ERROR"
)

type Error struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

type Success struct {
	Success bool        `json:"success"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds an Error whose HTTP status is derived from the code.
func NewError(code string, m string) *Error {
	return &Error{Status: StatusForCode(code), Code: code, Message: m}
}

// StatusForCode maps a result code to the HTTP status the controllers answer with.
// Unknown codes, including every "*_ERROR" code, are server errors.
func StatusForCode(code string) int {
	switch code {
	case CodeInvalidID, CodeValidation, CodeBadRequest:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeDuplicate:
		return fiber.StatusConflict
	case CodeRateLimited:
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}

func InvalidID(m string) *Error {
	return NewError(CodeInvalidID, m)
}

func EntityNotFound(m string) *Error {
	return NewError(CodeNotFound, m)
}

func BadRequest(m string) *Error {
	return NewError(CodeBadRequest, m)
}

func ValidationFailed(m string) *Error {
	return NewError(CodeValidation, m)
}

func Duplicate(m string) *Error {
	return NewError(CodeDuplicate, m)
}

func Unauthorized(m string) *Error {
	return NewError(CodeUnauthorized, m)
}

// Unexpected wraps a storage or upstream failure, e.g. Unexpected("FETCH_ERROR", err.Error()).
func Unexpected(code string, m string) *Error {
	return NewError(code, m)
}

func SuccessResponse(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(&Success{Success: true, Status: fiber.StatusOK, Data: data})
}

func CreatedResponse(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(&Success{Success: true, Status: fiber.StatusCreated, Data: data})
}
