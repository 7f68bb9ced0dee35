package serverutils

import "github.com/gofiber/fiber/v2"

// AppError carries an HTTP status alongside the message. Services return it
// for expected failures (missing session, bad credentials); anything else
// falls through the error middleware as a 500.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Message: message}
}
