// Package respond отображает ошибки прикладного уровня в HTTP ответы.
package respond

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"jobdesk/internal/domain/entities"
	"jobdesk/internal/store"
)

// JSON отправляет успешный ответ.
func JSON(ctx fiber.Ctx, statusCode int, body any) error {
	if err := ctx.Status(statusCode).JSON(body); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Error отправляет ответ с кодом, выведенным из ошибки прикладного
// уровня.
func Error(ctx fiber.Ctx, err error) error {
	if sendErr := ctx.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	}); sendErr != nil {
		return fmt.Errorf("sending error response: %w", sendErr)
	}
	return nil
}

// Message отправляет ответ с заданным кодом и текстом ошибки.
func Message(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("sending error response: %w", err)
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entities.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrAccountInactive),
		errors.Is(err, entities.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrVacancyNotFound),
		errors.Is(err, entities.ErrResumeNotFound),
		errors.Is(err, entities.ErrApplicationNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateUsername),
		errors.Is(err, entities.ErrAlreadyApplied):
		return http.StatusConflict
	case errors.Is(err, entities.ErrFullNameRequired),
		errors.Is(err, entities.ErrUsernameTooShort),
		errors.Is(err, entities.ErrUsernameReserved),
		errors.Is(err, entities.ErrInvalidPhone),
		errors.Is(err, entities.ErrPasswordTooShort),
		errors.Is(err, entities.ErrPasswordHasSpaces),
		errors.Is(err, entities.ErrUnknownRole),
		errors.Is(err, entities.ErrVacancyFieldsMissing),
		errors.Is(err, entities.ErrResumeTitleRequired),
		errors.Is(err, entities.ErrEducationRequired),
		errors.Is(err, entities.ErrUnknownReviewStatus),
		errors.Is(err, entities.ErrRejectReasonRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
