package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Stable error kinds (wire contract)
=================================*/

const (
	ErrKindAuthentication = "AUTHENTICATION_ERROR"
	ErrKindAuthorization  = "AUTHORIZATION_ERROR"
	ErrKindNotFound       = "NOT_FOUND"
	ErrKindInvalidState   = "INVALID_STATE"
	ErrKindValidation     = "VALIDATION_ERROR"
	ErrKindProvisioning   = "PROVISIONING_ERROR"
	ErrKindInternal       = "INTERNAL_ERROR"
)

// KindFromStatus maps an HTTP status onto the default error kind.
// Callers that need a non-default kind (e.g. PROVISIONING_ERROR on 500)
// use JsonErrorKind directly.
func KindFromStatus(code int) string {
	switch code {
	case fiber.StatusUnauthorized:
		return ErrKindAuthentication
	case fiber.StatusForbidden:
		return ErrKindAuthorization
	case fiber.StatusNotFound:
		return ErrKindNotFound
	case fiber.StatusConflict:
		return ErrKindInvalidState
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return ErrKindValidation
	default:
		return ErrKindInternal
	}
}

/* ===============================
   Success envelope
=================================*/

func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return jsonSuccess(c, fiber.StatusCreated, message, data)
}

func JsonUpdated(c *fiber.Ctx, message string, data interface{}) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

func JsonDeleted(c *fiber.Ctx, message string, data interface{}) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

func JsonList(c *fiber.Ctx, data interface{}, pagination interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":       fiber.StatusOK,
		"status":     "success",
		"data":       data,
		"pagination": pagination,
	})
}

func jsonSuccess(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

/* ===============================
   Error envelope
=================================*/

func JsonError(c *fiber.Ctx, code int, message string) error {
	return JsonErrorKind(c, code, KindFromStatus(code), message)
}

func JsonErrorKind(c *fiber.Ctx, code int, kind, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":       code,
		"status":     "error",
		"error_kind": kind,
		"message":    message,
	})
}

// JsonValidationError renders validator.v10 field errors as one response.
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":       fiber.StatusBadRequest,
		"status":     "error",
		"error_kind": ErrKindValidation,
		"message":    "Validation failed",
		"errors":     errorsMap,
	})
}
