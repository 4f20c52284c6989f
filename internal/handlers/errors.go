package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/schemas"
	"alfredoptarigan/interview-coach/internal/services"
)

const (
	KindValidation = "validation"
	KindGeneration = "generation"
	KindNotFound   = "not_found"
	KindInternal   = "internal"
)

// HTTPStatus maps a coaching error onto a status code and error kind.
func HTTPStatus(err error) (int, string) {
	var (
		validationFailure *models.ValidationFailure
		generationFailure *models.GenerationFailure
		fiberErr          *fiber.Error
	)

	switch {
	case errors.As(err, &validationFailure):
		return fiber.StatusBadRequest, KindValidation
	case errors.As(err, &generationFailure):
		return fiber.StatusBadGateway, KindGeneration
	case errors.Is(err, services.ErrUnknownOperation):
		return fiber.StatusNotFound, KindNotFound
	case errors.As(err, &fiberErr):
		if fiberErr.Code == fiber.StatusNotFound {
			return fiberErr.Code, KindNotFound
		}
		if fiberErr.Code < fiber.StatusInternalServerError {
			return fiberErr.Code, KindValidation
		}
		return fiberErr.Code, KindInternal
	default:
		return fiber.StatusInternalServerError, KindInternal
	}
}

// RespondError writes the error body. Schema violations are listed per field.
func RespondError(c *fiber.Ctx, err error) error {
	code, kind := HTTPStatus(err)
	if code >= fiber.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	}

	body := models.ErrorResponse{
		Error: err.Error(),
		Code:  code,
		Kind:  kind,
	}

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		for _, fieldErr := range schemaErr.Errors {
			body.Fields = append(body.Fields, models.FieldIssue{
				Field:   fieldErr.Field,
				Message: fieldErr.Message,
			})
		}
	}

	return c.Status(code).JSON(body)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: message,
		Code:  fiber.StatusBadRequest,
		Kind:  KindValidation,
	})
}
