package handler

import (
	"errors"
	"net/http"

	"blog-api/internal/api"
	"blog-api/internal/service"

	"github.com/labstack/echo/v4"
)

// StatusOf maps an error kind to the HTTP status it is reported with.
func StatusOf(kind service.Kind) int {
	switch kind {
	case service.KindInvalidPayload,
		service.KindMissingField,
		service.KindInvalidField,
		service.KindDuplicateUsername,
		service.KindDuplicateEmail,
		service.KindWeakPassword,
		service.KindAlreadyPublished,
		service.KindAlreadyUnpublished:
		return http.StatusBadRequest
	case service.KindInvalidPassword, service.KindInvalidUser:
		return http.StatusUnauthorized
	case service.KindUserNotFound, service.KindPostNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as {"message": ...}. Anything that is not a *service.Error
// is handed to echo as a 500 with the cause kept internal, so the client never
// sees driver messages.
func Error(c echo.Context, err error) error {
	var se *service.Error
	if !errors.As(err, &se) {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
	}
	return c.JSON(StatusOf(se.Kind), api.ErrorResponse{Message: se.Message})
}

// BindAndValidate decodes the JSON body into req and checks it.
func BindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return service.ErrInvalidPayload
	}
	return c.Validate(req)
}
