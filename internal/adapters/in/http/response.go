package http

import (
	"errors"
	"net/http"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/logging"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const messageInvalidData = "The given data was invalid."

// Envelope is the body of every API response.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Error   any                 `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// errorResponse maps an application error onto a status code and envelope.
func errorResponse(err error) (int, Envelope) {
	var (
		validationErrs validator.ValidationErrors
		upstream       *errs.UpstreamGatewayError
		transition     *errs.InvalidTransitionError
		httpErr        *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErrs):
		fields := make(map[string][]string, len(validationErrs))
		for _, fe := range validationErrs {
			path := fieldPath(fe)
			fields[path] = append(fields[path], fieldMessage(fe))
		}
		return http.StatusUnprocessableEntity, Envelope{Message: messageInvalidData, Errors: fields}
	case errs.IsValidation(err):
		return http.StatusUnprocessableEntity, Envelope{Message: messageInvalidData, Errors: validationFields(err)}
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, Envelope{Message: "Anda tidak memiliki akses ke data ini", Error: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, Envelope{Message: "Data tidak ditemukan", Error: err.Error()}
	case errors.As(err, &transition):
		return http.StatusBadRequest, Envelope{Message: transitionMessage(transition), Error: err.Error()}
	case errors.As(err, &upstream):
		body := Envelope{Message: "Layanan " + upstream.Gateway + " gagal: " + upstream.Message, Error: upstream.Detail}
		if body.Error == nil {
			body.Error = upstream.Message
		}
		return http.StatusInternalServerError, body
	case errors.As(err, &httpErr):
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, Envelope{Message: msg}
	default:
		return http.StatusInternalServerError, Envelope{Message: "Terjadi kesalahan pada server"}
	}
}

func transitionMessage(err *errs.InvalidTransitionError) string {
	if err.Reason != "" {
		return err.Reason
	}
	return "Status order tidak dapat diubah"
}

// validationFields flattens joined validation errors into field -> messages.
func validationFields(err error) map[string][]string {
	fields := make(map[string][]string)
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}

		var (
			required *errs.ValueIsRequiredError
			invalid  *errs.ValueIsInvalidError
			outOf    *errs.ValueIsOutOfRangeError
		)
		switch {
		case errors.As(e, &required):
			fields[required.ParamName] = append(fields[required.ParamName], e.Error())
		case errors.As(e, &invalid):
			fields[invalid.ParamName] = append(fields[invalid.ParamName], e.Error())
		case errors.As(e, &outOf):
			fields[outOf.ParamName] = append(fields[outOf.ParamName], e.Error())
		default:
			if next := errors.Unwrap(e); next != nil {
				walk(next)
			}
		}
	}
	walk(err)
	return fields
}

// errorHandler renders every error that reaches echo, including router 404s,
// in the response envelope. 5xx responses are logged with the request logger.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request().Context()).Error("request failed",
			zap.Int("status", status), zap.String("route", c.Path()), zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		logging.FromContext(c.Request().Context()).Warn("write error response", zap.Error(err))
	}
}
