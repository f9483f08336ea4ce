package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"stay-marketplace/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	MsgServerError = "A server error occurred."
	MsgParseError  = "JSON parse error."
)

// Response is the error body plus its status. Body is either {"detail": ...}
// or a field-error map.
type Response struct {
	Status int `json:"-"`
	Body   any `json:"-"`
}

type DetailBody struct {
	Detail string `json:"detail"`
}

// AbortWithError writes {"detail": detail}; err is kept on the context for logging.
func AbortWithError(c *gin.Context, status int, err error, detail string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	abort(c, err, Response{Status: status, Body: DetailBody{Detail: detail}})
}

// Abort classifies err by its kind and writes the matching response.
func Abort(c *gin.Context, err error) {
	if err == nil {
		panic("Abort: err cannot be nil")
	}
	resp := FromError(err)
	if resp.Status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 5))
	}
	abort(c, err, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp.Body)
}

// FromError maps an error to its wire response.
func FromError(err error) Response {
	if fe, ok := bindingFieldErrors(err); ok {
		return Response{Status: http.StatusBadRequest, Body: fe}
	}
	if fe, ok := errs.AsFieldErrors(err); ok {
		return Response{Status: http.StatusBadRequest, Body: fe}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Response{Status: http.StatusBadRequest, Body: DetailBody{Detail: MsgParseError}}
	}

	status, fallback := statusOf(err)
	detail := errs.Detail(err)
	if detail == "" || status == http.StatusInternalServerError {
		detail = fallback
	}
	return Response{Status: status, Body: DetailBody{Detail: detail}}
}

func statusOf(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrAuthenticationRequired):
		return http.StatusUnauthorized, "Authentication credentials were not provided."
	case errs.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden, "You do not have permission to perform this action."
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, "Not found."
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, "Invalid input."
	case errs.Is(err, errs.ErrConflict):
		return http.StatusBadRequest, "A conflicting record already exists."
	default:
		return http.StatusInternalServerError, MsgServerError
	}
}

// bindingFieldErrors turns decoding and validator failures into field maps.
func bindingFieldErrors(err error) (errs.FieldErrors, bool) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errs.FieldErrors{typeErr.Field: {typeMessage(typeErr.Type)}}, true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fe := errs.FieldErrors{}
	for _, v := range verrs {
		fe.Add(v.Field(), validationMessage(v))
	}
	return fe, true
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "Invalid value."
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return errs.MsgInteger
	case reflect.Float32, reflect.Float64:
		return errs.MsgNotNumber
	case reflect.String:
		return "Not a valid string."
	default:
		return "Invalid value."
	}
}

func validationMessage(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return errs.MsgRequired
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", v.Param())
	case "min", "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", v.Param())
	case "uuid":
		return "Must be a valid UUID."
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", v.Param())
	default:
		return "Invalid value."
	}
}
