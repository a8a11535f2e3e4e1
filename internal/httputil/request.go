package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		if text, ok := validationText(err); ok {
			return fmt.Errorf("%w: %s", ErrInvalidBody, text)
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return fmt.Errorf("%w: %s", ErrInvalidBody, err)
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// BindQuery binds the query string of the request to data.
func BindQuery(c *gin.Context, data any) error {
	if err := c.ShouldBindQuery(data); err != nil {
		if text, ok := validationText(err); ok {
			return fmt.Errorf("%w: %s", ErrInvalidQuery, text)
		}
		return fmt.Errorf("%w: %s", ErrInvalidQuery, err)
	}

	return nil
}

// BindURI binds the path parameters of the request to data.
func BindURI(c *gin.Context, data any) error {
	if err := c.ShouldBindUri(data); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPath, err)
	}

	return nil
}

func validationText(err error) (string, bool) {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return "", false
	}

	texts := make([]string, 0, len(errs))
	for _, e := range errs {
		texts = append(texts, ValidationErrorToText(e))
	}
	return strings.Join(texts, ", "), true
}

// ValidationErrorToText returns a readable description of a failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "len":
		return fmt.Sprintf("%s must be %s characters long", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of '%s'", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// ContextURL is the key of the API base URL in the gin context.
const ContextURL = "requestURL"
