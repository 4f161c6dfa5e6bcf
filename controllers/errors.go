package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"marketplace/pkg/resp"
	"marketplace/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// respondError maps a service error onto the envelope. Business errors carry
// their message; everything else is logged and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	var (
		ve    *services.ValidationError
		nf    *services.NotFoundError
		ae    *services.AuthenticationError
		fault *services.IntegrityFault
	)
	log := zerolog.Ctx(c.Request.Context())

	switch {
	case errors.As(err, &ve):
		resp.BadRequest(c, ve.Msg)
	case errors.As(err, &nf):
		resp.NotFound(c, nf.Msg)
	case errors.As(err, &ae):
		resp.Unauthorized(c, ae.Msg)
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.As(err, &fault):
		log.Error().Err(err).Str("path", c.FullPath()).Msg("referential integrity fault")
		resp.ServerError(c)
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		resp.ServerError(c)
	}
}

// bindErrorMessage turns gin binding errors into a short readable message.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required", "notblank":
			msgs = append(msgs, field+" is required")
		case "max":
			unit := ""
			if fe.Kind() == reflect.String {
				unit = " characters"
			}
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s%s", field, fe.Param(), unit))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
