package controller

import (
	"errors"

	"github.com/alimikegami/velvet-storefront/internal/domain"
	"github.com/alimikegami/velvet-storefront/pkg/response"
	"github.com/labstack/echo/v4"
)

// writeError adds per-field details when the service rejected the payload.
func writeError(e echo.Context, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		fields := make([]response.ValidationError, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			fields = append(fields, response.ValidationError{Field: f.Field, Tag: f.Tag})
		}
		return response.WriteErrorResponse(e, err, fields)
	}

	return response.WriteErrorResponse(e, err, nil)
}
