package response

import (
	"net/http"

	"github.com/alimikegami/velvet-storefront/pkg/errs"
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Status = "success"
	resp.Data = data
	resp.Message = message

	return c.JSON(http.StatusOK, resp)
}

func WriteCreatedResponse(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, SuccessResponse{Status: "success", Message: message, Data: data})
}

func WriteAcceptedResponse(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusAccepted, SuccessResponse{Status: "success", Message: message, Data: data})
}

// WriteErrorResponse hides messages of unmapped errors behind the generic internal error.
func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = errs.Sentinel(err).Error()
	resp.Errors = errors

	return c.JSON(statusCode, resp)
}
