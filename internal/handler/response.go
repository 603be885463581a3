package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/jab1897/LoneStarLedger5/internal/domain"
)

// Response is the uniform JSON envelope.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse returns a successful response
func SuccessResponse(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusOK, Response{
		Code:    "SUCCESS",
		Message: "operation successful",
		Data:    data,
	})
}

// CSVResponse returns raw CSV bytes as a file download.
func CSVResponse(c *app.RequestContext, filename string, body []byte) {
	c.Response.Header.Set("Content-Type", "text/csv; charset=utf-8")
	c.Response.Header.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(consts.StatusOK, "text/csv; charset=utf-8", body)
}

// ErrorResponse returns an error response based on error type
func ErrorResponse(c *app.RequestContext, err error) {
	// User-facing message without internal detail.
	getUserMessage := func(err error) string {
		if domainErr, ok := err.(*domain.DomainError); ok {
			return domainErr.UserMessage()
		}
		return "an error occurred"
	}

	switch {
	case domain.IsNotFound(err):
		c.JSON(consts.StatusNotFound, Response{
			Code:    "NOT_FOUND",
			Message: getUserMessage(err),
		})
	case domain.IsInvalidInput(err):
		c.JSON(consts.StatusBadRequest, Response{
			Code:    "INVALID_INPUT",
			Message: getUserMessage(err),
		})
	case domain.IsUnavailable(err):
		c.JSON(consts.StatusServiceUnavailable, Response{
			Code:    "DATASET_UNAVAILABLE",
			Message: getUserMessage(err),
		})
	case domain.IsTimeout(err):
		c.JSON(consts.StatusGatewayTimeout, Response{
			Code:    "UPSTREAM_TIMEOUT",
			Message: getUserMessage(err),
		})
	case domain.IsTransport(err):
		c.JSON(consts.StatusBadGateway, Response{
			Code:    "UPSTREAM_ERROR",
			Message: getUserMessage(err),
		})
	default:
		c.JSON(consts.StatusInternalServerError, Response{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}

// BadRequestResponse returns a bad request response
func BadRequestResponse(c *app.RequestContext, message string) {
	c.JSON(consts.StatusBadRequest, Response{
		Code:    "BAD_REQUEST",
		Message: message,
	})
}
