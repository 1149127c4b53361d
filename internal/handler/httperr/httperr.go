package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeNotFound              = "NOT_FOUND"
	CodeServiceUnavailable    = "SERVICE_UNAVAILABLE"
	CodeSlotUnavailable       = "SLOT_UNAVAILABLE"
	CodeSlotTaken             = "SLOT_TAKEN"
	CodeNotPending            = "RESERVATION_NOT_PENDING"
	CodeOnboardingIncomplete  = "PAYMENT_ONBOARDING_INCOMPLETE"
	CodePaymentSetupFailed    = "PAYMENT_SETUP_FAILED"
	CodeSlotSourceUnavailable = "SLOT_SOURCE_UNAVAILABLE"
	CodeInternal              = "INTERNAL_ERROR"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		Retryable bool   `json:"retryable,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context for the request log and writes
// the envelope. The cause never reaches the client.
func AbortWithError(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Error.Retryable = status >= 500
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
