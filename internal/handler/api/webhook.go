package api

import (
	"io"
	"log/slog"
	"net/http"

	"inkslot/internal/handler/httperr"
	"inkslot/internal/pkg/errs"
	"inkslot/internal/usecase/commands"
	"inkslot/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const maxWebhookBodyBytes = 1 << 20

type WebhookHandler struct {
	verifier shared.PaymentEventVerifier
	payments commands.PaymentCommands
}

func NewWebhookHandler(verifier shared.PaymentEventVerifier, payments commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, payments: payments}
}

// @Summary Stripe webhook
// @Description Receives signed payment intent events
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes+1))
	if err != nil {
		abortInvalid(c, err, "Unreadable body")
		return
	}
	if len(payload) > maxWebhookBodyBytes {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, httperr.CodeInvalidInput, nil, "Payload too large", nil)
		return
	}

	evt, err := h.verifier.VerifyEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		slog.WarnContext(c.Request.Context(), "webhook rejected", "error", err.Error())
		abortInvalid(c, err, "Invalid webhook")
		return
	}

	// A 5xx makes Stripe redeliver the event, which is safe because every
	// transition is guarded on the current status.
	if err := h.payments.HandlePaymentEvent(c.Request.Context(), *evt); err != nil {
		if errs.Is(err, commands.ErrReservationNotFound) {
			slog.WarnContext(c.Request.Context(), "webhook for unknown reservation",
				"event_id", evt.ID, "reservation_id", evt.ReservationID.String())
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
		abortWithCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
