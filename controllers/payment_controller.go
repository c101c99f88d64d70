package controllers

import (
	"io"
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type CreateCheckoutInput struct {
	Email       string `json:"email" binding:"required,email"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	ProductName string `json:"product_name"`
}

// POST /api/create-checkout-session
func CreateCheckoutSession(c *gin.Context) {
	var input CreateCheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stripe := services.NewStripeService()
	session, err := stripe.CreateCheckoutSession(input.Email, input.Amount, input.Currency, input.ProductName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"url":        session.URL,
	})
}

type VerifyPaymentInput struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// POST /api/verify-payment — success iff Stripe reports the session paid.
// A paid session also activates the matching account.
func VerifyPayment(c *gin.Context) {
	var input VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stripe := services.NewStripeService()
	session, err := stripe.GetCheckoutSession(input.SessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	paid := session.PaymentStatus == "paid"
	if paid {
		if err := services.ActivateUserByEmail(session.CustomerEmail); err != nil {
			log.WithError(err).Warn("failed to activate account after paid checkout")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        paid,
		"payment_status": session.PaymentStatus,
	})
}

// POST /api/webhook — raw body, signature checked against the endpoint
// secret, receipt always acknowledged.
func StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read body"})
		return
	}

	stripe := services.NewStripeService()
	if err := stripe.VerifyWebhookSignature(payload, c.GetHeader("Stripe-Signature")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := services.ParseWebhookEvent(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session services.CheckoutSession
		if err := services.DecodeWebhookObject(event, &session); err != nil {
			log.WithError(err).Warn("malformed checkout.session.completed payload")
			break
		}
		if err := services.ActivateUserByEmail(session.CustomerEmail); err != nil {
			log.WithError(err).Warn("failed to activate account from webhook")
		}
		if err := utils.SendPaymentConfirmationEmail(session.CustomerEmail, session.AmountTotal, session.Currency); err != nil {
			log.WithError(err).Warn("payment confirmation email failed")
		}
	case "payment_intent.payment_failed":
		log.WithField("event", event.ID).Info("payment failed")
	default:
		log.WithField("type", event.Type).Debug("unhandled stripe event")
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// GET /api/payment-details/:sessionId
func PaymentDetails(c *gin.Context) {
	stripe := services.NewStripeService()
	session, err := stripe.GetCheckoutSession(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":     session.ID,
		"status":         session.Status,
		"payment_status": session.PaymentStatus,
		"amount_total":   session.AmountTotal,
		"currency":       session.Currency,
		"customer_email": session.CustomerEmail,
	})
}

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
